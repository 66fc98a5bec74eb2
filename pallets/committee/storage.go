package committee

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

// GlobalEpoch returns the current epoch, falling back to the runtime default.
func GlobalEpoch(ctx context.Context, c chain.Client, at *chain.Hash) (uint64, error) {
	key, err := storageKey(StorageGlobalEpoch)
	if err != nil {
		return 0, err
	}

	return chain.QueryOrDefault[uint64](ctx, c, key, at)
}

// EpochConfig returns the global epoch configuration, falling back to the
// runtime default.
func EpochConfig(ctx context.Context, c chain.Client, at *chain.Hash) (chain.Encoded, error) {
	key, err := storageKey(StorageEpochConfig)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrDefault[chain.Encoded](ctx, c, key, at)
}

// NextEpochConfig returns the configuration scheduled for the next epoch.
func NextEpochConfig(ctx context.Context, c chain.Client, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageNextEpochConfig)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// Committees returns committee cid.
func Committees(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageCommittees, cid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// CommitteesIter returns every committee.
func CommitteesIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Encoded, error) {
	prefix, err := storageKey(StorageCommittees)
	if err != nil {
		return nil, err
	}

	return chain.Values[chain.Encoded](ctx, c, prefix, chain.DefaultPageSize, at)
}

// Snapshot returns the identities snapshotted for the epoch change.
func Snapshot(ctx context.Context, c chain.Client, at *chain.Hash) ([][]byte, error) {
	key, err := storageKey(StorageSnapshot)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrZero[[][]byte](ctx, c, key, at)
}

// CandidatePool returns the identities waiting to join a committee.
func CandidatePool(ctx context.Context, c chain.Client, at *chain.Hash) ([][]byte, error) {
	key, err := storageKey(StorageCandidatePool)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrZero[[][]byte](ctx, c, key, at)
}

// CommitteeMembers returns the members of committee cid for an epoch and fork.
func CommitteeMembers(ctx context.Context, c chain.Client, cid, epoch uint32, forkID uint8, at *chain.Hash) ([][]byte, bool, error) {
	key, err := storageKey(StorageCommitteeMembers, cid, EpochKey{Epoch: epoch, Fork: forkID})
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[][]byte](ctx, c, key, at)
}

// MemberLinks returns the committee member is linked to, or 0.
func MemberLinks(ctx context.Context, c chain.Client, member []byte, at *chain.Hash) (uint32, error) {
	key, err := storageKey(StorageMemberLinks, member)
	if err != nil {
		return 0, err
	}

	return chain.QueryOrZero[uint32](ctx, c, key, at)
}

// MemberLinksIter returns every member link keyed by member identity.
func MemberLinksIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Pair[[]byte, uint32], error) {
	prefix, err := storageKey(StorageMemberLinks)
	if err != nil {
		return nil, err
	}

	return chain.IterKeyed[[]byte, uint32](ctx, c, prefix, chain.DefaultPageSize, at, chain.KeyBytes)
}

// CandidateLinks returns the candidate positions linked to a committee fork.
func CandidateLinks(ctx context.Context, c chain.Client, cid uint32, fork uint8, at *chain.Hash) ([]uint16, error) {
	key, err := storageKey(StorageCandidateLinks, cid, fork)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrZero[[]uint16](ctx, c, key, at)
}

// EpochChangeFailures returns how many epoch changes failed on a committee fork.
func EpochChangeFailures(ctx context.Context, c chain.Client, cid uint32, fork uint8, at *chain.Hash) (uint8, error) {
	key, err := storageKey(StorageEpochChangesFailures, cid, fork)
	if err != nil {
		return 0, err
	}

	return chain.QueryOrZero[uint8](ctx, c, key, at)
}

// EpochChangeFailuresIter returns the failure count of every committee fork.
func EpochChangeFailuresIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]EpochFailures, error) {
	prefix, err := storageKey(StorageEpochChangesFailures)
	if err != nil {
		return nil, err
	}

	pairs, err := chain.IterKeyed[chain.U32U8, uint8](ctx, c, prefix, chain.DefaultPageSize, at, chain.KeyU32U8)
	if err != nil {
		return nil, err
	}

	failures := make([]EpochFailures, len(pairs))
	for i, p := range pairs {
		failures[i] = EpochFailures{CID: p.Key.A, Fork: p.Key.B, Failures: p.Value}
	}

	return failures, nil
}

// CommitteeRandomness returns the randomness seed of committee cid.
func CommitteeRandomness(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (uint64, bool, error) {
	key, err := storageKey(StorageCRandomness, cid)
	if err != nil {
		return 0, false, err
	}

	return chain.Query[uint64](ctx, c, key, at)
}

// UnpaidSignFee returns the sign fee owed to pk for epoch.
func UnpaidSignFee(ctx context.Context, c chain.Client, pk []byte, epoch uint32, at *chain.Hash) (chain.U128, bool, error) {
	key, err := storageKey(StorageUnpaidSignFee, pk, epoch)
	if err != nil {
		return chain.U128{}, false, err
	}

	return chain.Query[chain.U128](ctx, c, key, at)
}

// IdentityRewards returns the rewards accrued by ident, or 0.
func IdentityRewards(ctx context.Context, c chain.Client, ident []byte, at *chain.Hash) (chain.U128, error) {
	key, err := storageKey(StorageIdentityRewards, ident)
	if err != nil {
		return chain.U128{}, err
	}

	return chain.QueryOr(ctx, c, key, at, chain.NewU128(0))
}

// ExposedIdentity returns the identity exposed by ident, or nil.
func ExposedIdentity(ctx context.Context, c chain.Client, ident []byte, at *chain.Hash) ([]byte, error) {
	key, err := storageKey(StorageExposedIdentity, ident)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrZero[[]byte](ctx, c, key, at)
}

// RewardsForFork returns the rewards of a committee fork for epoch.
func RewardsForFork(ctx context.Context, c chain.Client, cid, epoch uint32, forkID uint8, at *chain.Hash) (ForkRewards, bool, error) {
	key, err := storageKey(StorageRewardsForFork, cid, epoch, forkID)
	if err != nil {
		return ForkRewards{}, false, err
	}

	return chain.Query[ForkRewards](ctx, c, key, at)
}
