// Package committee reads and writes the committee pallet: committee
// lifecycle, epochs, membership and sign fee rewards.
package committee

import "github.com/gabapcia/palletsapi/chain"

// Pallet is the runtime name of the committee pallet.
const Pallet = "Committee"

// Storage items.
const (
	StorageGlobalEpoch          = "GlobalEpoch"
	StorageEpochConfig          = "EpochConfig"
	StorageNextEpochConfig      = "NextEpochConfig"
	StorageCommittees           = "Committees"
	StorageSnapshot             = "Snapshot"
	StorageCandidatePool        = "CandidatePool"
	StorageCommitteeMembers     = "CommitteeMembers"
	StorageMemberLinks          = "MemberLinks"
	StorageCandidateLinks       = "CandidateLinks"
	StorageEpochChangesFailures = "EpochChangesFailures"
	StorageCRandomness          = "CRandomness"
	StorageUnpaidSignFee        = "UnpaidSignFee"
	StorageIdentityRewards      = "IdentityRewards"
	StorageExposedIdentity      = "ExposedIdentity"
	StorageRewardsForFork       = "RewardsForFork"
)

// Calls.
const (
	CallCreateCommittee = "create_committee"
	CallEnterEpoch      = "enter_epoch"
	CallExposeIdentity  = "expose_identity"
	CallActiveCommittee = "active_committee"
	CallReportChange    = "report_change"
)

// CryptoType is the threshold signature scheme a committee runs. It is a
// field-less runtime enum encoded as its variant index.
type CryptoType uint8

// EpochKey is the (epoch, fork) second key of CommitteeMembers.
type EpochKey struct {
	Epoch uint32
	Fork  uint8
}

// EpochFailures is one entry of the EpochChangesFailures double map.
type EpochFailures struct {
	CID      uint32
	Fork     uint8
	Failures uint8
}

// EpochProof is the proof a member attaches when entering an epoch.
type EpochProof struct {
	Identity  []byte
	Proof     []byte
	Signature []byte
}

// JoinEntry is one (fork, epoch, position) tuple of a committee join.
type JoinEntry struct {
	Fork     uint8
	Epoch    uint32
	Position uint32
}

// CommitteeJoin lists the joins of an identity on one committee.
type CommitteeJoin struct {
	CID     uint32
	Entries []JoinEntry
}

// ForkRewards is the reward amount of a fork and the members sharing it.
type ForkRewards struct {
	Amount  chain.U128
	Members [][]byte
}

func storageKey(item string, args ...any) (chain.StorageKey, error) {
	return chain.NewStorageKey(Pallet, item, args...)
}
