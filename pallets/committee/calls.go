package committee

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

// CreateCommittee creates a t-of-n committee using crypto on fork.
func CreateCommittee(ctx context.Context, c chain.Client, t, n uint16, crypto CryptoType, fork uint8, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallCreateCommittee, t, n, crypto, fork)
	return c.SubmitSignedAndWatch(ctx, call, nonce)
}

// EnterEpoch moves the chain into epoch with the members' proofs.
func EnterEpoch(ctx context.Context, c chain.Client, epoch uint64, proofs []EpochProof) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, chain.NewCall(Pallet, CallEnterEpoch, epoch, proofs))
}

// EnterEpochCallBytes returns the unsigned extrinsic EnterEpoch would submit.
func EnterEpochCallBytes(ctx context.Context, c chain.Client, epoch uint64, proofs []EpochProof) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, chain.NewCall(Pallet, CallEnterEpoch, epoch, proofs))
}

func exposeIdentityCall(identity []byte, joins []CommitteeJoin, deviceID, identSig []byte) chain.Call {
	return chain.NewCall(Pallet, CallExposeIdentity, identity, joins, deviceID, identSig)
}

// ExposeIdentity publishes the committee joins of identity.
func ExposeIdentity(ctx context.Context, c chain.Client, identity []byte, joins []CommitteeJoin, deviceID, identSig []byte) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, exposeIdentityCall(identity, joins, deviceID, identSig))
}

// ExposeIdentityCallBytes returns the unsigned extrinsic ExposeIdentity would
// submit.
func ExposeIdentityCallBytes(ctx context.Context, c chain.Client, identity []byte, joins []CommitteeJoin, deviceID, identSig []byte) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, exposeIdentityCall(identity, joins, deviceID, identSig))
}

// ActiveCommittee activates committee cid on chainID at address.
func ActiveCommittee(ctx context.Context, c chain.Client, cid, chainID uint32, address []byte, nonce *uint32) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallActiveCommittee, cid, chainID, address)
	return c.SubmitSignedAndWatch(ctx, call, nonce)
}

func reportChangeCall(pk, sig []byte, cid, epoch uint32, forkID uint8, signature, pubkey []byte) chain.Call {
	return chain.NewCall(Pallet, CallReportChange, pk, sig, cid, epoch, forkID, signature, pubkey)
}

// ReportChange reports the new committee key after an epoch change.
func ReportChange(ctx context.Context, c chain.Client, pk, sig []byte, cid, epoch uint32, forkID uint8, signature, pubkey []byte) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, reportChangeCall(pk, sig, cid, epoch, forkID, signature, pubkey))
}

// ReportChangeCallBytes returns the unsigned extrinsic ReportChange would
// submit.
func ReportChangeCallBytes(ctx context.Context, c chain.Client, pk, sig []byte, cid, epoch uint32, forkID uint8, signature, pubkey []byte) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, reportChangeCall(pk, sig, cid, epoch, forkID, signature, pubkey))
}
