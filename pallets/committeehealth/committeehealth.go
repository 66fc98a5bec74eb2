// Package committeehealth reads and writes the committee health pallet: the
// identity challenges and state votes devices use to prove liveness.
package committeehealth

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

const Pallet = "CommitteeHealth"

const (
	StorageIdentityChallenge      = "IdentityChallenge"
	StorageCourtMembers           = "CourtMembers"
	StorageConsensusState         = "ConsensusState"
	StorageStateVotes             = "StateVotes"
	StorageConsensusConfirms      = "ConsensusConfirms"
	StorageSubmitDevicesWhitelist = "SubmitDevicesWhitelist"
	StorageSubmitDevices          = "SubmitDevices"
	StorageSubmitDevicesSize      = "SubmitDevicesSize"
)

const (
	CallReportHealth    = "report_health"
	CallReportStateVote = "report_state_vote"
)

// ConsensusStage is the phase of a health consensus round.
type ConsensusStage uint8

// Challenge is the challenge an identity must answer in a session.
type Challenge struct {
	Session   uint32
	Challenge []byte
}

// IdentityChallenge returns the pending challenge of identity, or the zero
// Challenge.
func IdentityChallenge(ctx context.Context, c chain.Client, identity []byte, at *chain.Hash) (Challenge, error) {
	key, err := chain.NewStorageKey(Pallet, StorageIdentityChallenge, identity)
	if err != nil {
		return Challenge{}, err
	}

	return chain.QueryOrZero[Challenge](ctx, c, key, at)
}

// CourtMembers returns the identities judging health reports.
func CourtMembers(ctx context.Context, c chain.Client, at *chain.Hash) ([][]byte, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageCourtMembers)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[][]byte](ctx, c, key, at)
}

// ConsensusState returns the state of the current health consensus.
func ConsensusState(ctx context.Context, c chain.Client, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageConsensusState)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// StateVotes returns the state vote of deviceID, or nil.
func StateVotes(ctx context.Context, c chain.Client, deviceID []byte, at *chain.Hash) ([]byte, error) {
	key, err := chain.NewStorageKey(Pallet, StorageStateVotes, deviceID)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrZero[[]byte](ctx, c, key, at)
}

// ConsensusConfirms returns the confirmations of an epoch stage.
func ConsensusConfirms(ctx context.Context, c chain.Client, epoch uint64, stage ConsensusStage, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageConsensusConfirms, epoch, stage)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// SubmitDevicesWhitelist returns the devices allowed to submit reports.
func SubmitDevicesWhitelist(ctx context.Context, c chain.Client, at *chain.Hash) ([][]byte, error) {
	return deviceList(ctx, c, StorageSubmitDevicesWhitelist, at)
}

// SubmitDevices returns the devices selected to submit reports.
func SubmitDevices(ctx context.Context, c chain.Client, at *chain.Hash) ([][]byte, error) {
	return deviceList(ctx, c, StorageSubmitDevices, at)
}

// SubmitDevicesSize returns how many submitting devices are selected, or 0.
func SubmitDevicesSize(ctx context.Context, c chain.Client, at *chain.Hash) (uint16, error) {
	key, err := chain.NewStorageKey(Pallet, StorageSubmitDevicesSize)
	if err != nil {
		return 0, err
	}

	return chain.QueryOrZero[uint16](ctx, c, key, at)
}

func deviceList(ctx context.Context, c chain.Client, item string, at *chain.Hash) ([][]byte, error) {
	key, err := chain.NewStorageKey(Pallet, item)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrZero[[][]byte](ctx, c, key, at)
}

// ReportHealth answers the identity challenge of ident.
func ReportHealth(ctx context.Context, c chain.Client, ident, sig []byte) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, chain.NewCall(Pallet, CallReportHealth, ident, sig))
}

// ReportHealthCallBytes returns the unsigned extrinsic ReportHealth would
// submit.
func ReportHealthCallBytes(ctx context.Context, c chain.Client, ident, sig []byte) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, chain.NewCall(Pallet, CallReportHealth, ident, sig))
}

// ReportStateVote submits the state vote of deviceID.
func ReportStateVote(ctx context.Context, c chain.Client, deviceID, sig []byte) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, chain.NewCall(Pallet, CallReportStateVote, deviceID, sig))
}

// ReportStateVoteCallBytes returns the unsigned extrinsic ReportStateVote
// would submit.
func ReportStateVoteCallBytes(ctx context.Context, c chain.Client, deviceID, sig []byte) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, chain.NewCall(Pallet, CallReportStateVote, deviceID, sig))
}
