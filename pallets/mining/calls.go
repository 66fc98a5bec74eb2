package mining

import (
	"context"
	"fmt"

	"github.com/gabapcia/palletsapi/chain"
)

// ImOnline submits a device heartbeat.
func ImOnline(ctx context.Context, c chain.Client, payload OnChainPayload) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, chain.NewCall(Pallet, CallImOnline, payload))
}

// ReportStandby reports a device as standing by with the given enclave.
func ReportStandby(ctx context.Context, c chain.Client, id []byte, version uint16, enclaveHash, signature []byte) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, chain.NewCall(Pallet, CallReportStandby, id, version, enclaveHash, signature))
}

// RegisterDeviceWithIdent registers a device and waits until the extrinsic is
// finalized and dispatched successfully.
func RegisterDeviceWithIdent(ctx context.Context, c chain.Client, owner chain.AccountID20, report []byte, version uint16, identity []byte, monitorType MonitorType, signature []byte) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallRegisterDeviceWithIdent, owner, report, version, identity, monitorType, signature)

	progress, err := c.SubmitUnsignedAndWatch(ctx, call)
	if err != nil {
		return chain.Hash{}, chain.AsTransactionError(err)
	}

	finalized, err := progress.WaitForFinalized(ctx)
	if err != nil {
		return chain.Hash{}, fmt.Errorf("wait for finalized: %w", err)
	}

	hash, err := finalized.WaitForSuccess(ctx)
	if err != nil {
		return chain.Hash{}, fmt.Errorf("wait for success: %w", err)
	}

	return hash, nil
}

// UpdateVotes changes the stake placed on each listed device.
func UpdateVotes(ctx context.Context, c chain.Client, changes []VoteChange, nonce *uint32) (chain.Hash, error) {
	return c.SubmitSignedAndWatch(ctx, chain.NewCall(Pallet, CallUpdateVotes, changes), nonce)
}

// JoinService enrolls device id in the service.
func JoinService(ctx context.Context, c chain.Client, id []byte, nonce *uint32) (chain.Hash, error) {
	return c.SubmitSignedAndWatch(ctx, chain.NewCall(Pallet, CallJoinService, id), nonce)
}

// ExitService withdraws device id from the service.
func ExitService(ctx context.Context, c chain.Client, id []byte, nonce *uint32) (chain.Hash, error) {
	return c.SubmitSignedAndWatch(ctx, chain.NewCall(Pallet, CallExitService, id), nonce)
}
