package evmrelay

import (
	"context"
	"fmt"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/pkg/logger"
	"github.com/gabapcia/palletsapi/pallets/ethereum"
)

// Mode selects what Dispatch does with an envelope.
type Mode uint8

const (
	// Broadcast submits the envelope through Ethereum.transact_unsigned and
	// returns the extrinsic hash once the pool accepts it, without waiting
	// for inclusion.
	Broadcast Mode = iota
	// EncodeOnly returns the unsigned extrinsic bytes without submitting.
	EncodeOnly
)

func (m Mode) String() string {
	switch m {
	case Broadcast:
		return "broadcast"
	case EncodeOnly:
		return "encode-only"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Relayer builds and dispatches relay envelopes over a chain client. It holds
// no state besides the client and is safe for concurrent use.
type Relayer struct {
	client  chain.Client
	chainID ChainIDSource
}

// NewRelayer returns a Relayer reading the chain id from c.
func NewRelayer(c chain.Client) *Relayer {
	return &Relayer{client: c, chainID: ClientChainID(c)}
}

// Dispatch hands tx to the client once. Broadcast returns the 32-byte
// extrinsic hash; EncodeOnly returns the extrinsic bytes. Client errors are
// returned as is.
func (r *Relayer) Dispatch(ctx context.Context, tx ethereum.Transaction, mode Mode) ([]byte, error) {
	switch mode {
	case Broadcast:
		hash, err := ethereum.TransactUnsigned(ctx, r.client, tx)
		if err != nil {
			return nil, err
		}
		return hash[:], nil
	case EncodeOnly:
		return ethereum.TransactUnsignedCallBytes(ctx, r.client, tx)
	default:
		return nil, fmt.Errorf("unknown dispatch mode %d", mode)
	}
}

// Relay wraps input in an envelope for op and dispatches it.
func (r *Relayer) Relay(ctx context.Context, op Operation, input EncodedCall, mode Mode) ([]byte, error) {
	ctx = logger.Derive(ctx, "operation", op.String(), "mode", mode.String())

	tx, err := BuildEnvelope(ctx, r.chainID, op, input)
	if err != nil {
		logger.Error(ctx, "build relay envelope failed", "error", err)
		return nil, err
	}

	out, err := r.Dispatch(ctx, tx, mode)
	if err != nil {
		logger.Error(ctx, "dispatch relay envelope failed", "error", err)
		return nil, err
	}

	logger.Debug(ctx, "relay envelope dispatched", "chain_id", tx.EIP1559.ChainID, "input_size", len(input))
	return out, nil
}

// ReportResult relays a committee signing result to the channel precompile.
func (r *Relayer) ReportResult(ctx context.Context, pk, sig []byte, cid uint32, forkID uint8, hash chain.Hash, signature []byte, mode Mode) ([]byte, error) {
	return r.Relay(ctx, ReportResult, ReportResultInput(pk, sig, cid, forkID, hash, signature), mode)
}

// JoinOrExitService relays a device's join or exit request to the mining
// precompile.
func (r *Relayer) JoinOrExitService(ctx context.Context, id []byte, purpose uint8, msg, signature []byte, mode Mode) ([]byte, error) {
	return r.Relay(ctx, JoinOrExitServiceUnsigned, JoinOrExitServiceInput(id, purpose, msg, signature), mode)
}
