// Package watcher bundles the operations a device watcher performs against
// the chain: registering, sending heartbeats, fetching the session challenge
// and relaying results through the EVM precompiles. Hashes are returned as
// 0x-prefixed hex strings.
package watcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/evmrelay"
	"github.com/gabapcia/palletsapi/internal/pkg/logger"
	"github.com/gabapcia/palletsapi/pallets/facility"
	"github.com/gabapcia/palletsapi/pallets/mining"
)

// ErrNoWorkingDevice is returned when the current session has no working
// device set at all.
var ErrNoWorkingDevice = errors.New("no working device")

// SessionChallenge is the challenge a working device must answer in Session.
// Challenge holds the SCALE encoding of the on-chain U256.
type SessionChallenge struct {
	Session   uint32
	Challenge []byte
}

// Service runs watcher operations over a shared chain client.
type Service struct {
	client  chain.Client
	relayer *evmrelay.Relayer
}

// New returns a Service using c for every operation.
func New(c chain.Client) *Service {
	return &Service{
		client:  c,
		relayer: evmrelay.NewRelayer(c),
	}
}

// CallRegisterV2 registers the device did on behalf of configOwner, a hex
// encoded 20-byte account, and waits for the registration to be finalized.
func (s *Service) CallRegisterV2(ctx context.Context, configOwner string, did facility.DIdentity, report, identity []byte, monitorType mining.MonitorType, signature []byte) (string, error) {
	owner, err := chain.AccountID20FromHex(configOwner)
	if err != nil {
		return "", fmt.Errorf("config owner %q: %w", configOwner, err)
	}

	hash, err := mining.RegisterDeviceWithIdent(ctx, s.client, owner, report, did.Version, identity, monitorType, signature)
	if err != nil {
		logger.Error(ctx, "register device failed", "owner", owner.Hex(), "version", did.Version, "error", err)
		return "", err
	}

	return hexutil.Encode(hash[:]), nil
}

// CallHeartbeat submits the heartbeat of did for session.
func (s *Service) CallHeartbeat(ctx context.Context, did facility.DIdentity, signature, proof []byte, session uint32, enclave []byte) (string, error) {
	payload := mining.OnChainPayload{
		DID:       did,
		Proof:     proof,
		Session:   session,
		Signature: signature,
		Enclave:   enclave,
	}

	hash, err := mining.ImOnline(ctx, s.client, payload)
	if err != nil {
		logger.Error(ctx, "heartbeat failed", "session", session, "error", err)
		return "", err
	}

	return hexutil.Encode(hash[:]), nil
}

// QuerySessionAndChallenge returns the current session and its challenge when
// did is an active working device of that session. It reports false when the
// device is not working or no challenge is set.
func (s *Service) QuerySessionAndChallenge(ctx context.Context, did facility.DIdentity) (SessionChallenge, bool, error) {
	devices, session, ok, err := mining.WorkingDevices(ctx, s.client, nil, nil)
	if err != nil {
		return SessionChallenge{}, false, err
	}
	if !ok {
		return SessionChallenge{}, false, ErrNoWorkingDevice
	}

	working := slices.ContainsFunc(devices, func(d mining.WorkingDevice) bool {
		return !d.Flag && d.DID.Version == did.Version && bytes.Equal(d.DID.PK, did.PK)
	})
	if !working {
		return SessionChallenge{}, false, nil
	}

	challenge, ok, err := mining.Challenges(ctx, s.client, session, nil)
	if err != nil || !ok {
		return SessionChallenge{}, false, err
	}

	encoded, err := codec.Encode(challenge)
	if err != nil {
		return SessionChallenge{}, false, err
	}

	return SessionChallenge{Session: session, Challenge: encoded}, true, nil
}

// ReportResultByEVM relays a committee signing result to the channel
// precompile. With callBytes set it returns the unsigned extrinsic instead of
// submitting it; otherwise it returns the extrinsic hash.
func (s *Service) ReportResultByEVM(ctx context.Context, pk, sig []byte, cid uint32, forkID uint8, hash chain.Hash, signature []byte, callBytes bool) ([]byte, error) {
	mode := evmrelay.Broadcast
	if callBytes {
		mode = evmrelay.EncodeOnly
	}

	return s.relayer.ReportResult(ctx, pk, sig, cid, forkID, hash, signature, mode)
}

// JoinOrExitServiceUnsignedByEVM relays a device's join or exit request to
// the mining precompile.
func (s *Service) JoinOrExitServiceUnsignedByEVM(ctx context.Context, id, msg, signature []byte, purpose mining.Purpose) (string, error) {
	hash, err := s.relayer.JoinOrExitService(ctx, id, uint8(purpose), msg, signature, evmrelay.Broadcast)
	if err != nil {
		return "", err
	}

	return hexutil.Encode(hash), nil
}

// QueryCurrentBlockNumber returns the number of the latest block.
func (s *Service) QueryCurrentBlockNumber(ctx context.Context) (uint32, error) {
	return s.client.BlockNumber(ctx, nil)
}
