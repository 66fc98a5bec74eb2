// Package configs reads the runtime tunables of the configs pallet.
package configs

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

const Pallet = "Configs"

const (
	StorageRoundMsgWait            = "RoundMsgWait"
	StorageRoundMsgRequestLimit    = "RoundMsgRequestLimit"
	StorageMonitorDelayTolerance   = "MonitorDelayTolerance"
	StorageDeviceURLMap            = "DeviceUrlMap"
	StorageSimpleSign              = "SimpleSign"
	StorageSimpleKey               = "SimpleKey"
	StorageDeviceHeartbeatInterval = "DeviceHeartbeatInterval"
)

func RoundMsgWait(ctx context.Context, c chain.Client, at *chain.Hash) (uint64, bool, error) {
	return optional[uint64](ctx, c, StorageRoundMsgWait, at)
}

func RoundMsgRequestLimit(ctx context.Context, c chain.Client, at *chain.Hash) (uint8, bool, error) {
	return optional[uint8](ctx, c, StorageRoundMsgRequestLimit, at)
}

// MonitorDelayTolerance returns the block delay tolerated on chainID, or 0.
func MonitorDelayTolerance(ctx context.Context, c chain.Client, chainID uint32, at *chain.Hash) (uint64, error) {
	key, err := chain.NewStorageKey(Pallet, StorageMonitorDelayTolerance, chainID)
	if err != nil {
		return 0, err
	}

	return chain.QueryOrZero[uint64](ctx, c, key, at)
}

// MonitorDelayToleranceIter returns the tolerance of every chain keyed by
// chain id.
func MonitorDelayToleranceIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Pair[uint32, uint64], error) {
	prefix, err := chain.NewStorageKey(Pallet, StorageMonitorDelayTolerance)
	if err != nil {
		return nil, err
	}

	return chain.IterKeyed[uint32, uint64](ctx, c, prefix, chain.DefaultPageSize, at, chain.KeyU32)
}

// DeviceURLMap returns the endpoint registered for device id.
func DeviceURLMap(ctx context.Context, c chain.Client, id []byte, at *chain.Hash) ([]byte, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageDeviceURLMap, id)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[]byte](ctx, c, key, at)
}

func SimpleSign(ctx context.Context, c chain.Client, at *chain.Hash) (bool, error) {
	return flag(ctx, c, StorageSimpleSign, at)
}

func SimpleKey(ctx context.Context, c chain.Client, at *chain.Hash) (bool, error) {
	return flag(ctx, c, StorageSimpleKey, at)
}

func DeviceHeartbeatInterval(ctx context.Context, c chain.Client, at *chain.Hash) (uint64, bool, error) {
	return optional[uint64](ctx, c, StorageDeviceHeartbeatInterval, at)
}

func optional[T any](ctx context.Context, c chain.Client, item string, at *chain.Hash) (T, bool, error) {
	key, err := chain.NewStorageKey(Pallet, item)
	if err != nil {
		var zero T
		return zero, false, err
	}

	return chain.Query[T](ctx, c, key, at)
}

func flag(ctx context.Context, c chain.Client, item string, at *chain.Hash) (bool, error) {
	key, err := chain.NewStorageKey(Pallet, item)
	if err != nil {
		return false, err
	}

	return chain.QueryOrZero[bool](ctx, c, key, at)
}
