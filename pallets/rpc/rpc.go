// Package rpc reads and writes the rpc pallet, which registers the RPC
// devices serving watcher nodes.
package rpc

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

const (
	Pallet = "Rpc"

	StorageDevices                       = "Devices"
	StorageWatcherDeviceidMapRpcDeviceid = "WatcherDeviceidMapRpcDeviceid"
	StorageEthCheckpoint                 = "EthCheckpoint"

	CallRegisterDevice = "register_device"
)

// DeviceInfo returns the RPC device registered under id.
func DeviceInfo(ctx context.Context, c chain.Client, id []byte, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageDevices, id)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// RelateDeviceID returns the RPC devices serving watcher device id.
func RelateDeviceID(ctx context.Context, c chain.Client, id []byte, at *chain.Hash) ([][]byte, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageWatcherDeviceidMapRpcDeviceid, id)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[][]byte](ctx, c, key, at)
}

// EthCheckpoint returns the latest Ethereum checkpoint.
func EthCheckpoint(ctx context.Context, c chain.Client, at *chain.Hash) ([]byte, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageEthCheckpoint)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[]byte](ctx, c, key, at)
}

// RegisterDevice registers an RPC device owned by owner.
func RegisterDevice(ctx context.Context, c chain.Client, owner chain.AccountID20, report []byte, version uint16, signature, deviceID []byte) (chain.Hash, error) {
	call := chain.NewCall(Pallet, CallRegisterDevice, owner, report, version, signature, deviceID)
	return c.SubmitUnsigned(ctx, call)
}
