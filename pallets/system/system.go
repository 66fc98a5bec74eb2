// Package system reads block numbers and hashes from the system pallet.
package system

import (
	"context"
	"errors"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/pkg/logger"
)

const (
	Pallet = "System"

	StorageBlockHash = "BlockHash"
	StorageNumber    = "Number"
)

var (
	// ErrNoBlockNumber is returned when the runtime has no current block number.
	ErrNoBlockNumber = errors.New("latest block number returned none")

	// ErrNoBlockHash is returned when no hash is kept for the latest number.
	ErrNoBlockHash = errors.New("block hash by latest number returned none")
)

// BlockHash returns the hash of the block at height. Only recent heights are
// kept by the runtime.
func BlockHash(ctx context.Context, c chain.Client, height uint32, at *chain.Hash) (chain.Hash, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageBlockHash, height)
	if err != nil {
		return chain.Hash{}, false, err
	}

	hash, ok, err := chain.Query[chain.Hash](ctx, c, key, at)
	if err != nil {
		logger.Error(ctx, "query block hash failed", "height", height, "error", err)
		return chain.Hash{}, false, err
	}

	if !ok {
		logger.Warn(ctx, "query none block hash", "height", height)
	}

	return hash, ok, nil
}

// LatestBlockNumber returns the number of the block at.
func LatestBlockNumber(ctx context.Context, c chain.Client, at *chain.Hash) (uint32, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageNumber)
	if err != nil {
		return 0, false, err
	}

	number, ok, err := chain.Query[uint32](ctx, c, key, at)
	if err != nil {
		logger.Error(ctx, "query latest block number failed", "error", err)
		return 0, false, err
	}

	if !ok {
		logger.Warn(ctx, "query none latest block number")
	}

	return number, ok, nil
}

// LatestBlockHash returns the hash of the block at, resolved through its
// number.
func LatestBlockHash(ctx context.Context, c chain.Client, at *chain.Hash) (chain.Hash, error) {
	number, ok, err := LatestBlockNumber(ctx, c, at)
	if err != nil {
		return chain.Hash{}, err
	}
	if !ok {
		return chain.Hash{}, ErrNoBlockNumber
	}

	hash, ok, err := BlockHash(ctx, c, number, at)
	if err != nil {
		return chain.Hash{}, err
	}
	if !ok {
		return chain.Hash{}, ErrNoBlockHash
	}

	return hash, nil
}
