// Package timestamp reads the block timestamp.
package timestamp

import (
	"context"
	"time"

	"github.com/gabapcia/palletsapi/chain"
)

const (
	Pallet     = "Timestamp"
	StorageNow = "Now"
)

// Now returns the timestamp of the block at in milliseconds since the epoch.
func Now(ctx context.Context, c chain.Client, at *chain.Hash) (uint64, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageNow)
	if err != nil {
		return 0, false, err
	}

	return chain.Query[uint64](ctx, c, key, at)
}

// Time converts a Now value to a time.Time.
func Time(ms uint64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}
