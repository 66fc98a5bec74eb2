// Package chain defines the capability surface the pallet packages consume:
// a Client able to read storage, read constants and submit extrinsics, plus
// the descriptors (StorageKey, ConstantKey, Call) used to address them.
//
// Nothing in this package talks to a node. Implementations live elsewhere
// (see internal/infra/substrate) and tests swap in the mock from chain/mocks.
package chain

import (
	"context"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

// Hash is a 32-byte block or extrinsic hash (H256).
type Hash = types.Hash

// KeyValue is one entry returned by a storage iteration. Key is the full
// storage key, including the pallet/item prefix and hashed map keys.
type KeyValue struct {
	Key   []byte
	Value []byte
}

// Client is the chain capability every pallet function delegates to.
//
// A nil at argument means "latest block". Methods never retry; callers own
// retry policy. A Client is safe for concurrent use.
type Client interface {
	// QueryStorage returns the raw SCALE value stored under key and whether
	// it exists.
	QueryStorage(ctx context.Context, key StorageKey, at *Hash) ([]byte, bool, error)

	// QueryStorageOrDefault returns the stored value, or the fallback the
	// runtime metadata declares for the item when nothing is stored.
	QueryStorageOrDefault(ctx context.Context, key StorageKey, at *Hash) ([]byte, error)

	// QueryStorageValueIter walks every entry under the key prefix, fetching
	// pageSize keys per round trip.
	QueryStorageValueIter(ctx context.Context, prefix StorageKey, pageSize uint32, at *Hash) ([]KeyValue, error)

	// QueryConstant returns the raw SCALE value of a pallet constant.
	QueryConstant(ctx context.Context, key ConstantKey) ([]byte, error)

	// SubmitSignedAndWatch signs call with the configured signer, submits it
	// and waits until it is included in a block.
	SubmitSignedAndWatch(ctx context.Context, call Call, nonce *uint32) (Hash, error)

	// SubmitSigned signs and submits call without waiting for inclusion.
	SubmitSigned(ctx context.Context, call Call, nonce *uint32) (Hash, error)

	// SubmitUnsigned submits call as an unsigned extrinsic.
	SubmitUnsigned(ctx context.Context, call Call) (Hash, error)

	// SubmitUnsignedAndWatch submits call as an unsigned extrinsic and returns
	// a handle tracking its progress.
	SubmitUnsignedAndWatch(ctx context.Context, call Call) (Progress, error)

	// EncodeUnsigned returns the unsigned extrinsic bytes for call without
	// submitting anything.
	EncodeUnsigned(ctx context.Context, call Call) ([]byte, error)

	// BlockNumber returns the number of the block at the given hash, or of
	// the latest block when at is nil.
	BlockNumber(ctx context.Context, at *Hash) (uint32, error)
}

// Progress tracks an extrinsic submitted with a watch subscription.
type Progress interface {
	// ExtrinsicHash is the hash of the submitted extrinsic.
	ExtrinsicHash() Hash

	// WaitForFinalized blocks until the extrinsic's block is finalized, or
	// the extrinsic is dropped, invalidated or usurped.
	WaitForFinalized(ctx context.Context) (FinalizedExtrinsic, error)
}

// FinalizedExtrinsic is an extrinsic whose including block is finalized.
type FinalizedExtrinsic interface {
	// BlockHash is the hash of the finalized block holding the extrinsic.
	BlockHash() Hash

	// WaitForSuccess checks the extrinsic dispatched successfully and returns
	// its hash.
	WaitForSuccess(ctx context.Context) (Hash, error)
}
