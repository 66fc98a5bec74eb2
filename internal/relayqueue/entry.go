package relayqueue

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gabapcia/palletsapi/chain"
)

// Entry is an encoded relay extrinsic waiting to be broadcast.
type Entry struct {
	ID        string        `json:"id" validate:"required,uuid4"`
	Operation string        `json:"operation" validate:"required"`
	Extrinsic hexutil.Bytes `json:"extrinsic" validate:"required,min=1"`
	CreatedAt time.Time     `json:"created_at" validate:"required"`
}

// Outbox stores entries in insertion order until they are acknowledged.
type Outbox interface {
	// Push appends entry to the outbox.
	Push(ctx context.Context, entry Entry) error

	// Peek returns up to n of the oldest entries without removing them.
	Peek(ctx context.Context, n int64) ([]Entry, error)

	// Ack removes entry from the outbox. Acknowledging an entry that is no
	// longer stored is not an error.
	Ack(ctx context.Context, entry Entry) error

	// Len returns the number of stored entries.
	Len(ctx context.Context) (int64, error)
}

// Forwarder broadcasts an encoded extrinsic and returns its hash.
type Forwarder interface {
	Forward(ctx context.Context, extrinsic []byte) (chain.Hash, error)
}

// ForwarderFunc adapts a function to Forwarder.
type ForwarderFunc func(ctx context.Context, extrinsic []byte) (chain.Hash, error)

func (f ForwarderFunc) Forward(ctx context.Context, extrinsic []byte) (chain.Hash, error) {
	return f(ctx, extrinsic)
}
