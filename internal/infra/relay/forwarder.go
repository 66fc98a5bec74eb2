// Package relay broadcasts queued relay extrinsics to a node reached over
// JSON-RPC HTTP.
package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/palletsapi/internal/relayqueue"
)

const methodSubmitExtrinsic = "author_submitExtrinsic"

type client struct {
	conn jsonrpc.Client
}

var _ relayqueue.Forwarder = (*client)(nil)

// NewClient returns a Forwarder submitting through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// Forward submits extrinsic with author_submitExtrinsic and returns the hash
// the node reports. Pool rejections are returned as *chain.TransactionError.
func (c *client) Forward(ctx context.Context, extrinsic []byte) (chain.Hash, error) {
	raw, err := c.conn.Fetch(ctx, methodSubmitExtrinsic, hexutil.Encode(extrinsic))
	if err != nil {
		return chain.Hash{}, chain.AsTransactionError(err)
	}

	var result string
	if err := json.Unmarshal(raw, &result); err != nil {
		return chain.Hash{}, fmt.Errorf("decode %s result: %w", methodSubmitExtrinsic, err)
	}

	b, err := hexutil.Decode(result)
	if err != nil {
		return chain.Hash{}, fmt.Errorf("decode %s result: %w", methodSubmitExtrinsic, err)
	}
	if len(b) != len(chain.Hash{}) {
		return chain.Hash{}, fmt.Errorf("decode %s result: hash of %d bytes", methodSubmitExtrinsic, len(b))
	}

	var hash chain.Hash
	copy(hash[:], b)
	return hash, nil
}
