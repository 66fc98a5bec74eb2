package substrate

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gabapcia/palletsapi/chain"
	ptypes "github.com/gabapcia/palletsapi/internal/pkg/types"
)

// storageChangeSet is one entry of a state_queryStorageAt response.
type storageChangeSet struct {
	Block   string      `json:"block"`
	Changes [][2]*string `json:"changes"`
}

func (c *Client) QueryStorage(ctx context.Context, key chain.StorageKey, at *chain.Hash) (value []byte, ok bool, err error) {
	ctx, span := c.startSpan(ctx, "QueryStorage", attribute.String("storage", key.String()))
	defer func() { end(span, err) }()

	raw, err := c.currentRuntime().storageKey(key)
	if err != nil {
		return nil, false, err
	}

	return c.getStorage(ctx, raw, at)
}

func (c *Client) QueryStorageOrDefault(ctx context.Context, key chain.StorageKey, at *chain.Hash) (value []byte, err error) {
	ctx, span := c.startSpan(ctx, "QueryStorageOrDefault", attribute.String("storage", key.String()))
	defer func() { end(span, err) }()

	rt := c.currentRuntime()
	raw, err := rt.storageKey(key)
	if err != nil {
		return nil, err
	}

	value, ok, err := c.getStorage(ctx, raw, at)
	if err != nil {
		return nil, err
	}
	if ok {
		return value, nil
	}

	return rt.fallback(key)
}

func (c *Client) QueryStorageValueIter(ctx context.Context, prefix chain.StorageKey, pageSize uint32, at *chain.Hash) (entries []chain.KeyValue, err error) {
	ctx, span := c.startSpan(ctx, "QueryStorageValueIter", attribute.String("storage", prefix.String()))
	defer func() { end(span, err) }()

	raw, err := c.currentRuntime().storageKey(prefix)
	if err != nil {
		return nil, err
	}
	if pageSize == 0 {
		pageSize = chain.DefaultPageSize
	}

	prefixHex := hexutil.Encode(raw)
	var start *string
	for {
		args := []any{prefixHex, pageSize, start}
		if at != nil {
			args = append(args, at.Hex())
		}

		var keys []string
		if err := c.transport.Call(ctx, &keys, "state_getKeysPaged", args...); err != nil {
			return nil, fmt.Errorf("list %s keys: %w", prefix, err)
		}
		if len(keys) == 0 {
			break
		}

		page, err := c.queryStorageAt(ctx, keys, at)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", prefix, err)
		}
		entries = append(entries, page...)

		if uint32(len(keys)) < pageSize {
			break
		}
		start = &keys[len(keys)-1]
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return entries, nil
}

func (c *Client) QueryConstant(ctx context.Context, key chain.ConstantKey) ([]byte, error) {
	return c.currentRuntime().constant(key)
}

func (c *Client) BlockNumber(ctx context.Context, at *chain.Hash) (n uint32, err error) {
	ctx, span := c.startSpan(ctx, "BlockNumber")
	defer func() { end(span, err) }()

	var header struct {
		Number ptypes.Hex `json:"number"`
	}
	if err := c.transport.Call(ctx, &header, "chain_getHeader", withBlock(at)...); err != nil {
		return 0, fmt.Errorf("fetch header: %w", err)
	}

	return header.Number.Uint32()
}

func (c *Client) getStorage(ctx context.Context, key []byte, at *chain.Hash) ([]byte, bool, error) {
	var value *string
	if err := c.transport.Call(ctx, &value, "state_getStorage", withBlock(at, hexutil.Encode(key))...); err != nil {
		return nil, false, err
	}
	if value == nil {
		return nil, false, nil
	}

	bz, err := decodeHex(*value)
	if err != nil {
		return nil, false, err
	}
	return bz, true, nil
}

func (c *Client) queryStorageAt(ctx context.Context, keys []string, at *chain.Hash) ([]chain.KeyValue, error) {
	var sets []storageChangeSet
	if err := c.transport.Call(ctx, &sets, "state_queryStorageAt", withBlock(at, keys)...); err != nil {
		return nil, err
	}

	var out []chain.KeyValue
	for _, set := range sets {
		for _, change := range set.Changes {
			if change[0] == nil || change[1] == nil {
				continue
			}

			key, err := decodeHex(*change[0])
			if err != nil {
				return nil, err
			}
			value, err := decodeHex(*change[1])
			if err != nil {
				return nil, err
			}
			out = append(out, chain.KeyValue{Key: key, Value: value})
		}
	}
	return out, nil
}

func decodeHex(s string) ([]byte, error) {
	bz, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex %q: %w", s, err)
	}
	return bz, nil
}
