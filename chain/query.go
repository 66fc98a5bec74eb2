package chain

import (
	"bytes"
	"context"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// Decode decodes a raw SCALE value into T. An Encoded target receives a copy
// of the raw bytes.
func Decode[T any](raw []byte) (T, error) {
	var v T
	if e, ok := any(&v).(*Encoded); ok {
		*e = bytes.Clone(raw)
		return v, nil
	}

	if err := codec.Decode(raw, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return v, nil
}

// Query reads key and decodes it into T. The bool result reports whether the
// item exists; when it does not, the zero T is returned.
func Query[T any](ctx context.Context, c Client, key StorageKey, at *Hash) (T, bool, error) {
	var zero T

	raw, ok, err := c.QueryStorage(ctx, key, at)
	if err != nil || !ok {
		return zero, false, err
	}

	v, err := Decode[T](raw)
	if err != nil {
		return zero, false, fmt.Errorf("%s: %w", key, err)
	}

	return v, true, nil
}

// QueryOr reads key and falls back to def when nothing is stored.
func QueryOr[T any](ctx context.Context, c Client, key StorageKey, at *Hash, def T) (T, error) {
	v, ok, err := Query[T](ctx, c, key, at)
	if err != nil {
		return def, err
	}

	if !ok {
		return def, nil
	}

	return v, nil
}

// QueryOrZero reads key and falls back to the zero T when nothing is stored.
func QueryOrZero[T any](ctx context.Context, c Client, key StorageKey, at *Hash) (T, error) {
	var zero T
	return QueryOr(ctx, c, key, at, zero)
}

// QueryOrDefault reads key and falls back to the default the runtime metadata
// declares for the item.
func QueryOrDefault[T any](ctx context.Context, c Client, key StorageKey, at *Hash) (T, error) {
	raw, err := c.QueryStorageOrDefault(ctx, key, at)
	if err != nil {
		var zero T
		return zero, err
	}

	v, err := Decode[T](raw)
	if err != nil {
		return v, fmt.Errorf("%s: %w", key, err)
	}

	return v, nil
}

// Entry is a decoded storage entry; Key is the full raw storage key.
type Entry[T any] struct {
	Key   []byte
	Value T
}

// Iter walks every entry under prefix and decodes the values into T.
func Iter[T any](ctx context.Context, c Client, prefix StorageKey, pageSize uint32, at *Hash) ([]Entry[T], error) {
	kvs, err := c.QueryStorageValueIter(ctx, prefix, pageSize, at)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry[T], 0, len(kvs))
	for _, kv := range kvs {
		v, err := Decode[T](kv.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", prefix, err)
		}

		entries = append(entries, Entry[T]{Key: kv.Key, Value: v})
	}

	return entries, nil
}

// Values walks every entry under prefix and keeps only the decoded values.
func Values[T any](ctx context.Context, c Client, prefix StorageKey, pageSize uint32, at *Hash) ([]T, error) {
	entries, err := Iter[T](ctx, c, prefix, pageSize, at)
	if err != nil {
		return nil, err
	}

	values := make([]T, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}

	return values, nil
}

// IterKeyed walks every entry under prefix and decodes each key with
// decodeKey, which must be one of the key-shape decoders in this package.
func IterKeyed[K, T any](ctx context.Context, c Client, prefix StorageKey, pageSize uint32, at *Hash, decodeKey func([]byte) (K, error)) ([]Pair[K, T], error) {
	entries, err := Iter[T](ctx, c, prefix, pageSize, at)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair[K, T], 0, len(entries))
	for _, e := range entries {
		k, err := decodeKey(e.Key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", prefix, err)
		}

		pairs = append(pairs, Pair[K, T]{Key: k, Value: e.Value})
	}

	return pairs, nil
}

// Pair is a storage entry whose key was decoded back into its Go value.
type Pair[K, T any] struct {
	Key   K
	Value T
}

// Constant reads and decodes a pallet constant.
func Constant[T any](ctx context.Context, c Client, key ConstantKey) (T, error) {
	raw, err := c.QueryConstant(ctx, key)
	if err != nil {
		var zero T
		return zero, err
	}

	v, err := Decode[T](raw)
	if err != nil {
		return v, fmt.Errorf("%s: %w", key, err)
	}

	return v, nil
}
