package chain

import "context"

// DefaultPageSize is the number of keys fetched per round trip when a
// storage map is iterated without an explicit page size.
const DefaultPageSize uint32 = 300

// Submit signs and submits call, waiting for inclusion only when watch is set.
func Submit(ctx context.Context, c Client, call Call, watch bool, nonce *uint32) (Hash, error) {
	if watch {
		return c.SubmitSignedAndWatch(ctx, call, nonce)
	}
	return c.SubmitSigned(ctx, call, nonce)
}

// SubmitUnsigned submits call as an unsigned extrinsic, converting pool
// rejections into *TransactionError.
func SubmitUnsigned(ctx context.Context, c Client, call Call) (Hash, error) {
	hash, err := c.SubmitUnsigned(ctx, call)
	return hash, AsTransactionError(err)
}

// EncodeUnsigned returns the unsigned extrinsic bytes for call, converting
// node errors into *TransactionError.
func EncodeUnsigned(ctx context.Context, c Client, call Call) ([]byte, error) {
	bz, err := c.EncodeUnsigned(ctx, call)
	if err != nil {
		return nil, AsTransactionError(err)
	}
	return bz, nil
}
