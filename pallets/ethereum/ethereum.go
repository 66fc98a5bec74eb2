// Package ethereum exposes the EVM side of the runtime: the EVM chain id and
// the ethereum pallet's transact calls.
package ethereum

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

const (
	Pallet = "Ethereum"

	CallTransact         = "transact"
	CallTransactUnsigned = "transact_unsigned"
)

// The EVM chain id lives in its own pallet.
const (
	ChainIDPallet  = "EVMChainId"
	StorageChainID = "ChainId"
)

// EVMChainID returns the chain id EVM transactions must be signed for.
func EVMChainID(ctx context.Context, c chain.Client, at *chain.Hash) (uint64, bool, error) {
	key, err := chain.NewStorageKey(ChainIDPallet, StorageChainID)
	if err != nil {
		return 0, false, err
	}

	return chain.Query[uint64](ctx, c, key, at)
}

// Transact submits transaction through the ethereum pallet.
func Transact(ctx context.Context, c chain.Client, transaction Transaction) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, chain.NewCall(Pallet, CallTransact, transaction))
}

// TransactUnsigned submits an unsigned EVM transaction.
func TransactUnsigned(ctx context.Context, c chain.Client, transaction Transaction) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, chain.NewCall(Pallet, CallTransactUnsigned, transaction))
}

// TransactUnsignedCallBytes returns the unsigned extrinsic TransactUnsigned
// would submit.
func TransactUnsignedCallBytes(ctx context.Context, c chain.Client, transaction Transaction) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, chain.NewCall(Pallet, CallTransactUnsigned, transaction))
}
