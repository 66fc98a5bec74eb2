package evmrelay

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/pallets/ethereum"
)

// Gas policy. Relayed calls never estimate gas.
const (
	MaxPriorityFeePerGas uint64 = 1_500_000_000
	MaxFeePerGas         uint64 = 4_500_000_000
	GasLimit             uint64 = 50_000_000
)

// ErrChainIDUnavailable is returned when the EVM chain id cannot be read or is
// not set. No default is ever substituted.
var ErrChainIDUnavailable = errors.New("get evm chain failed")

// ChainIDSource reports the EVM chain id envelopes are built for.
type ChainIDSource interface {
	EVMChainID(ctx context.Context) (uint64, bool, error)
}

// ChainIDSourceFunc adapts a function to ChainIDSource.
type ChainIDSourceFunc func(ctx context.Context) (uint64, bool, error)

func (f ChainIDSourceFunc) EVMChainID(ctx context.Context) (uint64, bool, error) {
	return f(ctx)
}

// ClientChainID reads the chain id from the EVMChainId pallet at the latest
// block on every call.
func ClientChainID(c chain.Client) ChainIDSource {
	return ChainIDSourceFunc(func(ctx context.Context) (uint64, bool, error) {
		return ethereum.EVMChainID(ctx, c, nil)
	})
}

// BuildEnvelope wraps input in an unsigned EIP-1559 transaction calling the
// precompile serving op. The chain id is fetched from src right before
// building.
func BuildEnvelope(ctx context.Context, src ChainIDSource, op Operation, input EncodedCall) (ethereum.Transaction, error) {
	chainID, ok, err := src.EVMChainID(ctx)
	if err != nil {
		return ethereum.Transaction{}, fmt.Errorf("%w: %w", ErrChainIDUnavailable, err)
	}
	if !ok {
		return ethereum.Transaction{}, ErrChainIDUnavailable
	}

	return ethereum.Transaction{EIP1559: ethereum.EIP1559Transaction{
		ChainID:              chainID,
		Nonce:                u256(0),
		MaxPriorityFeePerGas: u256(MaxPriorityFeePerGas),
		MaxFeePerGas:         u256(MaxFeePerGas),
		GasLimit:             u256(GasLimit),
		Action:               ethereum.Call(types.H160(Lookup(op).Target)),
		Value:                u256(0),
		Input:                input,
		AccessList:           []ethereum.AccessListItem{},
	}}, nil
}

// EthereumTx returns the go-ethereum view of an envelope, for hashing or
// inspection. Contract creations are not representable and return nil.
func EthereumTx(tx ethereum.Transaction) *gethtypes.Transaction {
	e := tx.EIP1559
	if e.Action.To == nil {
		return nil
	}

	to := common.Address(*e.Action.To)
	accessList := make(gethtypes.AccessList, 0, len(e.AccessList))
	for _, item := range e.AccessList {
		keys := make([]common.Hash, len(item.StorageKeys))
		for i, k := range item.StorageKeys {
			keys[i] = common.Hash(k)
		}
		accessList = append(accessList, gethtypes.AccessTuple{Address: common.Address(item.Address), StorageKeys: keys})
	}

	v := new(big.Int)
	if e.OddYParity {
		v.SetUint64(1)
	}

	return gethtypes.NewTx(&gethtypes.DynamicFeeTx{
		ChainID:    new(big.Int).SetUint64(e.ChainID),
		Nonce:      bigOf(e.Nonce).Uint64(),
		GasTipCap:  bigOf(e.MaxPriorityFeePerGas),
		GasFeeCap:  bigOf(e.MaxFeePerGas),
		Gas:        bigOf(e.GasLimit).Uint64(),
		To:         &to,
		Value:      bigOf(e.Value),
		Data:       common.CopyBytes(e.Input),
		AccessList: accessList,
		V:          v,
		R:          new(big.Int).SetBytes(e.R[:]),
		S:          new(big.Int).SetBytes(e.S[:]),
	})
}

func u256(v uint64) chain.U256 {
	return types.NewU256(*new(big.Int).SetUint64(v))
}

func bigOf(u chain.U256) *big.Int {
	if u.Int == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.Int)
}
