// Package committeeassets tracks the BTC and BRC-20 balances held by
// committees.
package committeeassets

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
)

const (
	Pallet = "CommitteeAssets"

	StorageAllConcernedBrc20 = "AllConcernedBrc20"
	StorageBrc20Decimals     = "Brc20Decimals"
	StorageAssetsConsensus   = "AssetsConsensus"

	CallUpdateAssets = "update_assets"
)

// Brc20Asset is the balance of one BRC-20 tick.
type Brc20Asset struct {
	Tick   []byte
	Amount chain.U128
}

// AssetsUpdate is a committee-signed balance report.
type AssetsUpdate struct {
	CID         uint32
	BlockNumber uint32
	BtcAsset    chain.U128
	Brc20Assets []Brc20Asset
	SenderPK    []byte
	SenderSig   []byte
	CmtSig      []byte
	ForkID      uint8
}

func (u AssetsUpdate) call() chain.Call {
	return chain.NewCall(Pallet, CallUpdateAssets,
		u.CID, u.BlockNumber, u.BtcAsset, u.Brc20Assets, u.SenderPK, u.SenderSig, u.CmtSig, u.ForkID)
}

// AllConcernedBrc20 returns the ticks the committees track.
func AllConcernedBrc20(ctx context.Context, c chain.Client, at *chain.Hash) ([][]byte, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageAllConcernedBrc20)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[][]byte](ctx, c, key, at)
}

// Brc20Decimals returns the decimals of tick.
func Brc20Decimals(ctx context.Context, c chain.Client, tick []byte, at *chain.Hash) (uint8, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageBrc20Decimals, tick)
	if err != nil {
		return 0, false, err
	}

	return chain.Query[uint8](ctx, c, key, at)
}

// AssetsConsensus returns the asset consensus of committee cid.
func AssetsConsensus(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := chain.NewStorageKey(Pallet, StorageAssetsConsensus, cid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// UpdateAssets submits a committee balance report as an unsigned extrinsic.
func UpdateAssets(ctx context.Context, c chain.Client, update AssetsUpdate) (chain.Hash, error) {
	return chain.SubmitUnsigned(ctx, c, update.call())
}

// UpdateAssetsCallBytes returns the unsigned extrinsic UpdateAssets would
// submit.
func UpdateAssetsCallBytes(ctx context.Context, c chain.Client, update AssetsUpdate) ([]byte, error) {
	return chain.EncodeUnsigned(ctx, c, update.call())
}
