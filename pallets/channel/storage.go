package channel

import (
	"context"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/internal/pkg/logger"
)

// TxMessages returns the transaction message recorded for hash on committee cid.
func TxMessages(ctx context.Context, c chain.Client, cid uint32, hash chain.Hash, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageTxMessages, cid, hash)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// ChannelInfo returns the channel registered under channelID.
func ChannelInfo(ctx context.Context, c chain.Client, channelID uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageChannelInfo, channelID)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// HashesForCid returns the pending source transactions and BTC tunnel of a
// committee.
func HashesForCid(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageHashesForCid, cid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// SourceTxPackage returns the source transactions grouped under packageKey.
func SourceTxPackage(ctx context.Context, c chain.Client, cid uint32, packageKey []byte, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageSourceTxPackage, cid, packageKey)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// SourceHashToPackageKey returns the package key a source hash was bundled into.
func SourceHashToPackageKey(ctx context.Context, c chain.Client, chainID uint32, srcHash []byte, at *chain.Hash) ([]byte, bool, error) {
	key, err := storageKey(StorageSourceHashToPackageKey, chainID, srcHash)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[]byte](ctx, c, key, at)
}

// BtcCommitteeType returns the BTC script type bound to committee cid.
func BtcCommitteeType(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageBtcCommitteeType, cid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// BtcCommitteeTypeIter returns every BTC committee type.
func BtcCommitteeTypeIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Encoded, error) {
	return values(ctx, c, StorageBtcCommitteeType, at)
}

// EscapeTaproot returns the escape taproot pair of committee cid.
func EscapeTaproot(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageEscapeTaproots, cid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// EscapeTaprootIter returns every escape taproot pair.
func EscapeTaprootIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Encoded, error) {
	return values(ctx, c, StorageEscapeTaproots, at)
}

// BoundScript returns the BTC script pair bound to committee cid.
func BoundScript(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageBoundScripts, cid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// BoundScriptIter returns every bound script pair.
func BoundScriptIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Encoded, error) {
	return values(ctx, c, StorageBoundScripts, at)
}

// RefreshRecord returns the refresh record of an inscription output.
func RefreshRecord(ctx context.Context, c chain.Client, inscriptionHash []byte, inscriptionPos uint8, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageRefreshData, inscriptionHash, inscriptionPos)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// CommitteeXudtList returns the xUDT tokens issued by committee cid.
func CommitteeXudtList(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageCommitteeXudtList, cid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// CommitteeXudtRecord returns the issuance record of one xUDT token.
func CommitteeXudtRecord(ctx context.Context, c chain.Client, cid uint32, argsOfToken []byte, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageCommitteeXudtRecord, cid, argsOfToken)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// UidConsensusRecord returns the consensus record of uid on committee cid.
func UidConsensusRecord(ctx context.Context, c chain.Client, cid uint32, uid []byte, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageUidConsensusRecord, cid, uid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// CommitteeFeeData returns the fee configuration of committee cid.
func CommitteeFeeData(ctx context.Context, c chain.Client, cid uint32, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageCommitteeFeeData, cid)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// CommitteeFeeDataIter returns every fee configuration keyed by committee id.
func CommitteeFeeDataIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Pair[uint32, chain.Encoded], error) {
	prefix, err := storageKey(StorageCommitteeFeeData)
	if err != nil {
		return nil, err
	}

	return chain.IterKeyed[uint32, chain.Encoded](ctx, c, prefix, chain.DefaultPageSize, at, chain.KeyU32)
}

// ChannelMappingTick returns the tick mappings of channelID.
func ChannelMappingTick(ctx context.Context, c chain.Client, channelID uint32, at *chain.Hash) ([]TickMapping, bool, error) {
	key, err := storageKey(StorageChannelMappingTick, channelID)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[]TickMapping](ctx, c, key, at)
}

// ChannelMappingTickIter returns the tick mappings of every channel keyed by
// channel id.
func ChannelMappingTickIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Pair[uint32, []TickMapping], error) {
	prefix, err := storageKey(StorageChannelMappingTick)
	if err != nil {
		return nil, err
	}

	return chain.IterKeyed[uint32, []TickMapping](ctx, c, prefix, chain.DefaultPageSize, at, chain.KeyU32)
}

// ForcedWithdrawalRecord returns the forced withdrawal stored under nonceKey.
// Lookup failures are logged and reported as absent.
func ForcedWithdrawalRecord(ctx context.Context, c chain.Client, nonceKey chain.U128, at *chain.Hash) (chain.Encoded, bool) {
	key, err := storageKey(StorageForcedWithdrawalData, nonceKey)
	if err != nil {
		logger.Error(ctx, "query forced withdrawal data failed", "nonce_key", nonceKey.String(), "error", err)
		return nil, false
	}

	record, ok, err := chain.Query[chain.Encoded](ctx, c, key, at)
	if err != nil {
		logger.Error(ctx, "query forced withdrawal data failed", "nonce_key", nonceKey.String(), "error", err)
		return nil, false
	}

	if !ok {
		logger.Warn(ctx, "query none forced withdrawal data", "nonce_key", nonceKey.String())
	}

	return record, ok
}

func values(ctx context.Context, c chain.Client, item string, at *chain.Hash) ([]chain.Encoded, error) {
	prefix, err := storageKey(item)
	if err != nil {
		return nil, err
	}

	return chain.Values[chain.Encoded](ctx, c, prefix, chain.DefaultPageSize, at)
}
