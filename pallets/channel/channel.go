// Package channel reads and writes the channel pallet: cross-chain tunnels,
// source transaction packages, BTC committee scripts, xUDT issuance and
// forced withdrawals.
package channel

import "github.com/gabapcia/palletsapi/chain"

// Pallet is the runtime name of the channel pallet.
const Pallet = "Channel"

// Storage items.
const (
	StorageTxMessages             = "TxMessages"
	StorageChannelInfo            = "ChannelInfo"
	StorageHashesForCid           = "HashesForCid"
	StorageSourceTxPackage        = "SourceTxPackage"
	StorageSourceHashToPackageKey = "SourceHashToPackageKey"
	StorageBtcCommitteeType       = "BtcCommitteeType"
	StorageEscapeTaproots         = "EscapeTaproots"
	StorageBoundScripts           = "BoundScripts"
	StorageRefreshData            = "RefreshData"
	StorageCommitteeXudtList      = "CommitteeXudtList"
	StorageCommitteeXudtRecord    = "CommitteeXudtRecord"
	StorageUidConsensusRecord     = "UidConsensusRecord"
	StorageCommitteeFeeData       = "CommitteeFeeData"
	StorageChannelMappingTick     = "ChannelMappingTick"
	StorageForcedWithdrawalData   = "ForcedWithdrawalData"
)

// Calls.
const (
	CallCreateChannel             = "create_channel"
	CallBindCommittees            = "bind_committees"
	CallImportNewTx               = "import_new_tx"
	CallImportNewSourceHash       = "import_new_source_hash"
	CallSubmitTxSignResult        = "submit_tx_sign_result"
	CallRequestSign               = "request_sign"
	CallSyncStatus                = "sync_status"
	CallClearTargetPackage        = "clear_target_package"
	CallCreateChannelWithTaproot  = "create_channel_with_taproot"
	CallRequestToSignRefresh      = "request_to_sign_refresh"
	CallSubmitRefreshResult       = "submit_refresh_result"
	CallSignIssueXudt             = "sign_issue_xudt"
	CallSubmitIssueXudtSignResult = "submit_issue_xudt_sign_result"
	CallSyncIssueXudtResult       = "sync_issue_xudt_result"
	CallUpdateSrcHashSeq          = "update_src_hash_seq"
	CallSubmitUidSignResult       = "submit_uid_sign_result"
	CallSignForcedWithdrawal      = "sign_forced_withdrawal"
	CallFinishForcedWithdrawal    = "finish_forced_withdrawal"
)

// CmtType selects the BTC committee script type. It is a field-less runtime
// enum, so its SCALE encoding is the variant index.
type CmtType uint8

// TaprootType selects the taproot spending path of a committee.
type TaprootType uint8

// XudtStatus is the outcome reported for an xUDT issuance.
type XudtStatus uint8

// TaprootConnection binds a committee to a channel with a given script type
// when creating a taproot channel.
type TaprootConnection struct {
	ChainID uint32
	CID     uint32
	Address []byte
	CmtType CmtType
}

// TaprootBinding assigns a taproot type to a committee.
type TaprootBinding struct {
	CID  uint32
	Type TaprootType
}

// TickMapping is one (source tick, mapped tick) entry of a channel.
type TickMapping struct {
	Source []byte
	Mapped []byte
}

func storageKey(item string, args ...any) (chain.StorageKey, error) {
	return chain.NewStorageKey(Pallet, item, args...)
}
