// Package mining reads and writes the mining pallet: device registration,
// heartbeats, working sessions, votes, stakes and epoch rewards.
package mining

import (
	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/pallets/facility"
)

// Pallet is the runtime name of the mining pallet.
const Pallet = "Mining"

// Storage items.
const (
	StorageChallenges                         = "Challenges"
	StorageWorkingDevices                     = "WorkingDevices"
	StorageDevices                            = "Devices"
	StorageDeviceIdentityMap                  = "DeviceIdentityMap"
	StorageDeviceMonitorState                 = "DeviceMonitorState"
	StorageDeviceVotesForCurrentEpoch         = "DeviceVotesForCurrentEpoch"
	StorageDeviceVotesForNextEpoch            = "DeviceVotesForNextEpoch"
	StorageDeviceData                         = "DeviceData"
	StorageDeviceRegisterData                 = "DeviceRegisterData"
	StorageFundation                          = "Fundation"
	StorageFundationRewardRate                = "FundationRewardRate"
	StorageBaseRewardRate                     = "BaseRewardRate"
	StorageRewardsForEpoch                    = "RewardsForEpoch"
	StorageIncentiveRewardsForEpoch           = "IncentiveRewardsForEpoch"
	StorageNumberOfPayRewardsInOneBlock       = "NumberOfPayRewardsInOneBlock"
	StorageDeviceStakeMap                     = "DeviceStakeMap"
	StorageStakeDeviceMap                     = "StakeDeviceMap"
	StorageRewardsFromCommittee               = "RewardsFromCommittee"
	StorageTotalScoreForEpoch                 = "TotalScoreForEpoch"
	StorageScoresForEpoch                     = "ScoresForEpoch"
	StorageDevicesJoinedCommittee             = "DevicesJoinedCommittee"
	StorageDeviceIDsWaitingPayRewardsForEpoch = "DeviceIdsWaitingPayRewardsForEpoch"
	StorageDeviceCommissionForCurrentEpoch    = "DeviceCommissionForCurrentEpoch"
)

// ConstantEraBlockNumber is the number of blocks in a working session.
const ConstantEraBlockNumber = "EraBlockNumber"

// Calls.
const (
	CallImOnline                = "im_online"
	CallReportStandby           = "report_standby"
	CallRegisterDeviceWithIdent = "register_device_with_ident"
	CallUpdateVotes             = "update_votes"
	CallJoinService             = "join_service"
	CallExitService             = "exit_service"
)

// Reward rate defaults applied when the runtime has not stored a value.
const (
	DefaultFundationRewardRate chain.Perbill = 750_000_000
	DefaultBaseRewardRate      chain.Perbill = 100_000_000
	DefaultDeviceCommission    chain.Perbill = 150_000_000
)

// MonitorType is the kind of chain a device monitors.
type MonitorType uint8

// Purpose selects between joining and leaving the service.
type Purpose uint8

const (
	PurposeJoin Purpose = iota
	PurposeExit
)

// WorkingDevice is one entry of a session's working set.
type WorkingDevice struct {
	DID  facility.DIdentity
	Flag bool
}

// Vote is the stake an account placed on a device.
type Vote struct {
	Voter  chain.AccountID20
	Amount chain.U128
}

// VoteChange is a new stake amount for a device.
type VoteChange struct {
	DeviceID []byte
	Amount   chain.U128
}

// CommitteeJoin records the committee a device joined in an epoch.
type CommitteeJoin struct {
	DeviceID []byte
	CID      uint32
}

// OnChainPayload is the heartbeat a device submits each session.
type OnChainPayload struct {
	DID       facility.DIdentity
	Proof     []byte
	Session   uint32
	Signature []byte
	Enclave   []byte
}

func storageKey(item string, args ...any) (chain.StorageKey, error) {
	return chain.NewStorageKey(Pallet, item, args...)
}
