package mining

import (
	"context"
	"fmt"

	"github.com/gabapcia/palletsapi/chain"
	"github.com/gabapcia/palletsapi/pallets/facility"
)

// Challenges returns the heartbeat challenge of session.
func Challenges(ctx context.Context, c chain.Client, session uint32, at *chain.Hash) (chain.U256, bool, error) {
	key, err := storageKey(StorageChallenges, session)
	if err != nil {
		return chain.U256{}, false, err
	}

	return chain.Query[chain.U256](ctx, c, key, at)
}

// CurrentSession derives the working session of the block at from its number
// and the EraBlockNumber constant.
func CurrentSession(ctx context.Context, c chain.Client, at *chain.Hash) (uint32, error) {
	number, err := c.BlockNumber(ctx, at)
	if err != nil {
		return 0, err
	}

	eraBlocks, err := chain.Constant[uint32](ctx, c, chain.ConstantKey{Pallet: Pallet, Name: ConstantEraBlockNumber})
	if err != nil {
		return 0, err
	}

	if eraBlocks == 0 {
		return 0, fmt.Errorf("%s.%s is zero", Pallet, ConstantEraBlockNumber)
	}

	return number / eraBlocks, nil
}

// WorkingDevices returns the working set of session along with the session it
// was read for. A nil session means the session of the block at.
func WorkingDevices(ctx context.Context, c chain.Client, session *uint32, at *chain.Hash) ([]WorkingDevice, uint32, bool, error) {
	var s uint32
	if session != nil {
		s = *session
	} else {
		current, err := CurrentSession(ctx, c, at)
		if err != nil {
			return nil, 0, false, err
		}
		s = current
	}

	key, err := storageKey(StorageWorkingDevices, s)
	if err != nil {
		return nil, 0, false, err
	}

	devices, ok, err := chain.Query[[]WorkingDevice](ctx, c, key, at)
	if err != nil || !ok {
		return nil, 0, false, err
	}

	return devices, s, true, nil
}

// DeviceInfo returns the registration of device id.
func DeviceInfo(ctx context.Context, c chain.Client, id []byte, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageDevices, id)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// DeviceInfoIter returns every registered device.
func DeviceInfoIter(ctx context.Context, c chain.Client, at *chain.Hash) ([]chain.Encoded, error) {
	return DevicesIter(ctx, c, chain.DefaultPageSize, at)
}

// DevicesIter returns every registered device, fetching pageSize keys per
// round trip.
func DevicesIter(ctx context.Context, c chain.Client, pageSize uint32, at *chain.Hash) ([]chain.Encoded, error) {
	prefix, err := storageKey(StorageDevices)
	if err != nil {
		return nil, err
	}

	return chain.Values[chain.Encoded](ctx, c, prefix, pageSize, at)
}

// DeviceIdentityMap returns the identity bound to device id.
func DeviceIdentityMap(ctx context.Context, c chain.Client, id []byte, at *chain.Hash) ([]byte, bool, error) {
	key, err := storageKey(StorageDeviceIdentityMap, id)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[]byte](ctx, c, key, at)
}

// DeviceIdentityMapIter returns every (device id, identity) binding.
func DeviceIdentityMapIter(ctx context.Context, c chain.Client, pageSize uint32, at *chain.Hash) ([]chain.Pair[[]byte, []byte], error) {
	prefix, err := storageKey(StorageDeviceIdentityMap)
	if err != nil {
		return nil, err
	}

	return chain.IterKeyed[[]byte, []byte](ctx, c, prefix, pageSize, at, chain.KeyBytes)
}

// DeviceMonitorState returns the monitor state of device id.
func DeviceMonitorState(ctx context.Context, c chain.Client, id []byte, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageDeviceMonitorState, id)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// DeviceVotesForCurrentEpoch returns the votes backing device id this epoch.
func DeviceVotesForCurrentEpoch(ctx context.Context, c chain.Client, id []byte, at *chain.Hash) ([]Vote, bool, error) {
	return votes(ctx, c, StorageDeviceVotesForCurrentEpoch, id, at)
}

// DeviceVotesForNextEpoch returns the votes backing device id next epoch.
func DeviceVotesForNextEpoch(ctx context.Context, c chain.Client, id []byte, at *chain.Hash) ([]Vote, bool, error) {
	return votes(ctx, c, StorageDeviceVotesForNextEpoch, id, at)
}

func votes(ctx context.Context, c chain.Client, item string, id []byte, at *chain.Hash) ([]Vote, bool, error) {
	key, err := storageKey(item, id)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[]Vote](ctx, c, key, at)
}

// DeviceData returns the data published by did.
func DeviceData(ctx context.Context, c chain.Client, did facility.DIdentity, at *chain.Hash) ([]byte, bool, error) {
	key, err := storageKey(StorageDeviceData, did)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[[]byte](ctx, c, key, at)
}

// DeviceRegisterData returns the registration data of deviceID.
func DeviceRegisterData(ctx context.Context, c chain.Client, deviceID []byte, at *chain.Hash) (chain.Encoded, bool, error) {
	key, err := storageKey(StorageDeviceRegisterData, deviceID)
	if err != nil {
		return nil, false, err
	}

	return chain.Query[chain.Encoded](ctx, c, key, at)
}

// DeviceRegisterDataIter returns every registration keyed by device id.
func DeviceRegisterDataIter(ctx context.Context, c chain.Client, pageSize uint32, at *chain.Hash) ([]chain.Pair[[]byte, chain.Encoded], error) {
	prefix, err := storageKey(StorageDeviceRegisterData)
	if err != nil {
		return nil, err
	}

	return chain.IterKeyed[[]byte, chain.Encoded](ctx, c, prefix, pageSize, at, chain.KeyBytes)
}

// Fundation returns the account receiving the foundation share of rewards.
func Fundation(ctx context.Context, c chain.Client, at *chain.Hash) (chain.AccountID20, bool, error) {
	key, err := storageKey(StorageFundation)
	if err != nil {
		return chain.AccountID20{}, false, err
	}

	return chain.Query[chain.AccountID20](ctx, c, key, at)
}

// FundationRewardRate returns the foundation share, 75% when unset.
func FundationRewardRate(ctx context.Context, c chain.Client, at *chain.Hash) (chain.Perbill, error) {
	key, err := storageKey(StorageFundationRewardRate)
	if err != nil {
		return 0, err
	}

	return chain.QueryOr(ctx, c, key, at, DefaultFundationRewardRate)
}

// BaseRewardRate returns the base reward share, 10% when unset.
func BaseRewardRate(ctx context.Context, c chain.Client, at *chain.Hash) (chain.Perbill, error) {
	key, err := storageKey(StorageBaseRewardRate)
	if err != nil {
		return 0, err
	}

	return chain.QueryOr(ctx, c, key, at, DefaultBaseRewardRate)
}

// RewardsForEpoch returns the rewards minted for epoch, or 0.
func RewardsForEpoch(ctx context.Context, c chain.Client, epoch uint64, at *chain.Hash) (chain.U128, error) {
	return amount(ctx, c, StorageRewardsForEpoch, at, epoch)
}

// IncentiveRewardsForEpoch returns the incentive rewards of epoch, or 0.
func IncentiveRewardsForEpoch(ctx context.Context, c chain.Client, epoch uint64, at *chain.Hash) (chain.U128, error) {
	return amount(ctx, c, StorageIncentiveRewardsForEpoch, at, epoch)
}

// NumberOfPayRewardsInOneBlock returns how many payouts fit in a block, or 0.
func NumberOfPayRewardsInOneBlock(ctx context.Context, c chain.Client, at *chain.Hash) (uint64, error) {
	key, err := storageKey(StorageNumberOfPayRewardsInOneBlock)
	if err != nil {
		return 0, err
	}

	return chain.QueryOrZero[uint64](ctx, c, key, at)
}

// DeviceStakeMap returns the stake id of deviceID. A device without a mapping
// stakes under its own id.
func DeviceStakeMap(ctx context.Context, c chain.Client, deviceID []byte, at *chain.Hash) ([]byte, error) {
	return selfMapped(ctx, c, StorageDeviceStakeMap, deviceID, at)
}

// StakeDeviceMap returns the device id of stakeID, or stakeID itself.
func StakeDeviceMap(ctx context.Context, c chain.Client, stakeID []byte, at *chain.Hash) ([]byte, error) {
	return selfMapped(ctx, c, StorageStakeDeviceMap, stakeID, at)
}

func selfMapped(ctx context.Context, c chain.Client, item string, id []byte, at *chain.Hash) ([]byte, error) {
	key, err := storageKey(item, id)
	if err != nil {
		return nil, err
	}

	return chain.QueryOr(ctx, c, key, at, id)
}

// RewardsFromCommittee returns the two committee reward amounts of deviceID
// for epoch, or zeros.
func RewardsFromCommittee(ctx context.Context, c chain.Client, deviceID []byte, epoch uint64, at *chain.Hash) ([2]chain.U128, error) {
	zero := [2]chain.U128{chain.NewU128(0), chain.NewU128(0)}

	key, err := storageKey(StorageRewardsFromCommittee, deviceID, epoch)
	if err != nil {
		return zero, err
	}

	return chain.QueryOr(ctx, c, key, at, zero)
}

// TotalScoreForEpoch returns the summed device score of epoch, or 0.
func TotalScoreForEpoch(ctx context.Context, c chain.Client, epoch uint64, at *chain.Hash) (chain.U128, error) {
	return amount(ctx, c, StorageTotalScoreForEpoch, at, epoch)
}

// ScoresForEpoch returns the score of deviceID in epoch, or 0.
func ScoresForEpoch(ctx context.Context, c chain.Client, deviceID []byte, epoch uint64, at *chain.Hash) (chain.U128, error) {
	return amount(ctx, c, StorageScoresForEpoch, at, deviceID, epoch)
}

func amount(ctx context.Context, c chain.Client, item string, at *chain.Hash, args ...any) (chain.U128, error) {
	key, err := storageKey(item, args...)
	if err != nil {
		return chain.NewU128(0), err
	}

	return chain.QueryOr(ctx, c, key, at, chain.NewU128(0))
}

// DevicesJoinedCommittee returns the committee joins recorded in epoch.
func DevicesJoinedCommittee(ctx context.Context, c chain.Client, epoch uint64, at *chain.Hash) ([]CommitteeJoin, error) {
	key, err := storageKey(StorageDevicesJoinedCommittee, epoch)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrZero[[]CommitteeJoin](ctx, c, key, at)
}

// DeviceIDsWaitingPayRewardsForEpoch returns the devices not yet paid for epoch.
func DeviceIDsWaitingPayRewardsForEpoch(ctx context.Context, c chain.Client, epoch uint64, at *chain.Hash) ([][]byte, error) {
	key, err := storageKey(StorageDeviceIDsWaitingPayRewardsForEpoch, epoch)
	if err != nil {
		return nil, err
	}

	return chain.QueryOrZero[[][]byte](ctx, c, key, at)
}

// DeviceCommissionForCurrentEpoch returns the commission of deviceID, 15% when
// unset.
func DeviceCommissionForCurrentEpoch(ctx context.Context, c chain.Client, deviceID []byte, at *chain.Hash) (chain.Perbill, error) {
	key, err := storageKey(StorageDeviceCommissionForCurrentEpoch, deviceID)
	if err != nil {
		return 0, err
	}

	return chain.QueryOr(ctx, c, key, at, DefaultDeviceCommission)
}
