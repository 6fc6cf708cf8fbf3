// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package state

import (
	"encoding/binary"
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/fork"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/shuffling"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// Epoch returns current epoch.
func Epoch(b *CachingBeaconState) uint64 {
	return GetEpochAtSlot(b.BeaconConfig(), b.Slot())
}

func GetEpochAtSlot(config *clparams.BeaconChainConfig, slot uint64) uint64 {
	return slot / config.SlotsPerEpoch
}

// PreviousEpoch returns previous epoch, or the genesis epoch while at genesis.
func PreviousEpoch(b *CachingBeaconState) uint64 {
	epoch := Epoch(b)
	if epoch == b.BeaconConfig().GenesisEpoch {
		return epoch
	}
	return epoch - 1
}

func ComputeActivationExitEpoch(config *clparams.BeaconChainConfig, epoch uint64) uint64 {
	return epoch + 1 + config.MaxSeedLookahead
}

// GetActiveValidatorsIndices returns the sorted indices of validators active at epoch. The slice is shared.
func (b *CachingBeaconState) GetActiveValidatorsIndices(epoch uint64) []uint64 {
	if cached, ok := b.activeValidatorsCache.Get(epoch); ok {
		return cached
	}
	indicies := make([]uint64, 0, b.ValidatorLength())
	b.ForEachValidator(func(v *cltypes.Validator, i, total int) bool {
		if v.Active(epoch) {
			indicies = append(indicies, uint64(i))
		}
		return true
	})
	b.activeValidatorsCache.Add(epoch, indicies)
	return indicies
}

// GetTotalBalance sums effective balances, floored at one increment.
func (b *CachingBeaconState) GetTotalBalance(validatorSet []uint64) (uint64, error) {
	var total uint64
	for _, validatorIndex := range validatorSet {
		effectiveBalance, err := b.ValidatorEffectiveBalance(int(validatorIndex))
		if err != nil {
			return 0, err
		}
		total += effectiveBalance
	}
	return utils.Max64(b.BeaconConfig().EffectiveBalanceIncrement, total), nil
}

// GetTotalActiveBalance is the total effective balance of the current epoch's active set.
func (b *CachingBeaconState) GetTotalActiveBalance() uint64 {
	epoch := Epoch(b)
	if total, ok := b.totalActiveBalanceCache[epoch]; ok {
		return total
	}
	var total uint64
	b.ForEachValidator(func(v *cltypes.Validator, idx, _ int) bool {
		if v.Active(epoch) {
			total += v.EffectiveBalance
		}
		return true
	})
	total = utils.Max64(b.BeaconConfig().EffectiveBalanceIncrement, total)
	b.totalActiveBalanceCache[epoch] = total
	return total
}

// GetBlockRoot returns blook root at start of a given epoch
func (b *CachingBeaconState) GetBlockRoot(epoch uint64) ([32]byte, error) {
	return b.GetBlockRootAtSlot(epoch * b.BeaconConfig().SlotsPerEpoch)
}

// GetBlockRootAtSlot returns the block root at a given slot, which must be in the recent past.
func (b *CachingBeaconState) GetBlockRootAtSlot(slot uint64) ([32]byte, error) {
	if slot >= b.Slot() {
		return [32]byte{}, fmt.Errorf("%w: slot %d, state slot %d", ErrGetBlockRootAtSlotFuture, slot, b.Slot())
	}
	if b.Slot() > slot+b.BeaconConfig().SlotsPerHistoricalRoot {
		return [32]byte{}, fmt.Errorf("%w: slot %d, state slot %d", ErrGetBlockRootAtSlotTooOld, slot, b.Slot())
	}
	return b.BlockRoots().Get(int(slot % b.BeaconConfig().SlotsPerHistoricalRoot)), nil
}

// GetSeed derives the seed of epoch for domain from the randao mix MIN_SEED_LOOKAHEAD+1 epochs back.
func (b *CachingBeaconState) GetSeed(epoch uint64, domain [4]byte) [32]byte {
	cfg := b.BeaconConfig()
	mix := b.GetRandaoMixes(epoch + cfg.EpochsPerHistoricalVector - cfg.MinSeedLookahead - 1)
	return shuffling.GetSeed(cfg, mix, epoch, domain)
}

// GetCommitteeCountPerSlot returns current number of committee for given epoch.
func (b *CachingBeaconState) GetCommitteeCountPerSlot(epoch uint64) uint64 {
	cfg := b.BeaconConfig()
	committeCount := uint64(len(b.GetActiveValidatorsIndices(epoch))) / cfg.SlotsPerEpoch / cfg.TargetCommitteeSize
	if cfg.MaxCommitteesPerSlot < committeCount {
		committeCount = cfg.MaxCommitteesPerSlot
	}
	if committeCount < 1 {
		committeCount = 1
	}
	return committeCount
}

// ComputeShuffledActiveIndices returns the active set of epoch in committee order. The slice is shared.
func (b *CachingBeaconState) ComputeShuffledActiveIndices(epoch uint64) []uint64 {
	seed := b.GetSeed(epoch, b.BeaconConfig().DomainBeaconAttester)
	if shuffled, ok := b.shuffledSetsCache.Get(seed); ok {
		return shuffled
	}
	indicies := b.GetActiveValidatorsIndices(epoch)
	shuffled := make([]uint64, len(indicies))
	copy(shuffled, indicies)
	shuffling.UnshuffleList(b.BeaconConfig(), shuffled, seed)
	b.shuffledSetsCache.Add(seed, shuffled)
	return shuffled
}

// GetBeaconCommitee returns the committee index of slot. The slice is shared.
func (b *CachingBeaconState) GetBeaconCommitee(slot, committeeIndex uint64) ([]uint64, error) {
	cfg := b.BeaconConfig()
	epoch := GetEpochAtSlot(cfg, slot)
	committeesPerSlot := b.GetCommitteeCountPerSlot(epoch)
	if committeeIndex >= committeesPerSlot {
		return nil, fmt.Errorf("%w: index %d, committees per slot %d", ErrCommitteeIndexOutOfRange, committeeIndex, committeesPerSlot)
	}
	shuffled := b.ComputeShuffledActiveIndices(epoch)
	start, end := shuffling.CommitteeBounds(uint64(len(shuffled)),
		(slot%cfg.SlotsPerEpoch)*committeesPerSlot+committeeIndex,
		committeesPerSlot*cfg.SlotsPerEpoch)
	return shuffled[start:end], nil
}

// GetBeaconProposerIndex returns the proposer of the current slot.
func (b *CachingBeaconState) GetBeaconProposerIndex() (uint64, error) {
	return b.GetBeaconProposerIndexForSlot(b.Slot())
}

// GetBeaconProposerIndexForSlot samples the proposer of slot from the active set of its epoch.
// Only slots of the current epoch are guaranteed to match what the chain will use.
func (b *CachingBeaconState) GetBeaconProposerIndexForSlot(slot uint64) (uint64, error) {
	cfg := b.BeaconConfig()
	epoch := GetEpochAtSlot(cfg, slot)
	epochSeed := b.GetSeed(epoch, cfg.DomainBeaconProposer)
	slotByteArray := make([]byte, 8)
	binary.LittleEndian.PutUint64(slotByteArray, slot)
	seed := utils.Sha256(epochSeed[:], slotByteArray)
	if proposer, ok := b.proposerCache.Get(seed); ok {
		return proposer, nil
	}
	proposer, err := shuffling.ComputeProposerIndex(cfg, b.BeaconState, b.GetActiveValidatorsIndices(epoch), seed)
	if err != nil {
		return 0, fmt.Errorf("unable to compute proposer of slot %d: %w", slot, err)
	}
	b.proposerCache.Add(seed, proposer)
	return proposer, nil
}

// GetAttestingIndicies returns the committee members whose aggregation bit is set, in committee order.
func (b *CachingBeaconState) GetAttestingIndicies(data *cltypes.AttestationData, aggregationBits *solid.BitList, checkBitsLength bool) ([]uint64, error) {
	committee, err := b.GetBeaconCommitee(data.Slot, data.CommitteeIndex)
	if err != nil {
		return nil, err
	}
	if checkBitsLength && aggregationBits.Len() != len(committee) {
		return nil, fmt.Errorf("%w: %d bits for a committee of %d", ErrInvalidAggregationBits, aggregationBits.Len(), len(committee))
	}
	attestingIndices := make([]uint64, 0, len(committee))
	for i, member := range committee {
		if i < aggregationBits.Len() && aggregationBits.GetBitAt(i) {
			attestingIndices = append(attestingIndices, member)
		}
	}
	return attestingIndices, nil
}

// GetValidatorChurnLimit returns the number of validators allowed to enter or leave per epoch.
func (b *CachingBeaconState) GetValidatorChurnLimit() uint64 {
	activeIndsCount := uint64(len(b.GetActiveValidatorsIndices(Epoch(b))))
	return utils.Max64(activeIndsCount/b.BeaconConfig().ChurnLimitQuotient, b.BeaconConfig().MinPerEpochChurnLimit)
}

// GetDomain picks the fork version in effect at epoch and computes the signature domain.
func (b *CachingBeaconState) GetDomain(domainType [4]byte, epoch uint64) ([]byte, error) {
	forkData := b.Fork()
	forkVersion := forkData.CurrentVersion
	if epoch < forkData.Epoch {
		forkVersion = forkData.PreviousVersion
	}
	return fork.ComputeDomain(domainType[:], forkVersion, b.GenesisValidatorsRoot())
}

// GetFinalityDelay is the distance between the previous epoch and the finalized epoch.
func (b *CachingBeaconState) GetFinalityDelay() uint64 {
	previous, finalized := PreviousEpoch(b), b.FinalizedCheckpoint().Epoch
	if finalized > previous {
		return 0
	}
	return previous - finalized
}

// InactivityLeaking reports whether finality stalled long enough to leak inactive balances.
func (b *CachingBeaconState) InactivityLeaking() bool {
	return b.GetFinalityDelay() > b.BeaconConfig().MinEpochsToInactivityPenalty
}
