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

package statechange

import (
	"fmt"
	"time"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// isEligibleForRewards covers validators active in the previous epoch and slashed ones not yet withdrawable.
func isEligibleForRewards(v *cltypes.Validator, previousEpoch uint64) bool {
	return v.Active(previousEpoch) || (v.Slashed && previousEpoch+1 < v.WithdrawableEpoch)
}

// GetAttestationDeltas computes the rewards and penalties earned by the previous epoch attestations.
// Nothing is applied: the two slices are indexed by validator index.
func GetAttestationDeltas(s *state.CachingBeaconState) (rewards, penalties []uint64, err error) {
	participation, err := computeEpochParticipation(s)
	if err != nil {
		return nil, nil, err
	}
	return getAttestationDeltas(s, participation)
}

func getAttestationDeltas(s *state.CachingBeaconState, participation *epochParticipation) (rewards, penalties []uint64, err error) {
	beaconConfig := s.BeaconConfig()
	rewards = make([]uint64, s.ValidatorLength())
	penalties = make([]uint64, s.ValidatorLength())

	previousEpoch := state.PreviousEpoch(s)
	increment := beaconConfig.EffectiveBalanceIncrement
	totalBalance := s.GetTotalActiveBalance()
	totalIncrements := totalBalance / increment
	sqrtTotalBalance := utils.IntegerSquareRoot(totalBalance)
	leaking := s.InactivityLeaking()
	finalityDelay := s.GetFinalityDelay()

	components := []struct {
		flag  uint8
		stake uint64
	}{
		{flagPrevSourceAttester, participation.prevSourceStake},
		{flagPrevTargetAttester, participation.prevTargetStake},
		{flagPrevHeadAttester, participation.prevHeadStake},
	}

	s.ForEachValidator(func(v *cltypes.Validator, index, _ int) bool {
		if !isEligibleForRewards(v, previousEpoch) {
			return true
		}
		status := &participation.statuses[index]
		baseReward := v.EffectiveBalance * beaconConfig.BaseRewardFactor / sqrtTotalBalance / beaconConfig.BaseRewardsPerEpoch
		proposerReward := baseReward / beaconConfig.ProposerRewardQuotient

		// Source, target and head
		for _, component := range components {
			if v.Slashed || !status.has(component.flag) {
				penalties[index] += baseReward
				continue
			}
			if leaking {
				// optimal participation is fully rewarded during a leak, and canceled below
				rewards[index] += baseReward
				continue
			}
			rewards[index] += baseReward * (component.stake / increment) / totalIncrements
		}

		// Inclusion delay
		if !v.Slashed && status.has(flagPrevSourceAttester) {
			if status.inclusionDelay == 0 || status.proposerIndex >= uint64(len(rewards)) {
				err = fmt.Errorf("%w: pending attestation of validator %d has inclusion delay %d and proposer %d",
					ErrInvalidPendingAttestation, index, status.inclusionDelay, status.proposerIndex)
				return false
			}
			rewards[status.proposerIndex] += proposerReward
			rewards[index] += (baseReward - proposerReward) / status.inclusionDelay
		}

		// Inactivity penalty
		if leaking {
			penalties[index] += beaconConfig.BaseRewardsPerEpoch*baseReward - proposerReward
			if v.Slashed || !status.has(flagPrevTargetAttester) {
				penalties[index] += v.EffectiveBalance * finalityDelay / beaconConfig.InactivityPenaltyQuotient
			}
		}
		return true
	})
	if err != nil {
		return nil, nil, err
	}
	return rewards, penalties, nil
}

// ProcessRewardsAndPenalties applies rewards/penalties accumulated during previous epoch.
func ProcessRewardsAndPenalties(s *state.CachingBeaconState) error {
	participation, err := computeEpochParticipation(s)
	if err != nil {
		return err
	}
	return processRewardsAndPenalties(s, participation)
}

func processRewardsAndPenalties(s *state.CachingBeaconState, participation *epochParticipation) error {
	defer monitor.ObserveProcessRewardsAndPenaltiesTime(time.Now())
	if state.Epoch(s) == s.BeaconConfig().GenesisEpoch {
		return nil
	}
	rewards, penalties, err := getAttestationDeltas(s, participation)
	if err != nil {
		return err
	}
	for index := range rewards {
		if err := state.ApplyBalanceDelta(s, uint64(index), rewards[index], penalties[index]); err != nil {
			return err
		}
	}
	return nil
}
