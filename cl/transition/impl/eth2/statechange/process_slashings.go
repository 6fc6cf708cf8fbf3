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
	"time"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
)

// ProcessSlashings applies the correlated penalty to slashed validators halfway to their withdrawability.
func ProcessSlashings(s *state.CachingBeaconState) error {
	defer monitor.ObserveProcessSlashingsTime(time.Now())
	beaconConfig := s.BeaconConfig()
	epoch := state.Epoch(s)
	totalBalance := s.GetTotalActiveBalance()
	// Sum all slashings and adjust by the multiplier, never above the total active balance
	slashing := s.SlashingsSum() * beaconConfig.ProportionalSlashingMultiplier
	if totalBalance < slashing {
		slashing = totalBalance
	}
	increment := beaconConfig.EffectiveBalanceIncrement

	type penalty struct {
		index  uint64
		amount uint64
	}
	var penalties []penalty
	s.ForEachValidator(func(v *cltypes.Validator, i, _ int) bool {
		if !v.Slashed || epoch+beaconConfig.EpochsPerSlashingsVector/2 != v.WithdrawableEpoch {
			return true
		}
		penaltyNumerator := v.EffectiveBalance / increment * slashing
		penalties = append(penalties, penalty{index: uint64(i), amount: penaltyNumerator / totalBalance * increment})
		return true
	})
	for _, p := range penalties {
		if err := state.DecreaseBalance(s, p.index, p.amount); err != nil {
			return err
		}
	}
	return nil
}
