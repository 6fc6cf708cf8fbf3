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
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// ProcessEffectiveBalanceUpdates moves effective balances that left the hysteresis band around the actual balance.
func ProcessEffectiveBalanceUpdates(s *state.CachingBeaconState) error {
	beaconConfig := s.BeaconConfig()
	// Define non-changing constants to avoid recomputation.
	histeresisIncrement := beaconConfig.EffectiveBalanceIncrement / beaconConfig.HysteresisQuotient
	downwardThreshold := histeresisIncrement * beaconConfig.HysteresisDownwardMultiplier
	upwardThreshold := histeresisIncrement * beaconConfig.HysteresisUpwardMultiplier

	type update struct {
		index            int
		effectiveBalance uint64
	}
	var (
		updates []update
		err     error
		balance uint64
	)
	s.ForEachValidator(func(validator *cltypes.Validator, index, total int) bool {
		balance, err = s.ValidatorBalance(index)
		if err != nil {
			return false
		}
		eb := validator.EffectiveBalance
		if balance+downwardThreshold < eb || eb+upwardThreshold < balance {
			updates = append(updates, update{
				index:            index,
				effectiveBalance: utils.Min64(balance-(balance%beaconConfig.EffectiveBalanceIncrement), beaconConfig.MaxEffectiveBalance),
			})
		}
		return true
	})
	if err != nil {
		return err
	}
	for _, u := range updates {
		if err := s.SetEffectiveBalanceForValidatorAtIndex(u.index, u.effectiveBalance); err != nil {
			return err
		}
	}
	return nil
}
