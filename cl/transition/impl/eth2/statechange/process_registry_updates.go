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

	"golang.org/x/exp/slices"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
)

// ProcessRegistryUpdates queues and activates validators and ejects those below the ejection balance.
func ProcessRegistryUpdates(s *state.CachingBeaconState) error {
	defer monitor.ObserveProcessRegistryUpdatesTime(time.Now())
	beaconConfig := s.BeaconConfig()
	currentEpoch := state.Epoch(s)
	finalizedEpoch := s.FinalizedCheckpoint().Epoch

	var eligible, ejected []uint64
	s.ForEachValidator(func(v *cltypes.Validator, index, _ int) bool {
		if v.ActivationEligibilityEpoch == beaconConfig.FarFutureEpoch && v.EffectiveBalance == beaconConfig.MaxEffectiveBalance {
			eligible = append(eligible, uint64(index))
		}
		if v.Active(currentEpoch) && v.EffectiveBalance <= beaconConfig.EjectionBalance {
			ejected = append(ejected, uint64(index))
		}
		return true
	})
	for _, index := range eligible {
		if err := s.SetActivationEligibilityEpochForValidatorAtIndex(int(index), currentEpoch+1); err != nil {
			return err
		}
	}
	for _, index := range ejected {
		if err := s.InitiateValidatorExit(index); err != nil {
			return err
		}
	}

	type queued struct {
		index            uint64
		eligibilityEpoch uint64
	}
	var activationQueue []queued
	s.ForEachValidator(func(v *cltypes.Validator, index, _ int) bool {
		if v.ActivationEligibilityEpoch <= finalizedEpoch && v.ActivationEpoch == beaconConfig.FarFutureEpoch {
			activationQueue = append(activationQueue, queued{index: uint64(index), eligibilityEpoch: v.ActivationEligibilityEpoch})
		}
		return true
	})
	// order by the sequence of activation_eligibility_epoch setting and then index
	slices.SortFunc(activationQueue, func(a, b queued) int {
		if a.eligibilityEpoch != b.eligibilityEpoch {
			if a.eligibilityEpoch < b.eligibilityEpoch {
				return -1
			}
			return 1
		}
		if a.index < b.index {
			return -1
		}
		return 1
	})
	churnLimit := s.GetValidatorChurnLimit()
	if uint64(len(activationQueue)) > churnLimit {
		activationQueue = activationQueue[:churnLimit]
	}
	activationEpoch := state.ComputeActivationExitEpoch(beaconConfig, currentEpoch)
	for _, entry := range activationQueue {
		if err := s.SetActivationEpochForValidatorAtIndex(int(entry.index), activationEpoch); err != nil {
			return err
		}
	}
	return nil
}
