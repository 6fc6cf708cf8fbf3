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

// weighJustificationAndFinalization checks justification and finality of epochs and adds records to the state as needed.
func weighJustificationAndFinalization(s *state.CachingBeaconState, previousEpochTargetBalance, currentEpochTargetBalance uint64) error {
	totalActiveBalance := s.GetTotalActiveBalance()
	currentEpoch := state.Epoch(s)
	previousEpoch := state.PreviousEpoch(s)
	oldPreviousJustifiedCheckpoint := s.PreviousJustifiedCheckpoint()
	oldCurrentJustifiedCheckpoint := s.CurrentJustifiedCheckpoint()
	// Process justification
	s.SetPreviousJustifiedCheckpoint(oldCurrentJustifiedCheckpoint)
	// Discard oldest bit, current bit starts off
	justificationBits := s.JustificationBits().Shift()
	// Update justified checkpoint if super majority is reached on previous epoch
	if previousEpochTargetBalance*3 >= totalActiveBalance*2 {
		checkPointRoot, err := s.GetBlockRoot(previousEpoch)
		if err != nil {
			return err
		}
		s.SetCurrentJustifiedCheckpoint(cltypes.Checkpoint{Epoch: previousEpoch, Root: checkPointRoot})
		justificationBits[1] = true
	}
	if currentEpochTargetBalance*3 >= totalActiveBalance*2 {
		checkPointRoot, err := s.GetBlockRoot(currentEpoch)
		if err != nil {
			return err
		}
		s.SetCurrentJustifiedCheckpoint(cltypes.Checkpoint{Epoch: currentEpoch, Root: checkPointRoot})
		justificationBits[0] = true
	}
	// Process finalization
	// The 2nd/3rd/4th most recent epochs are justified, the 2nd using the 4th as source
	// The 2nd/3rd most recent epochs are justified, the 2nd using the 3rd as source
	if (justificationBits.CheckRange(1, 4) && oldPreviousJustifiedCheckpoint.Epoch+3 == currentEpoch) ||
		(justificationBits.CheckRange(1, 3) && oldPreviousJustifiedCheckpoint.Epoch+2 == currentEpoch) {
		s.SetFinalizedCheckpoint(oldPreviousJustifiedCheckpoint)
	}
	// The 1st/2nd/3rd most recent epochs are justified, the 1st using the 3rd as source
	// The 1st/2nd most recent epochs are justified, the 1st using the 2nd as source
	if (justificationBits.CheckRange(0, 3) && oldCurrentJustifiedCheckpoint.Epoch+2 == currentEpoch) ||
		(justificationBits.CheckRange(0, 2) && oldCurrentJustifiedCheckpoint.Epoch+1 == currentEpoch) {
		s.SetFinalizedCheckpoint(oldCurrentJustifiedCheckpoint)
	}
	s.SetJustificationBits(justificationBits)
	return nil
}

// ProcessJustificationBitsAndFinality weighs the target votes of the last two epochs.
func ProcessJustificationBitsAndFinality(s *state.CachingBeaconState) error {
	participation, err := computeEpochParticipation(s)
	if err != nil {
		return err
	}
	return processJustificationBitsAndFinality(s, participation)
}

func processJustificationBitsAndFinality(s *state.CachingBeaconState, participation *epochParticipation) error {
	defer monitor.ObserveProcessJustificationBitsAndFinalityTime(time.Now())
	// Skip for first 2 epochs
	if state.Epoch(s) <= s.BeaconConfig().GenesisEpoch+1 {
		return nil
	}
	return weighJustificationAndFinalization(s, participation.prevTargetStake, participation.currTargetStake)
}
