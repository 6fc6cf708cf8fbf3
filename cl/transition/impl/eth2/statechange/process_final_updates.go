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

// ProcessEth1DataReset clears the eth1 votes when a voting period ends.
func ProcessEth1DataReset(s *state.CachingBeaconState) {
	nextEpoch := state.Epoch(s) + 1
	if nextEpoch%s.BeaconConfig().EpochsPerEth1VotingPeriod == 0 {
		s.ResetEth1DataVotes()
	}
}

// ProcessSlashingsReset zeroes the slashings slot the next epoch writes to.
func ProcessSlashingsReset(s *state.CachingBeaconState) {
	nextEpoch := state.Epoch(s) + 1
	s.SetSlashingSegmentAt(int(nextEpoch%s.BeaconConfig().EpochsPerSlashingsVector), 0)
}

// ProcessRandaoMixesReset seeds the next epoch mix with the current one.
func ProcessRandaoMixesReset(s *state.CachingBeaconState) {
	currentEpoch := state.Epoch(s)
	nextEpoch := currentEpoch + 1
	s.SetRandaoMixAt(int(nextEpoch%s.BeaconConfig().EpochsPerHistoricalVector), s.GetRandaoMixes(currentEpoch))
}

// ProcessHistoricalRootsUpdate appends the root of the block and state root vectors every full historical period.
func ProcessHistoricalRootsUpdate(s *state.CachingBeaconState) error {
	nextEpoch := state.Epoch(s) + 1
	beaconConfig := s.BeaconConfig()
	if nextEpoch%(beaconConfig.SlotsPerHistoricalRoot/beaconConfig.SlotsPerEpoch) != 0 {
		return nil
	}
	historicalRoot, err := (&cltypes.HistoricalBatch{BlockRoots: s.BlockRoots(), StateRoots: s.StateRoots()}).HashSSZ()
	if err != nil {
		return err
	}
	s.AddHistoricalRoot(historicalRoot)
	return nil
}

// ProcessParticipationRecordUpdates rotates the pending attestations of the epoch.
func ProcessParticipationRecordUpdates(s *state.CachingBeaconState) {
	s.RotateEpochAttestations()
}

// ProcessFinalUpdates runs the end of epoch bookkeeping in order.
func ProcessFinalUpdates(s *state.CachingBeaconState) error {
	defer monitor.ObserveProcessFinalUpdatesTime(time.Now())
	ProcessEth1DataReset(s)
	if err := ProcessEffectiveBalanceUpdates(s); err != nil {
		return err
	}
	ProcessSlashingsReset(s)
	ProcessRandaoMixesReset(s)
	if err := ProcessHistoricalRootsUpdate(s); err != nil {
		return err
	}
	ProcessParticipationRecordUpdates(s)
	return nil
}
