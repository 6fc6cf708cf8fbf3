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

package eth2

import (
	"fmt"
	"time"

	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2/statechange"
)

// transitionSlot caches the roots of the slot being left. The latest block header
// is stored with a zero state root by block processing and completed here, once
// the post-block state root is known.
func transitionSlot(s *state.CachingBeaconState) error {
	slot := s.Slot()
	beaconConfig := s.BeaconConfig()
	previousStateRoot, err := s.HashSSZ()
	if err != nil {
		return err
	}
	s.SetStateRootAt(int(slot%beaconConfig.SlotsPerHistoricalRoot), previousStateRoot)

	latestBlockHeader := s.LatestBlockHeader()
	if latestBlockHeader.Root == [32]byte{} {
		latestBlockHeader.Root = previousStateRoot
		s.SetLatestBlockHeader(&latestBlockHeader)
	}
	previousBlockRoot, err := latestBlockHeader.HashSSZ()
	if err != nil {
		return err
	}
	s.SetBlockRootAt(int(slot%beaconConfig.SlotsPerHistoricalRoot), previousBlockRoot)
	return nil
}

// ProcessSlots advances s to slot, running epoch processing at every epoch boundary crossed.
// A target equal to the current slot leaves s untouched.
func (I *Impl) ProcessSlots(s *state.CachingBeaconState, slot uint64) error {
	defer monitor.ObserveProcessSlotsTime(time.Now())
	beaconConfig := s.BeaconConfig()
	sSlot := s.Slot()
	if slot < sSlot {
		return fmt.Errorf("%w: new slot %d lower than state slot %d", ErrInvalidTransition, slot, sSlot)
	}
	for sSlot < slot {
		if err := transitionSlot(s); err != nil {
			return fmt.Errorf("unable to process slot transition: %w", err)
		}
		if (sSlot+1)%beaconConfig.SlotsPerEpoch == 0 {
			if err := statechange.ProcessEpoch(s); err != nil {
				return fmt.Errorf("unable to process epoch %d: %w", state.Epoch(s), err)
			}
		}
		sSlot++
		s.SetSlot(sSlot)
	}
	return nil
}
