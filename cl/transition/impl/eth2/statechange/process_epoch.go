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

	"github.com/ledgerwatch/log/v3"

	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
)

// ProcessEpoch processes the epoch that ends with the state's slot.
func ProcessEpoch(s *state.CachingBeaconState) error {
	start := time.Now()
	participation, err := computeEpochParticipation(s)
	if err != nil {
		return err
	}
	if err := processJustificationBitsAndFinality(s, participation); err != nil {
		return err
	}
	if err := processRewardsAndPenalties(s, participation); err != nil {
		return err
	}
	if err := ProcessRegistryUpdates(s); err != nil {
		return err
	}
	if err := ProcessSlashings(s); err != nil {
		return err
	}
	if err := ProcessFinalUpdates(s); err != nil {
		return err
	}
	monitor.ObserveEpochProcessingTime(start)
	log.Debug("Processed epoch", "epoch", state.Epoch(s), "elapsed", time.Since(start))
	return nil
}
