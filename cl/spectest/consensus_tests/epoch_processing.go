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

package consensus_tests

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/spectest"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2/statechange"
)

type EpochProcessing struct {
	Fn func(s *state.CachingBeaconState) error
}

func NewEpochProcessing(fn func(s *state.CachingBeaconState) error) *EpochProcessing {
	return &EpochProcessing{Fn: fn}
}

// infallible wraps the sub-transitions that cannot fail.
func infallible(fn func(s *state.CachingBeaconState)) *EpochProcessing {
	return NewEpochProcessing(func(s *state.CachingBeaconState) error {
		fn(s)
		return nil
	})
}

func (b *EpochProcessing) Run(t *testing.T, root fs.FS, c spectest.TestCase) error {
	testState, err := spectest.ReadBeaconState(root, c, spectest.PreSsz)
	require.NoError(t, err)
	expectedState, err := spectest.ReadPostState(root, c)
	require.NoError(t, err)

	err                            = b.Fn(testState)
	if expectedState == nil {
		require.Error(t, err)
		return nil
	}
	require.NoError(t, err)
	requireSameRoot(t, expectedState, testState)
	return nil
}

var (
	effectiveBalancesUpdateTest    = NewEpochProcessing(statechange.ProcessEffectiveBalanceUpdates)
	eth1DataResetTest              = infallible(statechange.ProcessEth1DataReset)
	historicalRootsUpdateTest      = NewEpochProcessing(statechange.ProcessHistoricalRootsUpdate)
	justificationFinalizationTest  = NewEpochProcessing(statechange.ProcessJustificationBitsAndFinality)
	participationRecordUpdatesTest = infallible(statechange.ProcessParticipationRecordUpdates)
	randaoMixesTest                = infallible(statechange.ProcessRandaoMixesReset)
	registryUpdatesTest            = NewEpochProcessing(statechange.ProcessRegistryUpdates)
	rewardsAndPenaltiesTest        = NewEpochProcessing(statechange.ProcessRewardsAndPenalties)
	slashingsTest                  = NewEpochProcessing(statechange.ProcessSlashings)
	slashingsResetTest             = infallible(statechange.ProcessSlashingsReset)
)
