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
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/spectest"
	"github.com/ChainSafe/lodestar-sub010/cl/transition"
)

// requireSameRoot fails unless have hashes to the root of expected.
func requireSameRoot(t *testing.T, expected, have *state.CachingBeaconState) {
	t.Helper()
	expectedRoot, err := expected.HashSSZ()
	require.NoError(t, err)
	haveRoot, err := have.HashSSZ()
	require.NoError(t, err)
	require.Equal(t, expectedRoot, haveRoot, "state root")
}

// blocksHandler applies every block of the case with full validation. It serves
// both the sanity/blocks and the finality vectors.
var blocksHandler = spectest.HandlerFunc(func(t *testing.T, root fs.FS, c spectest.TestCase) error {
	testState, err := spectest.ReadBeaconState(root, c, spectest.PreSsz)
	require.NoError(t, err)
	expectedState, err := spectest.ReadPostState(root, c)
	require.NoError(t, err)
	blocks, err := spectest.ReadBlocks(root, c)
	require.NoError(t, err)

	startSlot := testState.Slot()
	for _, block := range blocks {
		if err = transition.TransitionState(testState, block, true); err != nil {
			err = fmt.Errorf("cannot transition state: %w. slot=%d. start_slot=%d", err, block.Block.Slot, startSlot)
			break
		}
	}
	if expectedState == nil {
		require.Error(t, err, "expected the blocks to be rejected")
		return nil
	}
	require.NoError(t, err)
	requireSameRoot(t, expectedState, testState)
	return nil
})

var slotsHandler = spectest.HandlerFunc(func(t *testing.T, root fs.FS, c spectest.TestCase) error {
	testState, err := spectest.ReadBeaconState(root, c, spectest.PreSsz)
	require.NoError(t, err)
	expectedState, err := spectest.ReadBeaconState(root, c, spectest.PostSsz)
	require.NoError(t, err)
	var slots uint64
	require.NoError(t, spectest.ReadYml(root, "slots.yaml", &slots))

	require.NoError(t, transition.ProcessSlots(testState, testState.Slot()+slots))
	requireSameRoot(t, expectedState, testState)
	return nil
})
