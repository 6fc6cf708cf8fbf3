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

package clpersist_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/clpersist"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/statetest"
	"github.com/ChainSafe/lodestar-sub010/cl/transition"
)

func TestSlotToPaths(t *testing.T) {
	cfg := &clparams.MinimalBeaconConfig
	tests := []struct {
		slot   uint64
		folder string
		file   string
	}{
		{0, "blocks/0/0", "blocks/0/0/0.ssz_snappy"},
		{9, "blocks/0/1", "blocks/0/1/9.ssz_snappy"},
		{64, "blocks/1/8", "blocks/1/8/64.ssz_snappy"},
	}
	for _, tt := range tests {
		folder, file := clpersist.SlotToPaths(clpersist.Blocks, tt.slot, cfg)
		require.Equal(t, tt.folder, folder)
		require.Equal(t, tt.file, file)
	}
}

func TestSaveAndReadBlock(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &clparams.MinimalBeaconConfig
	for _, slot := range []uint64{9, 12, 10} {
		block := cltypes.NewSignedBeaconBlock(cfg)
		block.Block.Slot = slot
		block.Block.ProposerIndex = slot * 2
		require.NoError(t, clpersist.SaveBlockWithConfig(fs, block, cfg))
	}

	block, err := clpersist.ReadBlock(fs, 12, cfg)
	require.NoError(t, err)
	require.Equal(t, uint64(24), block.Block.ProposerIndex)

	slots, err := clpersist.Slots(fs, clpersist.Blocks, 1, cfg)
	require.NoError(t, err)
	require.Equal(t, []uint64{9, 10, 12}, slots)

	_, err = clpersist.ReadBlock(fs, 11, cfg)
	require.Error(t, err)
	_, err = clpersist.Slots(fs, clpersist.States, 1, cfg)
	require.Error(t, err)
}

func TestSaveAndReadState(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &clparams.MinimalBeaconConfig
	s, _, err := statetest.Genesis(cfg, 64)
	require.NoError(t, err)
	require.NoError(t, transition.ProcessSlots(s, 5))
	require.NoError(t, clpersist.SaveState(fs, s))

	// saving again replaces the file
	require.NoError(t, clpersist.SaveState(fs, s))

	read, err := clpersist.ReadState(fs, 5, cfg)
	require.NoError(t, err)
	expected, err := s.HashSSZ()
	require.NoError(t, err)
	root, err := read.HashSSZ()
	require.NoError(t, err)
	require.Equal(t, expected, root)
}
