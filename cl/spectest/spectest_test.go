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

package spectest_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/statetest"
	"github.com/ChainSafe/lodestar-sub010/cl/spectest"
	"github.com/ChainSafe/lodestar-sub010/cl/spectest/consensus_tests"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
	"github.com/ChainSafe/lodestar-sub010/cl/transition"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

const (
	slotsCase  = "minimal/phase0/sanity/slots/pyspec_tests/slots_3"
	blocksCase = "minimal/phase0/sanity/blocks/pyspec_tests/empty"
)

func encode(t *testing.T, obj ssz.Marshaler) *fstest.MapFile {
	t.Helper()
	data, err := utils.EncodeSSZSnappy(obj)
	require.NoError(t, err)
	return &fstest.MapFile{Data: data}
}

func vectors(t *testing.T) fstest.MapFS {
	t.Helper()
	cfg := &clparams.MinimalBeaconConfig
	pre, _, err := statetest.Genesis(cfg, 64)
	require.NoError(t, err)
	post := pre.Copy()
	require.NoError(t, transition.ProcessSlots(post, 3))

	root := fstest.MapFS{}
	root[slotsCase+"/pre.ssz_snappy"] = encode(t, pre)
	root[slotsCase+"/post.ssz_snappy"] = encode(t, post)
	root[slotsCase+"/slots.yaml"] = &fstest.MapFile{Data: []byte("3\n")}
	// other forks are ignored
	root["minimal/altair/sanity/slots/pyspec_tests/slots_1/slots.yaml"] = &fstest.MapFile{Data: []byte("1\n")}
	root[blocksCase+"/meta.yaml"] = &fstest.MapFile{Data: []byte("blocks_count: 1\n")}
	root[blocksCase+"/blocks_0.ssz_snappy"] = encode(t, cltypes.NewSignedBeaconBlock(cfg))
	return root
}

func TestReadTestCases(t *testing.T) {
	cases, err := spectest.ReadTestCases(vectors(t))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	byPath := map[string]spectest.TestCase{}
	for _, c := range cases {
		byPath[c.String()] = c
	}
	c, ok := byPath[slotsCase]
	require.True(t, ok)
	require.Equal(t, spectest.TestCase{
		ConfigName:    "minimal",
		ForkPhaseName: spectest.Phase0,
		RunnerName:    "sanity",
		HandlerName:   "slots",
		SuiteName:     "pyspec_tests",
		CaseName:      "slots_3",
	}, c)
	cfg, err := c.BeaconConfig()
	require.NoError(t, err)
	require.Equal(t, clparams.MinimalBeaconConfig.SlotsPerEpoch, cfg.SlotsPerEpoch)
}

func TestReadBlocksAndPostState(t *testing.T) {
	root := vectors(t)
	c := spectest.TestCase{ConfigName: "minimal", ForkPhaseName: spectest.Phase0}

	sub, err := fs.Sub(root, blocksCase)
	require.NoError(t, err)
	blocks, err := spectest.ReadBlocks(sub, c)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Zero(t, blocks[0].Block.Slot)

	post, err := spectest.ReadPostState(sub, c)
	require.NoError(t, err)
	require.Nil(t, post, "no post-state means the case expects a failure")

	sub, err = fs.Sub(root, slotsCase)
	require.NoError(t, err)
	post, err = spectest.ReadPostState(sub, c)
	require.NoError(t, err)
	require.Equal(t, uint64(3), post.Slot())
}

func TestRunCases(t *testing.T) {
	root := vectors(t)
	// only the slots case has a complete layout
	spectest.RunCases(t, spectest.Format{}.Add("sanity", "slots", consensus_tests.TestFormats["sanity/slots"]), root)
}
