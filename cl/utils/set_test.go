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

package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

func TestIntersectionOfSortedSets(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 []uint64
		want   []uint64
	}{
		{"disjoint", []uint64{1, 3, 5}, []uint64{2, 4, 6}, []uint64{}},
		{"overlap", []uint64{1, 2, 3, 7, 9}, []uint64{2, 3, 4, 9}, []uint64{2, 3, 9}},
		{"empty", nil, []uint64{1}, []uint64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, utils.IntersectionOfSortedSets(tt.v1, tt.v2))
		})
	}
}

func TestSortedSets(t *testing.T) {
	require.True(t, utils.IsSortedSet([]uint64{1, 2, 5}))
	require.True(t, utils.IsSortedSet(nil))
	require.False(t, utils.IsSortedSet([]uint64{1, 1, 5}))
	require.False(t, utils.IsSortedSet([]uint64{3, 2}))
}

func TestIsValidMerkleBranch(t *testing.T) {
	leaves := [4][32]byte{{1}, {2}, {3}, {4}}
	n01 := utils.Sha256(leaves[0][:], leaves[1][:])
	n23 := utils.Sha256(leaves[2][:], leaves[3][:])
	root := utils.Sha256(n01[:], n23[:])

	require.True(t, utils.IsValidMerkleBranch(leaves[2], [][32]byte{leaves[3], n01}, 2, 2, root))
	require.True(t, utils.IsValidMerkleBranch(leaves[1], [][32]byte{leaves[0], n23}, 2, 1, root))
	require.False(t, utils.IsValidMerkleBranch(leaves[2], [][32]byte{leaves[3], n01}, 2, 3, root))
	require.False(t, utils.IsValidMerkleBranch(leaves[2], [][32]byte{leaves[3]}, 2, 2, root))
}
