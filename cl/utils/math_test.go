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
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

func TestIntegerSquareRoot(t *testing.T) {
	tests := []struct {
		n, want uint64
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{15, 3},
		{16, 4},
		{1_000_000_000_000, 1_000_000},
		{999_999_999_999, 999_999},
		{math.MaxUint64, math.MaxUint32},
		{math.MaxUint32 * math.MaxUint32, math.MaxUint32},
		{math.MaxUint32*math.MaxUint32 - 1, math.MaxUint32 - 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, utils.IntegerSquareRoot(tt.n), "n=%d", tt.n)
	}
}

func TestPowerOf2(t *testing.T) {
	require.Equal(t, uint64(1), utils.PowerOf2(0))
	require.Equal(t, uint64(1024), utils.PowerOf2(10))
	require.True(t, utils.IsPowerOf2(64))
	require.False(t, utils.IsPowerOf2(0))
	require.False(t, utils.IsPowerOf2(65))
	require.Panics(t, func() { utils.PowerOf2(64) })
}

func TestMinMax(t *testing.T) {
	require.Equal(t, uint64(2), utils.Min64(2, 3))
	require.Equal(t, uint64(3), utils.Max64(2, 3))
}
