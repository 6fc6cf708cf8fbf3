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

package lru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheEvictsOldest(t *testing.T) {
	var evicted []uint64
	c, err := NewWithEvict[uint64, []uint64]("test_evict", 2, func(k uint64, _ []uint64) {
		evicted = append(evicted, k)
	})
	require.NoError(t, err)
	c.Add(1, []uint64{1})
	c.Add(2, []uint64{2})
	c.Add(3, []uint64{3})
	require.Equal(t, []uint64{1}, evicted)

	_, ok := c.Get(1)
	require.False(t, ok)
	v, ok := c.Get(3)
	require.True(t, ok)
	require.Equal(t, []uint64{3}, v)
}

func TestCacheInvalidSize(t *testing.T) {
	_, err := New[uint64, uint64]("test_invalid", 0)
	require.Error(t, err)
}
