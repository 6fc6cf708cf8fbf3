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

package merkle_tree

import (
	"errors"

	"github.com/prysmaticlabs/gohashtree"
)

var ErrZeroLeaves = errors.New("merkle_tree: zero leaves provided")

// MerkleizeVector uses our optimized routine to hash a list of 32-byte
// elements padded with zero chunks up to limit.
func MerkleizeVector(elements [][32]byte, limit uint64) ([32]byte, error) {
	if uint64(len(elements)) > limit {
		return [32]byte{}, errors.New("merkle_tree: more elements than limit")
	}
	depth := getDepth(limit)
	// Return zerohash at depth
	if len(elements) == 0 {
		return ZeroHashes[depth], nil
	}
	// hashing happens in place, never touch the caller's slice
	layer := make([][32]byte, len(elements), len(elements)+1)
	copy(layer, elements)
	for i := uint8(0); i < depth; i++ {
		if len(layer)%2 == 1 {
			layer = append(layer, ZeroHashes[i])
		}
		outputLen := len(layer) / 2
		if err := gohashtree.Hash(layer, layer); err != nil {
			return [32]byte{}, err
		}
		layer = layer[:outputLen]
	}
	return layer[0], nil
}

// MerkleRootFromLeaves computes the root of the smallest power of two tree holding leaves.
func MerkleRootFromLeaves(leaves [][32]byte) ([32]byte, error) {
	if len(leaves) == 0 {
		return [32]byte{}, ErrZeroLeaves
	}
	return MerkleizeVector(leaves, uint64(len(leaves)))
}

// getDepth returns the depth of the smallest power of two tree with at least v leaves.
func getDepth(v uint64) uint8 {
	if v <= 1 {
		return 0
	}
	depth := uint8(0)
	for n := v - 1; n > 0; n >>= 1 {
		depth++
	}
	return depth
}
