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
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// DepositTree accumulates deposit data roots the way the deposit contract does
// and produces the proofs consumed by deposit processing.
type DepositTree struct {
	depth  uint64
	leaves [][32]byte
}

func NewDepositTree(depth uint64) *DepositTree {
	return &DepositTree{depth: depth}
}

func (t *DepositTree) Push(leaf [32]byte) {
	t.leaves = append(t.leaves, leaf)
}

func (t *DepositTree) Len() uint64 {
	return uint64(len(t.leaves))
}

// Root returns the deposit root with the leaf count mixed in.
func (t *DepositTree) Root() ([32]byte, error) {
	return ArraysRootWithLimit(t.leaves, uint64(1)<<t.depth)
}

// Proof returns the depth+1 long branch for the leaf at index, the last element being the length mix-in.
func (t *DepositTree) Proof(index uint64) ([][32]byte, error) {
	if index >= uint64(len(t.leaves)) {
		return nil, fmt.Errorf("merkle_tree: deposit index %d out of range, %d leaves", index, len(t.leaves))
	}
	proof := make([][32]byte, 0, t.depth+1)
	layer := make([][32]byte, len(t.leaves))
	copy(layer, t.leaves)
	idx := index
	for d := uint64(0); d < t.depth; d++ {
		if sibling := idx ^ 1; sibling < uint64(len(layer)) {
			proof = append(proof, layer[sibling])
		} else {
			proof = append(proof, ZeroHashes[d])
		}
		if len(layer)%2 == 1 {
			layer = append(layer, ZeroHashes[d])
		}
		next := make([][32]byte, len(layer)/2)
		for i := range next {
			next[i] = utils.Sha256(layer[2*i][:], layer[2*i+1][:])
		}
		layer = next
		idx >>= 1
	}
	return append(proof, Uint64Root(uint64(len(t.leaves)))), nil
}
