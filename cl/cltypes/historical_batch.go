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

package cltypes

import (
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
)

// HistoricalBatch pairs the block and state root vectors of one historical period.
type HistoricalBatch struct {
	BlockRoots *solid.HashVectorSSZ
	StateRoots *solid.HashVectorSSZ
}

func (h *HistoricalBatch) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(h.BlockRoots, h.StateRoots)
}
