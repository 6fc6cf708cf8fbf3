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
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

type Checkpoint struct {
	Epoch uint64
	Root  [32]byte
}

func (c *Checkpoint) Copy() *Checkpoint {
	copiedCheckpoint := new(Checkpoint)
	*copiedCheckpoint = *c
	return copiedCheckpoint
}

func (c *Checkpoint) Equal(other Checkpoint) bool {
	return c.Epoch == other.Epoch && c.Root == other.Root
}

func (c *Checkpoint) EncodeSSZ(buf []byte) ([]byte, error) {
	return ssz.MarshalSSZ(buf, c.Epoch, c.Root[:])
}

func (c *Checkpoint) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, &c.Epoch, c.Root[:])
}

func (c *Checkpoint) EncodingSizeSSZ() int {
	return 40
}

func (*Checkpoint) Static() bool {
	return true
}

func (c *Checkpoint) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(c.Epoch, c.Root)
}
