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

type Eth1Data struct {
	Root         [32]byte
	DepositCount uint64
	BlockHash    [32]byte
}

func (e *Eth1Data) Copy() *Eth1Data {
	cpy := *e
	return &cpy
}

func (e *Eth1Data) Equal(b *Eth1Data) bool {
	return *e == *b
}

func (e *Eth1Data) EncodeSSZ(buf []byte) ([]byte, error) {
	return ssz.MarshalSSZ(buf, e.Root[:], e.DepositCount, e.BlockHash[:])
}

func (e *Eth1Data) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, e.Root[:], &e.DepositCount, e.BlockHash[:])
}

func (*Eth1Data) EncodingSizeSSZ() int { return 72 }

func (*Eth1Data) Static() bool { return true }

func (e *Eth1Data) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(e.Root, e.DepositCount, e.BlockHash)
}
