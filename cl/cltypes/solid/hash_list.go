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

package solid

import (
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

// HashListSSZ is a bounded list of 32 byte roots.
type HashListSSZ struct {
	u     [][32]byte
	limit int
}

func NewHashList(limit int) *HashListSSZ {
	return &HashListSSZ{limit: limit}
}

func (h *HashListSSZ) Static() bool { return false }

func (h *HashListSSZ) EncodeSSZ(buf []byte) ([]byte, error) {
	for _, root := range h.u {
		buf = append(buf, root[:]...)
	}
	return buf, nil
}

func (h *HashListSSZ) DecodeSSZ(buf []byte, _ int) error {
	if len(buf)%32 != 0 {
		return ssz.ErrBufferNotRounded
	}
	if len(buf)/32 > h.limit {
		return ssz.ErrTooBigList
	}
	h.u = make([][32]byte, len(buf)/32)
	for i := range h.u {
		copy(h.u[i][:], buf[i*32:])
	}
	return nil
}

func (h *HashListSSZ) EncodingSizeSSZ() int { return len(h.u) * 32 }

func (h *HashListSSZ) HashSSZ() ([32]byte, error) {
	return merkle_tree.ArraysRootWithLimit(h.u, uint64(h.limit))
}

func (h *HashListSSZ) Get(index int) [32]byte { return h.u[index] }
func (h *HashListSSZ) Append(v [32]byte)      { h.u = append(h.u, v) }
func (h *HashListSSZ) Len() int               { return len(h.u) }

func (h *HashListSSZ) Copy() *HashListSSZ {
	return &HashListSSZ{u: append([][32]byte(nil), h.u...), limit: h.limit}
}

// HashVectorSSZ is a fixed length vector of 32 byte roots.
type HashVectorSSZ struct {
	u [][32]byte
}

func NewHashVector(length int) *HashVectorSSZ {
	return &HashVectorSSZ{u: make([][32]byte, length)}
}

func (h *HashVectorSSZ) Static() bool { return true }

func (h *HashVectorSSZ) EncodeSSZ(buf []byte) ([]byte, error) {
	for _, root := range h.u {
		buf = append(buf, root[:]...)
	}
	return buf, nil
}

func (h *HashVectorSSZ) DecodeSSZ(buf []byte, _ int) error {
	if len(buf) != len(h.u)*32 {
		return ssz.ErrLowBufferSize
	}
	for i := range h.u {
		copy(h.u[i][:], buf[i*32:])
	}
	return nil
}

func (h *HashVectorSSZ) EncodingSizeSSZ() int { return len(h.u) * 32 }

func (h *HashVectorSSZ) HashSSZ() ([32]byte, error) {
	return merkle_tree.ArraysRoot(h.u, uint64(len(h.u)))
}

func (h *HashVectorSSZ) Get(index int) [32]byte    { return h.u[index] }
func (h *HashVectorSSZ) Set(index int, v [32]byte) { h.u[index] = v }
func (h *HashVectorSSZ) Len() int                  { return len(h.u) }

// Elements exposes the backing slice, callers must not modify it.
func (h *HashVectorSSZ) Elements() [][32]byte {
	return h.u
}

func (h *HashVectorSSZ) Copy() *HashVectorSSZ {
	return &HashVectorSSZ{u: append([][32]byte(nil), h.u...)}
}
