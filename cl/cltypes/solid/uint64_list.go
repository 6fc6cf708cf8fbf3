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
	"encoding/binary"

	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

// Uint64ListSSZ is a bounded list of uint64.
type Uint64ListSSZ struct {
	u     []uint64
	limit int
}

func NewUint64ListSSZ(limit int) *Uint64ListSSZ {
	return &Uint64ListSSZ{limit: limit}
}

func NewUint64ListSSZFromSlice(limit int, u []uint64) *Uint64ListSSZ {
	return &Uint64ListSSZ{u: u, limit: limit}
}

func (u *Uint64ListSSZ) Static() bool { return false }

func (u *Uint64ListSSZ) EncodeSSZ(buf []byte) ([]byte, error) {
	for _, v := range u.u {
		buf = binary.LittleEndian.AppendUint64(buf, v)
	}
	return buf, nil
}

func (u *Uint64ListSSZ) DecodeSSZ(buf []byte, _ int) error {
	if len(buf)%8 != 0 {
		return ssz.ErrBufferNotRounded
	}
	if len(buf)/8 > u.limit {
		return ssz.ErrTooBigList
	}
	u.u = make([]uint64, len(buf)/8)
	for i := range u.u {
		u.u[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return nil
}

func (u *Uint64ListSSZ) EncodingSizeSSZ() int {
	return len(u.u) * 8
}

func (u *Uint64ListSSZ) HashSSZ() ([32]byte, error) {
	return merkle_tree.Uint64ListRootWithLimit(u.u, uint64(u.limit))
}

func (u *Uint64ListSSZ) Get(index int) uint64    { return u.u[index] }
func (u *Uint64ListSSZ) Set(index int, v uint64) { u.u[index] = v }
func (u *Uint64ListSSZ) Append(v uint64)         { u.u = append(u.u, v) }
func (u *Uint64ListSSZ) Len() int                { return len(u.u) }
func (u *Uint64ListSSZ) Limit() int              { return u.limit }

// Elements exposes the backing slice, callers must not append to it.
func (u *Uint64ListSSZ) Elements() []uint64 {
	return u.u
}

func (u *Uint64ListSSZ) Copy() *Uint64ListSSZ {
	return &Uint64ListSSZ{u: append([]uint64(nil), u.u...), limit: u.limit}
}

// Uint64VectorSSZ is a fixed length vector of uint64.
type Uint64VectorSSZ struct {
	u []uint64
}

func NewUint64VectorSSZ(length int) *Uint64VectorSSZ {
	return &Uint64VectorSSZ{u: make([]uint64, length)}
}

func (u *Uint64VectorSSZ) Static() bool { return true }

func (u *Uint64VectorSSZ) EncodeSSZ(buf []byte) ([]byte, error) {
	for _, v := range u.u {
		buf = binary.LittleEndian.AppendUint64(buf, v)
	}
	return buf, nil
}

func (u *Uint64VectorSSZ) DecodeSSZ(buf []byte, _ int) error {
	if len(buf) != len(u.u)*8 {
		return ssz.ErrLowBufferSize
	}
	for i := range u.u {
		u.u[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return nil
}

func (u *Uint64VectorSSZ) EncodingSizeSSZ() int {
	return len(u.u) * 8
}

func (u *Uint64VectorSSZ) HashSSZ() ([32]byte, error) {
	return merkle_tree.Uint64VectorRoot(u.u)
}

func (u *Uint64VectorSSZ) Get(index int) uint64    { return u.u[index] }
func (u *Uint64VectorSSZ) Set(index int, v uint64) { u.u[index] = v }
func (u *Uint64VectorSSZ) Len() int                { return len(u.u) }

// Elements exposes the backing slice, callers must not modify it.
func (u *Uint64VectorSSZ) Elements() []uint64 {
	return u.u
}

func (u *Uint64VectorSSZ) Copy() *Uint64VectorSSZ {
	return &Uint64VectorSSZ{u: append([]uint64(nil), u.u...)}
}
