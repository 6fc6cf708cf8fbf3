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
	"errors"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
)

var ErrBadBitlist = errors.New("ssz(DecodeSSZ): bitlist is missing the length bit or exceeds its limit")

// BitList is an SSZ bitlist with a maximum length, backed by go-bitfield.
type BitList struct {
	bits  bitfield.Bitlist
	limit int
}

func NewBitList(length int, limit int) *BitList {
	return &BitList{bits: bitfield.NewBitlist(uint64(length)), limit: limit}
}

func (b *BitList) Static() bool { return false }

func (b *BitList) EncodeSSZ(dst []byte) ([]byte, error) {
	return append(dst, b.bits...), nil
}

func (b *BitList) DecodeSSZ(buf []byte, _ int) error {
	if len(buf) == 0 || buf[len(buf)-1] == 0 {
		return ErrBadBitlist
	}
	bits := bitfield.Bitlist(append([]byte{}, buf...))
	if bits.Len() > uint64(b.limit) {
		return ErrBadBitlist
	}
	b.bits = bits
	return nil
}

func (b *BitList) EncodingSizeSSZ() int { return len(b.bits) }

func (b *BitList) HashSSZ() ([32]byte, error) {
	return merkle_tree.BitlistRootWithLimit(b.bits.Bytes(), b.bits.Len(), uint64(b.limit))
}

func (b *BitList) Len() int                  { return int(b.bits.Len()) }
func (b *BitList) GetBitAt(i int) bool       { return b.bits.BitAt(uint64(i)) }
func (b *BitList) SetBitAt(i int, v bool)    { b.bits.SetBitAt(uint64(i), v) }
func (b *BitList) Count() int                { return int(b.bits.Count()) }
func (b *BitList) Limit() int                { return b.limit }
func (b *BitList) Bytes() []byte             { return b.bits }
func (b *BitList) Equal(other *BitList) bool { return string(b.bits) == string(other.bits) }

func (b *BitList) Copy() *BitList {
	return &BitList{bits: append(bitfield.Bitlist(nil), b.bits...), limit: b.limit}
}
