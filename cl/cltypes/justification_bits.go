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

const JustificationBitsLength = 4

type JustificationBits [JustificationBitsLength]bool // Bit vector of size 4

func (j JustificationBits) Byte() (out byte) {
	for i, bit := range j {
		if bit {
			out |= 1 << i
		}
	}
	return
}

func (j *JustificationBits) FromByte(b byte) {
	for i := range j {
		j[i] = b&(1<<i) > 0
	}
}

func (j *JustificationBits) DecodeSSZ(b []byte, _ int) error {
	if len(b) != 1 || b[0]>>JustificationBitsLength != 0 {
		return ErrBadJustificationBits
	}
	j.FromByte(b[0])
	return nil
}

func (j *JustificationBits) EncodeSSZ(buf []byte) ([]byte, error) {
	return append(buf, j.Byte()), nil
}

func (*JustificationBits) EncodingSizeSSZ() int {
	return 1
}

func (*JustificationBits) Static() bool {
	return true
}

func (j *JustificationBits) HashSSZ() (out [32]byte, err error) {
	out[0] = j.Byte()
	return
}

// CheckRange checks if bits in certain range are all enabled.
func (j JustificationBits) CheckRange(start int, end int) bool {
	for _, bit := range j[start:end] {
		if !bit {
			return false
		}
	}
	return true
}

// Shift moves every bit one position up, the oldest bit falls off.
func (j JustificationBits) Shift() JustificationBits {
	var out JustificationBits
	copy(out[1:], j[:JustificationBitsLength-1])
	return out
}
