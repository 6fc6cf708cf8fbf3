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

package ssz

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrLowBufferSize    = errors.New("ssz(DecodeSSZ): bad encoding size")
	ErrBadDynamicLength = errors.New("ssz(DecodeSSZ): bad dynamic length")
	ErrBadOffset        = errors.New("ssz(DecodeSSZ): invalid offset")
	ErrBufferNotRounded = errors.New("ssz(DecodeSSZ): badly rounded operator")
	ErrTooBigList       = errors.New("ssz(DecodeSSZ): list too big")
	ErrBadBoolean       = errors.New("ssz(DecodeSSZ): invalid boolean")
)

const BytesPerLengthOffset = 4

type HashableSSZ interface {
	HashSSZ() ([32]byte, error)
}

type Marshaler interface {
	EncodeSSZ(dst []byte) ([]byte, error)
	EncodingSizeSSZ() int
}

type Unmarshaler interface {
	DecodeSSZ(buf []byte, version int) error
}

type EncodableSSZ interface {
	Marshaler
	Unmarshaler
}

// SizedObjectSSZ is an object that knows whether its encoding has a fixed size.
type SizedObjectSSZ interface {
	EncodableSSZ
	Static() bool
}

type ObjectSSZ interface {
	SizedObjectSSZ
	HashableSSZ
}

func BoolSSZ(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// EncodeOffset marshals a little endian uint32 to buf
func EncodeOffset(buf []byte, offset uint32) {
	binary.LittleEndian.PutUint32(buf, offset)
}

// DecodeOffset unmarshals a little endian uint32
func DecodeOffset(x []byte) uint32 {
	return binary.LittleEndian.Uint32(x)
}

// MarshalSSZ appends the SSZ encoding of a container described by schema to buf.
// Supported elements: uint64, bool, []byte (fixed size), SizedObjectSSZ.
func MarshalSSZ(buf []byte, schema ...any) (dst []byte, err error) {
	dst = buf
	start := len(dst)
	var (
		dynamicComponents []SizedObjectSSZ
		offsetsStarts     []int
	)
	for _, element := range schema {
		switch obj := element.(type) {
		case uint64:
			dst = binary.LittleEndian.AppendUint64(dst, obj)
		case bool:
			dst = append(dst, BoolSSZ(obj))
		case []byte:
			dst = append(dst, obj...)
		case SizedObjectSSZ:
			if obj.Static() {
				if dst, err = obj.EncodeSSZ(dst); err != nil {
					return nil, err
				}
				continue
			}
			offsetsStarts = append(offsetsStarts, len(dst))
			dst = append(dst, make([]byte, BytesPerLengthOffset)...)
			dynamicComponents = append(dynamicComponents, obj)
		default:
			return nil, fmt.Errorf("ssz(MarshalSSZ): unsupported type %T", element)
		}
	}
	for i, component := range dynamicComponents {
		EncodeOffset(dst[offsetsStarts[i]:], uint32(len(dst)-start))
		if dst, err = component.EncodeSSZ(dst); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// UnmarshalSSZ decodes buf into the pointers and objects of schema, in order.
// Supported elements: *uint64, *bool, []byte (filled in place), SizedObjectSSZ.
func UnmarshalSSZ(buf []byte, version int, schema ...any) error {
	position := 0
	var (
		offsets        []int
		dynamicObjects []SizedObjectSSZ
	)
	for _, element := range schema {
		switch obj := element.(type) {
		case *uint64:
			if len(buf) < position+8 {
				return ErrLowBufferSize
			}
			*obj = binary.LittleEndian.Uint64(buf[position:])
			position += 8
		case *bool:
			if len(buf) < position+1 {
				return ErrLowBufferSize
			}
			if buf[position] > 1 {
				return ErrBadBoolean
			}
			*obj = buf[position] == 1
			position++
		case []byte:
			if len(buf) < position+len(obj) {
				return ErrLowBufferSize
			}
			copy(obj, buf[position:])
			position += len(obj)
		case SizedObjectSSZ:
			if obj.Static() {
				size := obj.EncodingSizeSSZ()
				if len(buf) < position+size {
					return ErrLowBufferSize
				}
				if err := obj.DecodeSSZ(buf[position:position+size], version); err != nil {
					return err
				}
				position += size
				continue
			}
			if len(buf) < position+BytesPerLengthOffset {
				return ErrLowBufferSize
			}
			offsets = append(offsets, int(DecodeOffset(buf[position:])))
			dynamicObjects = append(dynamicObjects, obj)
			position += BytesPerLengthOffset
		default:
			return fmt.Errorf("ssz(UnmarshalSSZ): unsupported type %T", element)
		}
	}
	if len(dynamicObjects) == 0 {
		if position != len(buf) {
			return ErrLowBufferSize
		}
		return nil
	}
	if offsets[0] != position {
		return ErrBadOffset
	}
	for i, obj := range dynamicObjects {
		end := len(buf)
		if i != len(dynamicObjects)-1 {
			end = offsets[i+1]
		}
		if offsets[i] > end || end > len(buf) {
			return ErrBadOffset
		}
		if err := obj.DecodeSSZ(buf[offsets[i]:end], version); err != nil {
			return err
		}
	}
	return nil
}
