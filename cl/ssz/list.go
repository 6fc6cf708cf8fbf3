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

func EncodeStaticList[T Marshaler](dst []byte, list []T) (buf []byte, err error) {
	buf = dst
	for _, element := range list {
		if buf, err = element.EncodeSSZ(buf); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// EncodeDynamicList writes the offsets table followed by the elements.
func EncodeDynamicList[T Marshaler](dst []byte, list []T) (buf []byte, err error) {
	buf = dst
	start := len(buf)
	buf = append(buf, make([]byte, BytesPerLengthOffset*len(list))...)
	for i, element := range list {
		EncodeOffset(buf[start+i*BytesPerLengthOffset:], uint32(len(buf)-start))
		if buf, err = element.EncodeSSZ(buf); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func DecodeStaticList[T Unmarshaler](buf []byte, elementSize int, max uint64, version int, newFn func() T) ([]T, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	if elementSize == 0 || len(buf)%elementSize != 0 {
		return nil, ErrBufferNotRounded
	}
	n := len(buf) / elementSize
	if uint64(n) > max {
		return nil, ErrTooBigList
	}
	out := make([]T, n)
	for i := range out {
		out[i] = newFn()
		if err := out[i].DecodeSSZ(buf[i*elementSize:(i+1)*elementSize], version); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func DecodeDynamicList[T Unmarshaler](buf []byte, max uint64, version int, newFn func() T) ([]T, error) {
	if len(buf) == 0 {
		return nil, nil
	}
	if len(buf) < BytesPerLengthOffset {
		return nil, ErrLowBufferSize
	}
	firstOffset := DecodeOffset(buf)
	if firstOffset%BytesPerLengthOffset != 0 || firstOffset == 0 || int(firstOffset) > len(buf) {
		return nil, ErrBadOffset
	}
	n := int(firstOffset) / BytesPerLengthOffset
	if uint64(n) > max {
		return nil, ErrTooBigList
	}
	out := make([]T, n)
	for i := range out {
		start := DecodeOffset(buf[i*BytesPerLengthOffset:])
		end := uint32(len(buf))
		if i != n-1 {
			end = DecodeOffset(buf[(i+1)*BytesPerLengthOffset:])
		}
		if start > end || int(end) > len(buf) {
			return nil, ErrBadOffset
		}
		out[i] = newFn()
		if err := out[i].DecodeSSZ(buf[start:end], version); err != nil {
			return nil, err
		}
	}
	return out, nil
}
