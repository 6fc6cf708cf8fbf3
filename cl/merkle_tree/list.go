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
	"encoding/binary"

	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

// ArraysRootWithLimit computes the root of a list of hashes with the given limit, length mixed in.
func ArraysRootWithLimit(input [][32]byte, limit uint64) ([32]byte, error) {
	base, err := MerkleizeVector(input, limit)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(base, uint64(len(input))), nil
}

// ArraysRoot computes the root of a fixed length vector of hashes.
func ArraysRoot(input [][32]byte, length uint64) ([32]byte, error) {
	return MerkleizeVector(input, length)
}

func packUint64s(list []uint64) [][32]byte {
	chunks := make([][32]byte, (len(list)+3)/4)
	for i, v := range list {
		binary.LittleEndian.PutUint64(chunks[i/4][(i%4)*8:], v)
	}
	return chunks
}

// Uint64ListRootWithLimit computes the root of a uint64 list of at most limit elements.
func Uint64ListRootWithLimit(list []uint64, limit uint64) ([32]byte, error) {
	base, err := MerkleizeVector(packUint64s(list), (limit*8+31)/32)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(base, uint64(len(list))), nil
}

// Uint64VectorRoot computes the root of a fixed length uint64 vector.
func Uint64VectorRoot(list []uint64) ([32]byte, error) {
	return MerkleizeVector(packUint64s(list), (uint64(len(list))*8+31)/32)
}

// BitlistRootWithLimit computes the root of a bitlist given its bytes without the length bit.
func BitlistRootWithLimit(bits []byte, length uint64, limit uint64) ([32]byte, error) {
	base, err := MerkleizeVector(packBytes(bits), (limit+255)/256)
	if err != nil {
		return [32]byte{}, err
	}
	return MixInLength(base, length), nil
}

// ListObjectSSZRoot computes the root of a list of hashable objects with the given limit.
func ListObjectSSZRoot[T ssz.HashableSSZ](list []T, limit uint64) ([32]byte, error) {
	roots := make([][32]byte, len(list))
	for i, element := range list {
		root, err := element.HashSSZ()
		if err != nil {
			return [32]byte{}, err
		}
		roots[i] = root
	}
	return ArraysRootWithLimit(roots, limit)
}
