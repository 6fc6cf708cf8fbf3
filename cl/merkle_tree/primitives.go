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

	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// Uint64Root retrieves the root hash of a uint64 value by converting it to a byte array and returning it as a hash.
func Uint64Root(val uint64) (root [32]byte) {
	binary.LittleEndian.PutUint64(root[:], val)
	return
}

func BoolRoot(b bool) (root [32]byte) {
	if b {
		root[0] = 1
	}
	return
}

// MixInLength hashes a root with the little endian length of its list.
func MixInLength(root [32]byte, length uint64) [32]byte {
	lengthRoot := Uint64Root(length)
	return utils.Sha256(root[:], lengthRoot[:])
}

// packBytes splits b into zero padded 32 byte chunks.
func packBytes(b []byte) [][32]byte {
	chunks := make([][32]byte, (len(b)+31)/32)
	for i := range chunks {
		copy(chunks[i][:], b[i*32:])
	}
	return chunks
}

// BytesRoot merkleizes a fixed size byte vector such as a pubkey or signature.
func BytesRoot(b []byte) ([32]byte, error) {
	if len(b) <= 32 {
		var root [32]byte
		copy(root[:], b)
		return root, nil
	}
	chunks := packBytes(b)
	return MerkleizeVector(chunks, uint64(len(chunks)))
}
