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
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

// HashTreeRoot computes the root of a container whose fields are given in order.
// Supported fields: uint64, bool, [32]byte, []byte (fixed size), ssz.HashableSSZ.
func HashTreeRoot(schema ...any) ([32]byte, error) {
	leaves := make([][32]byte, len(schema))
	for i, element := range schema {
		var err error
		switch obj := element.(type) {
		case uint64:
			leaves[i] = Uint64Root(obj)
		case bool:
			leaves[i] = BoolRoot(obj)
		case [32]byte:
			leaves[i] = obj
		case []byte:
			leaves[i], err = BytesRoot(obj)
		case ssz.HashableSSZ:
			leaves[i], err = obj.HashSSZ()
		default:
			return [32]byte{}, fmt.Errorf("merkle_tree(HashTreeRoot): unsupported type %T", element)
		}
		if err != nil {
			return [32]byte{}, err
		}
	}
	return MerkleizeVector(leaves, uint64(len(leaves)))
}
