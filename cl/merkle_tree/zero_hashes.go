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

import "github.com/minio/sha256-simd"

const maxTreeDepth = 64

// ZeroHashes is a representation of all zerohashes of varying depths.
var ZeroHashes [maxTreeDepth + 1][32]byte

func init() {
	for i := 0; i < maxTreeDepth; i++ {
		ZeroHashes[i+1] = sha256.Sum256(append(ZeroHashes[i][:], ZeroHashes[i][:]...))
	}
}
