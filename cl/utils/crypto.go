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

package utils

import (
	"hash"
	"sync"

	"github.com/minio/sha256-simd"
)

// HashFunc hashes the concatenation of its arguments.
type HashFunc func([]byte, ...[]byte) [32]byte

var hasherPool = sync.Pool{
	New: func() interface{} {
		return sha256.New()
	},
}

// Sha256 hashes the concatenation of data and extras.
func Sha256(data []byte, extras ...[]byte) [32]byte {
	h := hasherPool.Get().(hash.Hash)
	defer hasherPool.Put(h)
	h.Reset()

	var b [32]byte
	h.Write(data)
	for _, extra := range extras {
		h.Write(extra)
	}
	h.Sum(b[:0])
	return b
}

// OptimizedSha256NotThreadSafe returns a hashing function that reuses one hasher.
// The returned function must not be shared between goroutines.
func OptimizedSha256NotThreadSafe() HashFunc {
	var b [32]byte
	h := sha256.New()
	return func(data []byte, extras ...[]byte) [32]byte {
		h.Reset()
		h.Write(data)
		for _, extra := range extras {
			h.Write(extra)
		}
		h.Sum(b[:0])
		return b
	}
}
