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

import "math"

func IsPowerOf2(n uint64) bool {
	return n != 0 && (n&(n-1)) == 0
}

func PowerOf2(n uint64) uint64 {
	if n >= 64 {
		panic("integer overflow")
	}
	return 1 << n
}

// IntegerSquareRoot returns the largest integer x such that x*x <= n.
func IntegerSquareRoot(n uint64) uint64 {
	const maxRoot = math.MaxUint32
	x := uint64(math.Sqrt(float64(n)))
	if x > maxRoot {
		x = maxRoot
	}
	// correct float rounding in both directions
	for x*x > n {
		x--
	}
	for x < maxRoot && (x+1)*(x+1) <= n {
		x++
	}
	return x
}

func Min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func Max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
