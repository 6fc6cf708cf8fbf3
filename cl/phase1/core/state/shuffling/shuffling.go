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

package shuffling

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

const (
	seedSize          = 32
	roundSize         = 1
	positionWindowSize = 4
	pivotViewSize     = seedSize + roundSize
	totalSize         = seedSize + roundSize + positionWindowSize
)

var ErrEmptyIndices = errors.New("shuffling: empty index set")

// ComputeShuffledIndexPreInputs precomputes hash(seed || round) for every round.
func ComputeShuffledIndexPreInputs(conf *clparams.BeaconChainConfig, seed [32]byte) [][32]byte {
	ret := make([][32]byte, conf.ShuffleRoundCount)
	for i := range ret {
		ret[i] = utils.Sha256(append(seed[:], byte(i)))
	}
	return ret
}

// ComputeShuffledIndex returns the position index maps to after ShuffleRoundCount swap-or-not rounds.
// preInputs may be nil, hashFunc must not be shared across goroutines.
func ComputeShuffledIndex(conf *clparams.BeaconChainConfig, ind, ind_count uint64, seed [32]byte, preInputs [][32]byte, hashFunc utils.HashFunc) (uint64, error) {
	if ind >= ind_count {
		return 0, fmt.Errorf("index=%d must be less than the index count=%d", ind, ind_count)
	}
	if len(preInputs) == 0 {
		preInputs = ComputeShuffledIndexPreInputs(conf, seed)
	}
	input2 := make([]byte, totalSize)
	copy(input2, seed[:])
	for i := uint64(0); i < conf.ShuffleRoundCount; i++ {
		// Read hash value.
		hashValue := binary.LittleEndian.Uint64(preInputs[i][:8])

		// Caclulate pivot and flip.
		pivot := hashValue % ind_count
		flip := (pivot + ind_count - ind) % ind_count

		position := ind
		if flip > ind {
			position = flip
		}
		// Construct the second hash input.
		input2[seedSize] = byte(i)
		binary.LittleEndian.PutUint32(input2[pivotViewSize:], uint32(position>>8))
		hashedInput2 := hashFunc(input2)
		// Read hash value.
		byteVal := hashedInput2[(position%256)/8]
		bitVal := (byteVal >> (position % 8)) % 2
		if bitVal == 1 {
			ind = flip
		}
	}
	return ind, nil
}

// ShuffleList runs the swap-or-not rounds over a whole list in place, rounds in increasing order.
func ShuffleList(conf *clparams.BeaconChainConfig, input []uint64, seed [32]byte) {
	innerShuffleList(input, uint8(conf.ShuffleRoundCount), seed, true)
}

// UnshuffleList runs the rounds in decreasing order, undoing ShuffleList.
// Afterwards out[i] == in[ComputeShuffledIndex(i)], which is the committee ordering.
func UnshuffleList(conf *clparams.BeaconChainConfig, input []uint64, seed [32]byte) {
	innerShuffleList(input, uint8(conf.ShuffleRoundCount), seed, false)
}

func innerShuffleList(input []uint64, rounds uint8, seed [32]byte, forwards bool) {
	if rounds == 0 {
		return
	}
	listSize := uint64(len(input))
	if listSize <= 1 {
		return
	}
	hashFunc := utils.OptimizedSha256NotThreadSafe()
	buf := make([]byte, totalSize)
	r := uint8(0)
	if !forwards {
		r = rounds - 1
	}
	copy(buf[:seedSize], seed[:])
	for {
		buf[seedSize] = r
		h := hashFunc(buf[:pivotViewSize])
		pivot := binary.LittleEndian.Uint64(h[:8]) % listSize

		// pairs (i, pivot-i) below the pivot, j is the larger index and picks the bit
		mirror := (pivot + 1) >> 1
		binary.LittleEndian.PutUint32(buf[pivotViewSize:], uint32(pivot>>8))
		source := hashFunc(buf)
		byteV := source[(pivot&0xff)>>3]
		for i, j := uint64(0), pivot; i < mirror; i, j = i+1, j-1 {
			if j&0xff == 0xff {
				binary.LittleEndian.PutUint32(buf[pivotViewSize:], uint32(j>>8))
				source = hashFunc(buf)
			}
			if j&0x7 == 0x7 {
				byteV = source[(j&0xff)>>3]
			}
			if (byteV>>(j&0x7))&0x1 == 1 {
				input[i], input[j] = input[j], input[i]
			}
		}

		// pairs above the pivot, walked back from the end of the list
		mirror = (pivot + listSize + 1) >> 1
		end := listSize - 1
		binary.LittleEndian.PutUint32(buf[pivotViewSize:], uint32(end>>8))
		source = hashFunc(buf)
		byteV = source[(end&0xff)>>3]
		for i, j := pivot+1, end; i < mirror; i, j = i+1, j-1 {
			if j&0xff == 0xff {
				binary.LittleEndian.PutUint32(buf[pivotViewSize:], uint32(j>>8))
				source = hashFunc(buf)
			}
			if j&0x7 == 0x7 {
				byteV = source[(j&0xff)>>3]
			}
			if (byteV>>(j&0x7))&0x1 == 1 {
				input[i], input[j] = input[j], input[i]
			}
		}

		if forwards {
			r++
			if r == rounds {
				return
			}
		} else {
			if r == 0 {
				return
			}
			r--
		}
	}
}
