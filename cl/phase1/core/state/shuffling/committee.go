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
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// EffectiveBalanceReader is the registry view needed by proposer sampling.
type EffectiveBalanceReader interface {
	ValidatorEffectiveBalance(index int) (uint64, error)
}

// GetSeed computes hash(domain || epoch || mix). mix is the randao mix of
// epoch + EPOCHS_PER_HISTORICAL_VECTOR - MIN_SEED_LOOKAHEAD - 1, looked up by the caller.
func GetSeed(beaconConfig *clparams.BeaconChainConfig, mix [32]byte, epoch uint64, domain [4]byte) [32]byte {
	epochByteArray := make([]byte, 8)
	binary.LittleEndian.PutUint64(epochByteArray, epoch)
	input := append(domain[:], epochByteArray...)
	return utils.Sha256(input, mix[:])
}

// CommitteeBounds returns the [start, end) slice of a shuffled list belonging to committee index out of count.
func CommitteeBounds(listSize, index, count uint64) (start, end uint64) {
	start = (listSize * index) / count
	end = (listSize * (index + 1)) / count
	return
}

// ComputeCommittee selects committee index out of count from indices, one shuffled index at a time.
func ComputeCommittee(conf *clparams.BeaconChainConfig, indices []uint64, seed [32]byte, index, count uint64) ([]uint64, error) {
	if count == 0 || index >= count {
		return nil, fmt.Errorf("committee index %d out of range for %d committees", index, count)
	}
	start, end := CommitteeBounds(uint64(len(indices)), index, count)
	preInputs := ComputeShuffledIndexPreInputs(conf, seed)
	hashFunc := utils.OptimizedSha256NotThreadSafe()
	committee := make([]uint64, 0, end-start)
	for i := start; i < end; i++ {
		shuffled, err := ComputeShuffledIndex(conf, i, uint64(len(indices)), seed, preInputs, hashFunc)
		if err != nil {
			return nil, err
		}
		committee = append(committee, indices[shuffled])
	}
	return committee, nil
}

// ComputeProposerIndex samples a proposer from indices, weighting candidates by effective balance.
func ComputeProposerIndex(conf *clparams.BeaconChainConfig, b EffectiveBalanceReader, indices []uint64, seed [32]byte) (uint64, error) {
	if len(indices) == 0 {
		return 0, ErrEmptyIndices
	}
	maxRandomByte := uint64(1<<8 - 1)
	i := uint64(0)
	total := uint64(len(indices))
	hashFunc := utils.OptimizedSha256NotThreadSafe()
	preInputs := ComputeShuffledIndexPreInputs(conf, seed)
	input := make([]byte, 40)
	copy(input, seed[:])
	for {
		shuffled, err := ComputeShuffledIndex(conf, i%total, total, seed, preInputs, hashFunc)
		if err != nil {
			return 0, err
		}
		candidateIndex := indices[shuffled]
		binary.LittleEndian.PutUint64(input[32:], i/32)
		randomByte := uint64(utils.Sha256(input)[i%32])
		effectiveBalance, err := b.ValidatorEffectiveBalance(int(candidateIndex))
		if err != nil {
			return 0, fmt.Errorf("candidate index out of range: %d: %w", candidateIndex, err)
		}
		if effectiveBalance*maxRandomByte >= conf.MaxEffectiveBalance*randomByte {
			return candidateIndex, nil
		}
		i++
	}
}
