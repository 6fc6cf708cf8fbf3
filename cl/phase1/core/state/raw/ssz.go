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

package raw

import (
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

func (b *BeaconState) getSchema() []any {
	return []any{
		&b.genesisTime, b.genesisValidatorsRoot[:], &b.slot, b.fork, b.latestBlockHeader,
		b.blockRoots, b.stateRoots, b.historicalRoots, b.eth1Data, b.eth1DataVotes, &b.eth1DepositIndex,
		b.validators, b.balances, b.randaoMixes, b.slashings,
		b.previousEpochAttestations, b.currentEpochAttestations, &b.justificationBits,
		&b.previousJustifiedCheckpoint, &b.currentJustifiedCheckpoint, &b.finalizedCheckpoint,
	}
}

func (b *BeaconState) EncodeSSZ(buf []byte) ([]byte, error) {
	return ssz.MarshalSSZ(buf, b.genesisTime, b.genesisValidatorsRoot[:], b.slot, b.fork, b.latestBlockHeader,
		b.blockRoots, b.stateRoots, b.historicalRoots, b.eth1Data, b.eth1DataVotes, b.eth1DepositIndex,
		b.validators, b.balances, b.randaoMixes, b.slashings,
		b.previousEpochAttestations, b.currentEpochAttestations, &b.justificationBits,
		&b.previousJustifiedCheckpoint, &b.currentJustifiedCheckpoint, &b.finalizedCheckpoint)
}

// DecodeSSZ decodes a full state. The receiver must come from New so that vector lengths are known.
func (b *BeaconState) DecodeSSZ(buf []byte, version int) error {
	if err := ssz.UnmarshalSSZ(buf, version, b.getSchema()...); err != nil {
		return err
	}
	if err := b.CheckRegistry(); err != nil {
		return err
	}
	b.markAllLeaves()
	return nil
}

func (b *BeaconState) EncodingSizeSSZ() int {
	size := 8 + 32 + 8 + b.fork.EncodingSizeSSZ() + b.latestBlockHeader.EncodingSizeSSZ() +
		b.blockRoots.EncodingSizeSSZ() + b.stateRoots.EncodingSizeSSZ() + 4 + b.historicalRoots.EncodingSizeSSZ() +
		b.eth1Data.EncodingSizeSSZ() + 4 + b.eth1DataVotes.EncodingSizeSSZ() + 8 +
		4 + b.validators.EncodingSizeSSZ() + 4 + b.balances.EncodingSizeSSZ() +
		b.randaoMixes.EncodingSizeSSZ() + b.slashings.EncodingSizeSSZ() +
		4 + b.previousEpochAttestations.EncodingSizeSSZ() + 4 + b.currentEpochAttestations.EncodingSizeSSZ() +
		b.justificationBits.EncodingSizeSSZ() + 3*b.finalizedCheckpoint.EncodingSizeSSZ()
	return size
}

func (*BeaconState) Static() bool {
	return false
}
