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
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
)

// Copy returns a fully independent state. Pending attestations and eth1 votes are
// never modified after insertion so their elements are shared.
func (b *BeaconState) Copy() *BeaconState {
	dst := &BeaconState{}
	b.CopyInto(dst)
	return dst
}

func (b *BeaconState) CopyInto(dst *BeaconState) {
	dst.genesisTime = b.genesisTime
	dst.genesisValidatorsRoot = b.genesisValidatorsRoot
	dst.slot = b.slot
	fork := *b.fork
	dst.fork = &fork
	dst.latestBlockHeader = b.latestBlockHeader.Copy()
	dst.blockRoots = b.blockRoots.Copy()
	dst.stateRoots = b.stateRoots.Copy()
	dst.historicalRoots = b.historicalRoots.Copy()
	dst.eth1Data = b.eth1Data.Copy()
	dst.eth1DataVotes = b.eth1DataVotes.Copy()
	dst.eth1DepositIndex = b.eth1DepositIndex

	validators := make([]*cltypes.Validator, b.validators.Len())
	for i, v := range b.validators.Elements() {
		validators[i] = v.Copy()
	}
	dst.validators = solid.NewListSSZFromSlice(validators, b.validators.Limit(), func() *cltypes.Validator { return &cltypes.Validator{} })
	dst.balances = b.balances.Copy()
	dst.randaoMixes = b.randaoMixes.Copy()
	dst.slashings = b.slashings.Copy()
	dst.previousEpochAttestations = b.previousEpochAttestations.Copy()
	dst.currentEpochAttestations = b.currentEpochAttestations.Copy()
	dst.justificationBits = b.justificationBits
	dst.previousJustifiedCheckpoint = b.previousJustifiedCheckpoint
	dst.currentJustifiedCheckpoint = b.currentJustifiedCheckpoint
	dst.finalizedCheckpoint = b.finalizedCheckpoint

	dst.leaves = b.leaves
	dst.touchedLeaves = b.touchedLeaves
	dst.cleanLeaves = b.cleanLeaves
	dst.version = b.version
	dst.beaconConfig = b.beaconConfig
}
