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
	"time"

	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ledgerwatch/log/v3"
)

// HashSSZ recomputes only the fields touched since the previous call.
func (b *BeaconState) HashSSZ() (out [32]byte, err error) {
	if err = b.computeDirtyLeaves(); err != nil {
		return [32]byte{}, err
	}
	return merkle_tree.MerkleizeVector(b.leaves[:], StateLeafSize)
}

func (b *BeaconState) computeDirtyLeaves() error {
	for idx := StateLeafIndex(0); idx < StateLeafSize; idx++ {
		if !b.isLeafDirty(idx) {
			continue
		}
		begin := time.Now()
		root, err := b.leafRoot(idx)
		if err != nil {
			return err
		}
		b.updateLeaf(idx, root)
		if idx == ValidatorsLeafIndex {
			log.Trace("Validators hashing", "elapsed", time.Since(begin))
		}
	}
	b.cleanLeaves = true
	return nil
}

func (b *BeaconState) leafRoot(idx StateLeafIndex) ([32]byte, error) {
	switch idx {
	case GenesisTimeLeafIndex:
		return merkle_tree.Uint64Root(b.genesisTime), nil
	case GenesisValidatorsRootLeafIndex:
		return b.genesisValidatorsRoot, nil
	case SlotLeafIndex:
		return merkle_tree.Uint64Root(b.slot), nil
	case ForkLeafIndex:
		return b.fork.HashSSZ()
	case LatestBlockHeaderLeafIndex:
		return b.latestBlockHeader.HashSSZ()
	case BlockRootsLeafIndex:
		return b.blockRoots.HashSSZ()
	case StateRootsLeafIndex:
		return b.stateRoots.HashSSZ()
	case HistoricalRootsLeafIndex:
		return b.historicalRoots.HashSSZ()
	case Eth1DataLeafIndex:
		return b.eth1Data.HashSSZ()
	case Eth1DataVotesLeafIndex:
		return b.eth1DataVotes.HashSSZ()
	case Eth1DepositIndexLeafIndex:
		return merkle_tree.Uint64Root(b.eth1DepositIndex), nil
	case ValidatorsLeafIndex:
		return b.validators.HashSSZ()
	case BalancesLeafIndex:
		return b.balances.HashSSZ()
	case RandaoMixesLeafIndex:
		return b.randaoMixes.HashSSZ()
	case SlashingsLeafIndex:
		return b.slashings.HashSSZ()
	case PreviousEpochAttestationsLeafIndex:
		return b.previousEpochAttestations.HashSSZ()
	case CurrentEpochAttestationsLeafIndex:
		return b.currentEpochAttestations.HashSSZ()
	case JustificationBitsLeafIndex:
		return b.justificationBits.HashSSZ()
	case PreviousJustifiedCheckpointLeafIndex:
		return b.previousJustifiedCheckpoint.HashSSZ()
	case CurrentJustifiedCheckpointLeafIndex:
		return b.currentJustifiedCheckpoint.HashSSZ()
	case FinalizedCheckpointLeafIndex:
		return b.finalizedCheckpoint.HashSSZ()
	}
	return [32]byte{}, nil
}

func (b *BeaconState) updateLeaf(idx StateLeafIndex, leaf [32]byte) {
	b.leaves[idx] = leaf
	b.touchedLeaves[idx] = false
}

func (b *BeaconState) isLeafDirty(idx StateLeafIndex) bool {
	// never computed or touched since
	return !b.cleanLeaves || b.touchedLeaves[idx]
}

func (b *BeaconState) markLeaf(idxs ...StateLeafIndex) {
	for _, idx := range idxs {
		b.touchedLeaves[idx] = true
	}
}

func (b *BeaconState) markAllLeaves() {
	b.cleanLeaves = false
}
