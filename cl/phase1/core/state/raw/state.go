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
	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
)

type StateLeafIndex uint

// Field positions of the phase0 BeaconState container.
const (
	GenesisTimeLeafIndex                 StateLeafIndex = 0
	GenesisValidatorsRootLeafIndex       StateLeafIndex = 1
	SlotLeafIndex                        StateLeafIndex = 2
	ForkLeafIndex                        StateLeafIndex = 3
	LatestBlockHeaderLeafIndex           StateLeafIndex = 4
	BlockRootsLeafIndex                  StateLeafIndex = 5
	StateRootsLeafIndex                  StateLeafIndex = 6
	HistoricalRootsLeafIndex             StateLeafIndex = 7
	Eth1DataLeafIndex                    StateLeafIndex = 8
	Eth1DataVotesLeafIndex               StateLeafIndex = 9
	Eth1DepositIndexLeafIndex            StateLeafIndex = 10
	ValidatorsLeafIndex                  StateLeafIndex = 11
	BalancesLeafIndex                    StateLeafIndex = 12
	RandaoMixesLeafIndex                 StateLeafIndex = 13
	SlashingsLeafIndex                   StateLeafIndex = 14
	PreviousEpochAttestationsLeafIndex   StateLeafIndex = 15
	CurrentEpochAttestationsLeafIndex    StateLeafIndex = 16
	JustificationBitsLeafIndex           StateLeafIndex = 17
	PreviousJustifiedCheckpointLeafIndex StateLeafIndex = 18
	CurrentJustifiedCheckpointLeafIndex  StateLeafIndex = 19
	FinalizedCheckpointLeafIndex         StateLeafIndex = 20

	StateLeafSize = 21
)

// BeaconState is the plain phase0 state container. Validators and balances are
// only ever grown together through AddValidator, so the two lists share indices.
type BeaconState struct {
	// State fields
	genesisTime                 uint64
	genesisValidatorsRoot       [32]byte
	slot                        uint64
	fork                        *cltypes.Fork
	latestBlockHeader           *cltypes.BeaconBlockHeader
	blockRoots                  *solid.HashVectorSSZ
	stateRoots                  *solid.HashVectorSSZ
	historicalRoots             *solid.HashListSSZ
	eth1Data                    *cltypes.Eth1Data
	eth1DataVotes               *solid.ListSSZ[*cltypes.Eth1Data]
	eth1DepositIndex            uint64
	validators                  *solid.ListSSZ[*cltypes.Validator]
	balances                    *solid.Uint64ListSSZ
	randaoMixes                 *solid.HashVectorSSZ
	slashings                   *solid.Uint64VectorSSZ
	previousEpochAttestations   *solid.ListSSZ[*cltypes.PendingAttestation]
	currentEpochAttestations    *solid.ListSSZ[*cltypes.PendingAttestation]
	justificationBits           cltypes.JustificationBits
	previousJustifiedCheckpoint cltypes.Checkpoint
	currentJustifiedCheckpoint  cltypes.Checkpoint
	finalizedCheckpoint         cltypes.Checkpoint

	// leaves for computing hashes
	leaves        [StateLeafSize][32]byte
	touchedLeaves [StateLeafSize]bool
	cleanLeaves   bool // false until every leaf has been computed once

	version      clparams.StateVersion
	beaconConfig *clparams.BeaconChainConfig
}

// New allocates an empty phase0 state whose vector lengths and list limits come from cfg.
func New(cfg *clparams.BeaconChainConfig) *BeaconState {
	return &BeaconState{
		beaconConfig:              cfg,
		version:                   clparams.Phase0Version,
		fork:                      &cltypes.Fork{},
		latestBlockHeader:         &cltypes.BeaconBlockHeader{},
		blockRoots:                solid.NewHashVector(int(cfg.SlotsPerHistoricalRoot)),
		stateRoots:                solid.NewHashVector(int(cfg.SlotsPerHistoricalRoot)),
		historicalRoots:           solid.NewHashList(int(cfg.HistoricalRootsLimit)),
		eth1Data:                  &cltypes.Eth1Data{},
		eth1DataVotes:             solid.NewListSSZ(int(cfg.SlotsPerEth1VotingPeriod()), func() *cltypes.Eth1Data { return &cltypes.Eth1Data{} }),
		validators:                solid.NewListSSZ(int(cfg.ValidatorRegistryLimit), func() *cltypes.Validator { return &cltypes.Validator{} }),
		balances:                  solid.NewUint64ListSSZ(int(cfg.ValidatorRegistryLimit)),
		randaoMixes:               solid.NewHashVector(int(cfg.EpochsPerHistoricalVector)),
		slashings:                 solid.NewUint64VectorSSZ(int(cfg.EpochsPerSlashingsVector)),
		previousEpochAttestations: solid.NewListSSZ(int(cfg.PreviousEpochAttestationsLength()), cltypes.NewPendingAttestation),
		currentEpochAttestations:  solid.NewListSSZ(int(cfg.CurrentEpochAttestationsLength()), cltypes.NewPendingAttestation),
	}
}
