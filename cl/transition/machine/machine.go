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

// Package machine is the interface for eth2 state transition
package machine

import (
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
)

//go:generate mockgen -typed=true -destination=./mock_services/machine_mock.go -package=mock_services . Interface
type Interface interface {
	BlockValidator
	BlockProcessor
	SlotProcessor
}

type BlockProcessor interface {
	BlockHeaderProcessor
	BlockOperationProcessor
}

type BlockValidator interface {
	VerifyBlockSignature(s *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) error
	VerifyTransition(s *state.CachingBeaconState, block *cltypes.BeaconBlock) error
}

type SlotProcessor interface {
	ProcessSlots(s *state.CachingBeaconState, slot uint64) error
}

type BlockHeaderProcessor interface {
	ProcessBlockHeader(s *state.CachingBeaconState, block *cltypes.BeaconBlock) error
	ProcessRandao(s *state.CachingBeaconState, randao [96]byte, proposerIndex uint64) error
	ProcessEth1Data(s *state.CachingBeaconState, eth1Data *cltypes.Eth1Data) error
}

type BlockOperationProcessor interface {
	ProcessProposerSlashing(s *state.CachingBeaconState, propSlashing *cltypes.ProposerSlashing) error
	ProcessAttesterSlashing(s *state.CachingBeaconState, attSlashing *cltypes.AttesterSlashing) error
	ProcessAttestations(s *state.CachingBeaconState, attestations *solid.ListSSZ[*cltypes.Attestation]) error
	ProcessDeposit(s *state.CachingBeaconState, deposit *cltypes.Deposit) error
	ProcessVoluntaryExit(s *state.CachingBeaconState, signedVoluntaryExit *cltypes.SignedVoluntaryExit) error
}
