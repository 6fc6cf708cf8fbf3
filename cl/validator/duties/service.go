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

package duties

import (
	"sync"

	"github.com/ledgerwatch/log/v3"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
)

// Service answers duty queries for a chain. It owns the genesis block root, hashed from the
// genesis state the first time a query needs it.
type Service struct {
	mu               sync.Mutex
	genesis          *state.CachingBeaconState
	genesisBlockRoot *[32]byte
}

func NewService(genesis *state.CachingBeaconState) *Service {
	return &Service{genesis: genesis}
}

// GenesisBlockRoot returns the root of the block the genesis state belongs to.
func (s *Service) GenesisBlockRoot() ([32]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.genesisBlockRoot != nil {
		return *s.genesisBlockRoot, nil
	}
	header := s.genesis.LatestBlockHeader()
	stateRoot, err := s.genesis.HashSSZ()
	if err != nil {
		return [32]byte{}, err
	}
	header.Root = stateRoot
	root, err := header.HashSSZ()
	if err != nil {
		return [32]byte{}, err
	}
	s.genesisBlockRoot = &root
	// the state is not needed anymore
	s.genesis = nil
	log.Debug("Computed genesis block root", "root", root, "stateRoot", stateRoot)
	return root, nil
}

func (s *Service) ProposerDuties(head *state.CachingBeaconState, epoch uint64) ([]ProposerDuty, error) {
	return ProposerDuties(head, epoch)
}

func (s *Service) CommitteeAssignment(head *state.CachingBeaconState, epoch, validatorIndex uint64) (CommitteeAssignment, bool, error) {
	return GetCommitteeAssignment(head, epoch, validatorIndex)
}

// AttestationData is the vote for committeeIndex at slot on top of head, see AttestationData.
func (s *Service) AttestationData(head *state.CachingBeaconState, slot, committeeIndex uint64) (*cltypes.AttestationData, error) {
	genesisBlockRoot, err := s.GenesisBlockRoot()
	if err != nil {
		return nil, err
	}
	return AttestationData(head, genesisBlockRoot, slot, committeeIndex)
}
