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

package eth2

import (
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/fork"
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// ProcessBlockHeader checks the block against the latest header and caches its header with a zero state root.
func (I *Impl) ProcessBlockHeader(s *state.CachingBeaconState, block *cltypes.BeaconBlock) error {
	if block.Slot != s.Slot() {
		return fmt.Errorf("%w: state slot %d, block slot %d", ErrWrongSlot, s.Slot(), block.Slot)
	}
	latestBlockHeader := s.LatestBlockHeader()
	if block.Slot <= latestBlockHeader.Slot {
		return fmt.Errorf("%w: block slot %d, latest block slot %d", ErrStaleBlock, block.Slot, latestBlockHeader.Slot)
	}
	propInd, err := s.GetBeaconProposerIndex()
	if err != nil {
		return fmt.Errorf("error in GetBeaconProposerIndex: %w", err)
	}
	if block.ProposerIndex != propInd {
		return fmt.Errorf("%w: block proposer %d, expected %d", ErrWrongProposer, block.ProposerIndex, propInd)
	}
	latestRoot, err := latestBlockHeader.HashSSZ()
	if err != nil {
		return fmt.Errorf("unable to hash tree root of latest block header: %w", err)
	}
	if block.ParentRoot != latestRoot {
		return fmt.Errorf("%w: block parent root %x, latest block root %x", ErrWrongParentRoot, block.ParentRoot, latestRoot)
	}
	slashed, err := s.ValidatorIsSlashed(int(block.ProposerIndex))
	if err != nil {
		return err
	}
	if slashed {
		return fmt.Errorf("%w: %d", ErrSlashedProposer, block.ProposerIndex)
	}

	bodyRoot, err := block.Body.HashSSZ()
	if err != nil {
		return fmt.Errorf("unable to hash tree root of block body: %w", err)
	}
	s.SetLatestBlockHeader(&cltypes.BeaconBlockHeader{
		Slot:          block.Slot,
		ProposerIndex: block.ProposerIndex,
		ParentRoot:    block.ParentRoot,
		BodyRoot:      bodyRoot,
	})
	return nil
}

// ProcessRandao mixes the hash of the proposer's epoch signature into the current randao mix.
func (I *Impl) ProcessRandao(s *state.CachingBeaconState, randao [96]byte, proposerIndex uint64) error {
	epoch := state.Epoch(s)
	if I.FullValidation {
		proposerPublicKey, err := s.ValidatorPublicKey(int(proposerIndex))
		if err != nil {
			return err
		}
		domain, err := s.GetDomain(s.BeaconConfig().DomainRandao, epoch)
		if err != nil {
			return fmt.Errorf("ProcessRandao: unable to get domain: %w", err)
		}
		signingRoot, err := fork.ComputeSigningRootFromRoot(merkle_tree.Uint64Root(epoch), domain)
		if err != nil {
			return fmt.Errorf("ProcessRandao: unable to compute signing root: %w", err)
		}
		if !verifySignature(randao, signingRoot, proposerPublicKey) {
			return fmt.Errorf("ProcessRandao: %w: public key %x, signing root %x", ErrInvalidSignature, proposerPublicKey, signingRoot)
		}
	}

	randaoMixes := s.GetRandaoMixes(epoch)
	randaoHash := utils.Sha256(randao[:])
	s.SetRandaoMixAt(int(epoch%s.BeaconConfig().EpochsPerHistoricalVector), utils.XorBytes32(randaoMixes, randaoHash))
	return nil
}

// ProcessEth1Data records the vote and adopts it once more than half of the voting period agrees.
func (I *Impl) ProcessEth1Data(s *state.CachingBeaconState, eth1Data *cltypes.Eth1Data) error {
	s.AddEth1DataVote(eth1Data.Copy())

	// Count how many times body.Eth1Data appears in the votes.
	numVotes := 0
	s.Eth1DataVotes().Range(func(_ int, vote *cltypes.Eth1Data, _ int) bool {
		if eth1Data.Equal(vote) {
			numVotes++
		}
		return true
	})

	if uint64(numVotes*2) > s.BeaconConfig().SlotsPerEth1VotingPeriod() {
		s.SetEth1Data(eth1Data.Copy())
	}
	return nil
}
