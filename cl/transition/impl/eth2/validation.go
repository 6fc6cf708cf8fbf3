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
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
)

func (I *Impl) VerifyTransition(s *state.CachingBeaconState, currentBlock *cltypes.BeaconBlock) error {
	if !I.FullValidation {
		return nil
	}
	expectedStateRoot, err := s.HashSSZ()
	if err != nil {
		return fmt.Errorf("unable to generate state root: %w", err)
	}
	if expectedStateRoot != currentBlock.StateRoot {
		return fmt.Errorf("%w: computed %x, block %x", ErrInvalidStateRoot, expectedStateRoot, currentBlock.StateRoot)
	}
	return nil
}

func (I *Impl) VerifyBlockSignature(s *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) error {
	if !I.FullValidation {
		return nil
	}
	valid, err := verifyBlockSignature(s, block)
	if err != nil {
		return fmt.Errorf("error validating block signature: %w", err)
	}
	if !valid {
		return fmt.Errorf("block signature: %w", ErrInvalidSignature)
	}
	return nil
}

func verifyBlockSignature(s *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) (bool, error) {
	pk, err := s.ValidatorPublicKey(int(block.Block.ProposerIndex))
	if err != nil {
		return false, err
	}
	domain, err := s.GetDomain(s.BeaconConfig().DomainBeaconProposer, state.Epoch(s))
	if err != nil {
		return false, err
	}
	sigRoot, err := fork.ComputeSigningRoot(block.Block, domain)
	if err != nil {
		return false, err
	}
	return verifySignature(block.Signature, sigRoot, pk), nil
}

// verifySignature reports undecodable signatures as invalid rather than failing.
func verifySignature(signature [96]byte, signingRoot [32]byte, pk [48]byte) bool {
	valid, err := bls.Verify(signature[:], signingRoot[:], pk[:])
	return err == nil && valid
}
