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
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

func (I *Impl) ProcessProposerSlashing(s *state.CachingBeaconState, propSlashing *cltypes.ProposerSlashing) error {
	h1 := propSlashing.Header1.Header
	h2 := propSlashing.Header2.Header

	if h1.Slot != h2.Slot {
		return fmt.Errorf("%w: non-matching slots %d and %d", ErrInvalidProposerSlashing, h1.Slot, h2.Slot)
	}
	if h1.ProposerIndex != h2.ProposerIndex {
		return fmt.Errorf("%w: non-matching proposers %d and %d", ErrInvalidProposerSlashing, h1.ProposerIndex, h2.ProposerIndex)
	}
	if *h1 == *h2 {
		return fmt.Errorf("%w: headers are the same", ErrInvalidProposerSlashing)
	}

	proposer, err := s.ValidatorForValidatorIndex(int(h1.ProposerIndex))
	if err != nil {
		return err
	}
	if !proposer.IsSlashable(state.Epoch(s)) {
		return fmt.Errorf("%w: proposer %d", ErrNotSlashable, h1.ProposerIndex)
	}

	if I.FullValidation {
		for i, signedHeader := range []*cltypes.SignedBeaconBlockHeader{propSlashing.Header1, propSlashing.Header2} {
			domain, err := s.GetDomain(s.BeaconConfig().DomainBeaconProposer, state.GetEpochAtSlot(s.BeaconConfig(), signedHeader.Header.Slot))
			if err != nil {
				return fmt.Errorf("unable to get domain: %w", err)
			}
			signingRoot, err := fork.ComputeSigningRoot(signedHeader.Header, domain)
			if err != nil {
				return fmt.Errorf("unable to compute signing root: %w", err)
			}
			if !verifySignature(signedHeader.Signature, signingRoot, proposer.PublicKey) {
				return fmt.Errorf("header %d: %w", i+1, ErrInvalidSignature)
			}
		}
	}

	// The proposer including the slashing is the whistleblower.
	return s.SlashValidator(h1.ProposerIndex, nil)
}

func (I *Impl) ProcessAttesterSlashing(s *state.CachingBeaconState, attSlashing *cltypes.AttesterSlashing) error {
	att1 := attSlashing.Attestation1
	att2 := attSlashing.Attestation2

	if !cltypes.IsSlashableAttestationData(att1.Data, att2.Data) {
		return ErrInvalidAttesterSlashing
	}
	if err := s.IsValidIndexedAttestation(att1, I.FullValidation); err != nil {
		return fmt.Errorf("attestation 1: %w", err)
	}
	if err := s.IsValidIndexedAttestation(att2, I.FullValidation); err != nil {
		return fmt.Errorf("attestation 2: %w", err)
	}

	currentEpoch := state.Epoch(s)
	var slashable []uint64
	for _, ind := range utils.IntersectionOfSortedSets(att1.AttestingIndices.Elements(), att2.AttestingIndices.Elements()) {
		validator, err := s.ValidatorForValidatorIndex(int(ind))
		if err != nil {
			return err
		}
		if validator.IsSlashable(currentEpoch) {
			slashable = append(slashable, ind)
		}
	}
	if len(slashable) == 0 {
		return ErrNoSlashableIndices
	}
	for _, ind := range slashable {
		if err := s.SlashValidator(ind, nil); err != nil {
			return err
		}
	}
	return nil
}

// ProcessDeposit checks the deposit against the eth1 deposit root and applies it. A new
// validator whose proof of possession fails is skipped, the deposit index still advances.
func (I *Impl) ProcessDeposit(s *state.CachingBeaconState, deposit *cltypes.Deposit) error {
	if deposit == nil || deposit.Data == nil {
		return cltypes.ErrNilField
	}
	depositIndex := s.Eth1DepositIndex()
	eth1Data := s.Eth1Data()
	// Compute the leaf of the deposit data in the merkle tree.
	depositLeaf, err := deposit.Data.HashSSZ()
	if err != nil {
		return err
	}
	// Check the branch against the deposit root, the last proof element mixes in the length.
	if !utils.IsValidMerkleBranch(depositLeaf, deposit.Proof.Elements(), s.BeaconConfig().DepositContractTreeDepth+1, depositIndex, eth1Data.Root) {
		return fmt.Errorf("%w: deposit %d", ErrInvalidDepositProof, depositIndex)
	}

	// Increment index
	s.SetEth1DepositIndex(depositIndex + 1)
	_, err = s.ApplyDeposit(deposit.Data)
	return err
}

// ProcessVoluntaryExit takes a voluntary exit and applies state transition.
func (I *Impl) ProcessVoluntaryExit(s *state.CachingBeaconState, signedVoluntaryExit *cltypes.SignedVoluntaryExit) error {
	// Sanity checks so that we know it is good.
	voluntaryExit := signedVoluntaryExit.VoluntaryExit
	beaconConfig := s.BeaconConfig()
	currentEpoch := state.Epoch(s)
	validator, err := s.ValidatorForValidatorIndex(int(voluntaryExit.ValidatorIndex))
	if err != nil {
		return err
	}
	if !validator.Active(currentEpoch) {
		return fmt.Errorf("%w: %d", ErrInactiveValidator, voluntaryExit.ValidatorIndex)
	}
	if validator.ExitEpoch != beaconConfig.FarFutureEpoch {
		return fmt.Errorf("%w: %d exits at epoch %d", ErrAlreadyExiting, voluntaryExit.ValidatorIndex, validator.ExitEpoch)
	}
	if currentEpoch < voluntaryExit.Epoch {
		return fmt.Errorf("%w: exit epoch %d is in the future", ErrExitTooEarly, voluntaryExit.Epoch)
	}
	if currentEpoch < validator.ActivationEpoch+beaconConfig.ShardCommitteePeriod {
		return fmt.Errorf("%w: validator %d has not been active long enough", ErrExitTooEarly, voluntaryExit.ValidatorIndex)
	}

	if I.FullValidation {
		domain, err := s.GetDomain(beaconConfig.DomainVoluntaryExit, voluntaryExit.Epoch)
		if err != nil {
			return err
		}
		signingRoot, err := fork.ComputeSigningRoot(voluntaryExit, domain)
		if err != nil {
			return err
		}
		if !verifySignature(signedVoluntaryExit.Signature, signingRoot, validator.PublicKey) {
			return fmt.Errorf("voluntary exit: %w", ErrInvalidSignature)
		}
	}
	// Do the exit (same process in slashing).
	return s.InitiateValidatorExit(voluntaryExit.ValidatorIndex)
}
