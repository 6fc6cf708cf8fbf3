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

// Package duties computes what validators are expected to do in an epoch: which slots they
// propose, which committee they attest in and the vote they cast.
package duties

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2"
)

var (
	ErrEpochOutOfRange = errors.New("epoch is out of the lookahead of the state")
	ErrSlotOutOfRange  = errors.New("slot does not match the head state")
)

type ProposerDuty struct {
	Slot           uint64
	ValidatorIndex uint64
	PublicKey      [48]byte
}

// CommitteeAssignment places a validator at Position of Committee, attesting at Slot.
type CommitteeAssignment struct {
	Slot           uint64
	CommitteeIndex uint64
	Committee      []uint64
	Position       int
}

// ProposerDuties lists the proposer of every slot of epoch. Epochs after the one of s are
// computed on a copy advanced with empty slots, past epochs are refused.
func ProposerDuties(s *state.CachingBeaconState, epoch uint64) ([]ProposerDuty, error) {
	cfg := s.BeaconConfig()
	currentEpoch := state.Epoch(s)
	if epoch < currentEpoch || epoch > currentEpoch+1 {
		return nil, fmt.Errorf("%w: epoch %d, state epoch %d", ErrEpochOutOfRange, epoch, currentEpoch)
	}
	startSlot := epoch * cfg.SlotsPerEpoch
	if epoch > currentEpoch {
		// effective balances and the registry only settle at the epoch boundary
		s = s.Copy()
		if err := eth2.New(false).ProcessSlots(s, startSlot); err != nil {
			return nil, err
		}
	}

	duties := make([]ProposerDuty, 0, cfg.SlotsPerEpoch)
	for slot := startSlot; slot < startSlot+cfg.SlotsPerEpoch; slot++ {
		proposer, err := s.GetBeaconProposerIndexForSlot(slot)
		if err != nil {
			return nil, err
		}
		publicKey, err := s.ValidatorPublicKey(int(proposer))
		if err != nil {
			return nil, err
		}
		duties = append(duties, ProposerDuty{Slot: slot, ValidatorIndex: proposer, PublicKey: publicKey})
	}
	return duties, nil
}

// GetCommitteeAssignment finds the committee validatorIndex attests in during epoch, which is at
// most one epoch ahead of s. ok is false when the validator has no assignment.
func GetCommitteeAssignment(s *state.CachingBeaconState, epoch, validatorIndex uint64) (assignment CommitteeAssignment, ok bool, err error) {
	cfg := s.BeaconConfig()
	if epoch > state.Epoch(s)+1 {
		return assignment, false, fmt.Errorf("%w: epoch %d, state epoch %d", ErrEpochOutOfRange, epoch, state.Epoch(s))
	}
	if validatorIndex >= uint64(s.ValidatorLength()) {
		return assignment, false, fmt.Errorf("%w: %d", state.ErrInvalidValidatorIndex, validatorIndex)
	}
	committeesPerSlot := s.GetCommitteeCountPerSlot(epoch)
	startSlot := epoch * cfg.SlotsPerEpoch
	for slot := startSlot; slot < startSlot+cfg.SlotsPerEpoch; slot++ {
		for committeeIndex := uint64(0); committeeIndex < committeesPerSlot; committeeIndex++ {
			committee, err := s.GetBeaconCommitee(slot, committeeIndex)
			if err != nil {
				return assignment, false, err
			}
			for position, member := range committee {
				if member != validatorIndex {
					continue
				}
				members := make([]uint64, len(committee))
				copy(members, committee)
				return CommitteeAssignment{Slot: slot, CommitteeIndex: committeeIndex, Committee: members, Position: position}, true, nil
			}
		}
	}
	return assignment, false, nil
}

// AttestationData is the vote for committeeIndex at slot. head is the state of the head block
// processed up to slot, genesisBlockRoot stands in for the head while the chain has no block
// past genesis.
func AttestationData(head *state.CachingBeaconState, genesisBlockRoot [32]byte, slot, committeeIndex uint64) (*cltypes.AttestationData, error) {
	cfg := head.BeaconConfig()
	if head.Slot() != slot {
		return nil, fmt.Errorf("%w: slot %d, head state slot %d", ErrSlotOutOfRange, slot, head.Slot())
	}
	epoch := state.Epoch(head)
	if committeeIndex >= head.GetCommitteeCountPerSlot(epoch) {
		return nil, fmt.Errorf("%w: %d", state.ErrCommitteeIndexOutOfRange, committeeIndex)
	}

	headRoot := genesisBlockRoot
	if header := head.LatestBlockHeader(); header.Slot != cfg.GenesisSlot {
		if header.Root == ([32]byte{}) {
			stateRoot, err := head.HashSSZ()
			if err != nil {
				return nil, err
			}
			header.Root = stateRoot
		}
		var err error
		if headRoot, err = header.HashSSZ(); err != nil {
			return nil, err
		}
	}

	targetRoot := headRoot
	if startSlot := epoch * cfg.SlotsPerEpoch; startSlot < slot {
		var err error
		if targetRoot, err = head.GetBlockRoot(epoch); err != nil {
			return nil, err
		}
	}
	return &cltypes.AttestationData{
		Slot:            slot,
		CommitteeIndex:  committeeIndex,
		BeaconBlockRoot: headRoot,
		Source:          head.CurrentJustifiedCheckpoint(),
		Target:          cltypes.Checkpoint{Epoch: epoch, Root: targetRoot},
	}, nil
}
