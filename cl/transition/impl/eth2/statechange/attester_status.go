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

package statechange

import (
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
)

const (
	flagPrevSourceAttester uint8 = 1 << iota
	flagPrevTargetAttester
	flagPrevHeadAttester
	flagCurrSourceAttester
	flagCurrTargetAttester
	flagCurrHeadAttester
)

// attesterStatus is what the pending attestations of the last two epochs say about one validator.
type attesterStatus struct {
	flags uint8
	// earliest inclusion of a previous epoch attestation, valid when the prev source flag is set
	inclusionDelay uint64
	proposerIndex  uint64
}

func (a *attesterStatus) has(flag uint8) bool { return a.flags&flag != 0 }

// epochParticipation gathers the attester statuses and the unslashed attesting stakes, each floored at one increment.
type epochParticipation struct {
	statuses []attesterStatus

	prevSourceStake uint64
	prevTargetStake uint64
	prevHeadStake   uint64
	currTargetStake uint64
}

func computeEpochParticipation(s *state.CachingBeaconState) (*epochParticipation, error) {
	out := &epochParticipation{statuses: make([]attesterStatus, s.ValidatorLength())}
	if err := out.processAttestations(s, s.PreviousEpochAttestations(), state.PreviousEpoch(s), true); err != nil {
		return nil, err
	}
	if err := out.processAttestations(s, s.CurrentEpochAttestations(), state.Epoch(s), false); err != nil {
		return nil, err
	}

	s.ForEachValidator(func(v *cltypes.Validator, idx, _ int) bool {
		if v.Slashed {
			return true
		}
		status := &out.statuses[idx]
		if status.has(flagPrevSourceAttester) {
			out.prevSourceStake += v.EffectiveBalance
		}
		if status.has(flagPrevTargetAttester) {
			out.prevTargetStake += v.EffectiveBalance
		}
		if status.has(flagPrevHeadAttester) {
			out.prevHeadStake += v.EffectiveBalance
		}
		if status.has(flagCurrTargetAttester) {
			out.currTargetStake += v.EffectiveBalance
		}
		return true
	})
	increment := s.BeaconConfig().EffectiveBalanceIncrement
	for _, stake := range []*uint64{&out.prevSourceStake, &out.prevTargetStake, &out.prevHeadStake, &out.currTargetStake} {
		if *stake < increment {
			*stake = increment
		}
	}
	return out, nil
}

func (e *epochParticipation) processAttestations(s *state.CachingBeaconState, attestations *solid.ListSSZ[*cltypes.PendingAttestation], epoch uint64, previous bool) error {
	if attestations.Len() == 0 {
		return nil
	}
	sourceFlag, targetFlag, headFlag := flagCurrSourceAttester, flagCurrTargetAttester, flagCurrHeadAttester
	if previous {
		sourceFlag, targetFlag, headFlag = flagPrevSourceAttester, flagPrevTargetAttester, flagPrevHeadAttester
	}
	targetRoot, err := s.GetBlockRoot(epoch)
	if err != nil {
		return err
	}

	for _, attestation := range attestations.Elements() {
		data := attestation.Data
		headRoot, err := s.GetBlockRootAtSlot(data.Slot)
		if err != nil {
			return err
		}
		votedTarget := data.Target.Root == targetRoot
		votedHead := data.BeaconBlockRoot == headRoot

		participants, err := s.GetAttestingIndicies(data, attestation.AggregationBits, false)
		if err != nil {
			return err
		}
		for _, index := range participants {
			status := &e.statuses[index]
			if previous && (!status.has(sourceFlag) || attestation.InclusionDelay < status.inclusionDelay) {
				status.inclusionDelay = attestation.InclusionDelay
				status.proposerIndex = attestation.ProposerIndex
			}
			status.flags |= sourceFlag
			// head votes only count on top of a target vote
			if votedTarget {
				status.flags |= targetFlag
				if votedHead {
					status.flags |= headFlag
				}
			}
		}
	}
	return nil
}
