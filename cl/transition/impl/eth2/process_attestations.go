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
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
)

// ProcessAttestations validates every attestation of a block, verifies their signatures in
// parallel and only then records them as pending attestations.
func (I *Impl) ProcessAttestations(s *state.CachingBeaconState, attestations *solid.ListSSZ[*cltypes.Attestation]) error {
	indexedAttestations := make([]*cltypes.IndexedAttestation, attestations.Len())
	for i, attestation := range attestations.Elements() {
		indexed, err := validateAttestation(s, attestation)
		if err != nil {
			return fmt.Errorf("attestation %d: %w", i, err)
		}
		indexedAttestations[i] = indexed
	}
	if I.FullValidation {
		if err := verifyAttestationSignatures(s, indexedAttestations); err != nil {
			return err
		}
	}

	proposerIndex, err := s.GetBeaconProposerIndex()
	if err != nil {
		return err
	}
	currentEpoch := state.Epoch(s)
	for _, attestation := range attestations.Elements() {
		data := *attestation.Data
		pendingAttestation := &cltypes.PendingAttestation{
			AggregationBits: attestation.AggregationBits.Copy(),
			Data:            &data,
			InclusionDelay:  s.Slot() - attestation.Data.Slot,
			ProposerIndex:   proposerIndex,
		}
		if attestation.Data.Target.Epoch == currentEpoch {
			s.AddCurrentEpochAttestation(pendingAttestation)
		} else {
			s.AddPreviousEpochAttestation(pendingAttestation)
		}
	}
	return nil
}

// validateAttestation runs every check but the signature one and returns the indexed form of attestation.
func validateAttestation(s *state.CachingBeaconState, attestation *cltypes.Attestation) (*cltypes.IndexedAttestation, error) {
	data := attestation.Data
	beaconConfig := s.BeaconConfig()
	currentEpoch := state.Epoch(s)
	previousEpoch := state.PreviousEpoch(s)
	stateSlot := s.Slot()

	if data.CommitteeIndex >= s.GetCommitteeCountPerSlot(data.Target.Epoch) {
		return nil, fmt.Errorf("%w: %d", state.ErrCommitteeIndexOutOfRange, data.CommitteeIndex)
	}
	if data.Target.Epoch != currentEpoch && data.Target.Epoch != previousEpoch {
		return nil, fmt.Errorf("%w: target %d, current epoch %d", ErrInvalidTargetEpoch, data.Target.Epoch, currentEpoch)
	}
	if data.Target.Epoch != state.GetEpochAtSlot(beaconConfig, data.Slot) {
		return nil, fmt.Errorf("%w: target %d does not contain slot %d", ErrInvalidTargetEpoch, data.Target.Epoch, data.Slot)
	}
	if data.Slot+beaconConfig.MinAttestationInclusionDelay > stateSlot || stateSlot > data.Slot+beaconConfig.SlotsPerEpoch {
		return nil, fmt.Errorf("%w: attestation slot %d, state slot %d", ErrInclusionWindow, data.Slot, stateSlot)
	}

	justified := s.PreviousJustifiedCheckpoint()
	if data.Target.Epoch == currentEpoch {
		justified = s.CurrentJustifiedCheckpoint()
	}
	if data.Source != justified {
		return nil, fmt.Errorf("%w: source epoch %d, justified epoch %d", ErrStaleCheckpoint, data.Source.Epoch, justified.Epoch)
	}

	attestingIndicies, err := s.GetAttestingIndicies(data, attestation.AggregationBits, true)
	if err != nil {
		return nil, err
	}
	indexed := state.GetIndexedAttestation(attestation, attestingIndicies)
	if err := s.IsValidIndexedAttestation(indexed, false); err != nil {
		return nil, err
	}
	return indexed, nil
}

// verifyAttestationSignatures checks the aggregate signatures of a block's attestations in one
// batch, then one by one and concurrently when the batch fails. Workers only read the state.
func verifyAttestationSignatures(s *state.CachingBeaconState, indexedAttestations []*cltypes.IndexedAttestation) error {
	type signatureSet struct {
		signature   [96]byte
		signingRoot [32]byte
		publicKey   []byte
	}
	sets := make([]signatureSet, len(indexedAttestations))
	for i, indexed := range indexedAttestations {
		aggregatedPubkey, signingRoot, err := s.IndexedAttestationSignatureSet(indexed)
		if err != nil {
			return fmt.Errorf("attestation %d: %w", i, err)
		}
		sets[i] = signatureSet{signature: indexed.Signature, signingRoot: signingRoot, publicKey: aggregatedPubkey}
	}

	start := time.Now()
	if len(sets) == 0 {
		return nil
	}
	sigs, msgs, pubKeys := make([][]byte, len(sets)), make([][]byte, len(sets)), make([][]byte, len(sets))
	for i := range sets {
		sigs[i], msgs[i], pubKeys[i] = sets[i].signature[:], sets[i].signingRoot[:], sets[i].publicKey
	}
	if valid, err := bls.VerifyMultipleSignatures(sigs, msgs, pubKeys); err == nil && valid {
		monitor.ObserveBatchVerificationThroughput(time.Since(start), len(sets))
		return nil
	}

	// the batch failed, find the offending attestation
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range sets {
		i := i
		set := &sets[i]
		g.Go(func() error {
			valid, err := bls.Verify(set.signature[:], set.signingRoot[:], set.publicKey)
			if err != nil || !valid {
				return fmt.Errorf("attestation %d: %w", i, ErrInvalidSignature)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	monitor.ObserveBatchVerificationThroughput(time.Since(start), len(sets))
	return nil
}
