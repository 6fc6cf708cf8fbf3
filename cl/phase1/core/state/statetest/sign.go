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

package statetest

import (
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/fork"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
)

// Sign signs obj under the domain of s for domainType at epoch.
func Sign(s *state.CachingBeaconState, sk *bls.SecretKey, domainType [4]byte, epoch uint64, obj ssz.HashableSSZ) ([96]byte, error) {
	return AggregateSign(s, []*bls.SecretKey{sk}, domainType, epoch, obj)
}

// AggregateSign returns the aggregate of every key's signature over obj.
func AggregateSign(s *state.CachingBeaconState, keys []*bls.SecretKey, domainType [4]byte, epoch uint64, obj ssz.HashableSSZ) (sig [96]byte, err error) {
	domain, err := s.GetDomain(domainType, epoch)
	if err != nil {
		return sig, err
	}
	signingRoot, err := fork.ComputeSigningRoot(obj, domain)
	if err != nil {
		return sig, err
	}
	sigs := make([][]byte, len(keys))
	for i, sk := range keys {
		sigs[i] = sk.Sign(signingRoot[:])
	}
	aggregate, err := bls.AggregateSignatures(sigs)
	if err != nil {
		return sig, err
	}
	copy(sig[:], aggregate)
	return sig, nil
}

// AttestationData is the vote an honest validator of slot casts once s has moved past it.
func AttestationData(s *state.CachingBeaconState, slot, committeeIndex uint64) (*cltypes.AttestationData, error) {
	targetEpoch := state.GetEpochAtSlot(s.BeaconConfig(), slot)
	headRoot, err := s.GetBlockRootAtSlot(slot)
	if err != nil {
		return nil, err
	}
	targetRoot, err := s.GetBlockRoot(targetEpoch)
	if err != nil {
		return nil, err
	}
	source := s.PreviousJustifiedCheckpoint()
	if targetEpoch == state.Epoch(s) {
		source = s.CurrentJustifiedCheckpoint()
	}
	return &cltypes.AttestationData{
		Slot:            slot,
		CommitteeIndex:  committeeIndex,
		BeaconBlockRoot: headRoot,
		Source:          source,
		Target:          cltypes.Checkpoint{Epoch: targetEpoch, Root: targetRoot},
	}, nil
}

// Attestation returns the attestation of the whole committee at slot and committeeIndex, aggregated
// from keys indexed by validator index.
func Attestation(s *state.CachingBeaconState, keys []*bls.SecretKey, slot, committeeIndex uint64) (*cltypes.Attestation, error) {
	data, err := AttestationData(s, slot, committeeIndex)
	if err != nil {
		return nil, err
	}
	committee, err := s.GetBeaconCommitee(slot, committeeIndex)
	if err != nil {
		return nil, err
	}
	bits := solid.NewBitList(len(committee), cltypes.MaxValidatorsPerCommittee)
	signers := make([]*bls.SecretKey, len(committee))
	for i, index := range committee {
		bits.SetBitAt(i, true)
		signers[i] = keys[index]
	}
	attestation := &cltypes.Attestation{AggregationBits: bits, Data: data}
	if attestation.Signature, err = AggregateSign(s, signers, s.BeaconConfig().DomainBeaconAttester, data.Target.Epoch, data); err != nil {
		return nil, err
	}
	return attestation, nil
}
