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

package cltypes

import (
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

// MaxValidatorsPerCommittee bounds the aggregation bitlists and indexed attestation lists.
const MaxValidatorsPerCommittee = 2048

type AttestationData struct {
	Slot            uint64
	CommitteeIndex  uint64
	BeaconBlockRoot [32]byte
	Source          Checkpoint
	Target          Checkpoint
}

func (a *AttestationData) Equal(other *AttestationData) bool {
	return *a == *other
}

func (a *AttestationData) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, a.Slot, a.CommitteeIndex, a.BeaconBlockRoot[:], &a.Source, &a.Target)
}

func (a *AttestationData) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, &a.Slot, &a.CommitteeIndex, a.BeaconBlockRoot[:], &a.Source, &a.Target)
}

func (*AttestationData) EncodingSizeSSZ() int { return 128 }

func (*AttestationData) Static() bool { return true }

func (a *AttestationData) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(a.Slot, a.CommitteeIndex, a.BeaconBlockRoot, &a.Source, &a.Target)
}

// IsSlashableAttestationData checks for a double vote or a surround vote.
func IsSlashableAttestationData(d1, d2 *AttestationData) bool {
	doubleVote := !d1.Equal(d2) && d1.Target.Epoch == d2.Target.Epoch
	surroundVote := d1.Source.Epoch < d2.Source.Epoch && d2.Target.Epoch < d1.Target.Epoch
	return doubleVote || surroundVote
}

/*
 * Attestation is the vote of a committee, aggregation bits mark the members who signed.
 */
type Attestation struct {
	AggregationBits *solid.BitList
	Data            *AttestationData
	Signature       [96]byte
}

func NewAttestation() *Attestation {
	return &Attestation{
		AggregationBits: solid.NewBitList(0, MaxValidatorsPerCommittee),
		Data:            &AttestationData{},
	}
}

func (a *Attestation) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, a.AggregationBits, a.Data, a.Signature[:])
}

func (a *Attestation) DecodeSSZ(buf []byte, version int) error {
	if a.AggregationBits == nil {
		a.AggregationBits = solid.NewBitList(0, MaxValidatorsPerCommittee)
	}
	if a.Data == nil {
		a.Data = &AttestationData{}
	}
	return ssz.UnmarshalSSZ(buf, version, a.AggregationBits, a.Data, a.Signature[:])
}

func (a *Attestation) EncodingSizeSSZ() int {
	return 4 + a.AggregationBits.EncodingSizeSSZ() + 128 + 96
}

func (*Attestation) Static() bool { return false }

func (a *Attestation) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(a.AggregationBits, a.Data, a.Signature[:])
}

/*
 * IndexedAttestation are attestantions sets to prove that someone misbehaved.
 */
type IndexedAttestation struct {
	AttestingIndices *solid.Uint64ListSSZ
	Data             *AttestationData
	Signature        [96]byte
}

func NewIndexedAttestation() *IndexedAttestation {
	return &IndexedAttestation{
		AttestingIndices: solid.NewUint64ListSSZ(MaxValidatorsPerCommittee),
		Data:             &AttestationData{},
	}
}

func (i *IndexedAttestation) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, i.AttestingIndices, i.Data, i.Signature[:])
}

func (i *IndexedAttestation) DecodeSSZ(buf []byte, version int) error {
	if i.AttestingIndices == nil {
		i.AttestingIndices = solid.NewUint64ListSSZ(MaxValidatorsPerCommittee)
	}
	if i.Data == nil {
		i.Data = &AttestationData{}
	}
	return ssz.UnmarshalSSZ(buf, version, i.AttestingIndices, i.Data, i.Signature[:])
}

func (i *IndexedAttestation) EncodingSizeSSZ() int {
	return 4 + i.AttestingIndices.EncodingSizeSSZ() + 128 + 96
}

func (*IndexedAttestation) Static() bool { return false }

func (i *IndexedAttestation) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(i.AttestingIndices, i.Data, i.Signature[:])
}

// PendingAttestation is the record an included attestation leaves in the state until epoch processing.
type PendingAttestation struct {
	AggregationBits *solid.BitList
	Data            *AttestationData
	InclusionDelay  uint64
	ProposerIndex   uint64
}

func NewPendingAttestation() *PendingAttestation {
	return &PendingAttestation{
		AggregationBits: solid.NewBitList(0, MaxValidatorsPerCommittee),
		Data:            &AttestationData{},
	}
}

func (p *PendingAttestation) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, p.AggregationBits, p.Data, p.InclusionDelay, p.ProposerIndex)
}

func (p *PendingAttestation) DecodeSSZ(buf []byte, version int) error {
	if p.AggregationBits == nil {
		p.AggregationBits = solid.NewBitList(0, MaxValidatorsPerCommittee)
	}
	if p.Data == nil {
		p.Data = &AttestationData{}
	}
	return ssz.UnmarshalSSZ(buf, version, p.AggregationBits, p.Data, &p.InclusionDelay, &p.ProposerIndex)
}

func (p *PendingAttestation) EncodingSizeSSZ() int {
	return 4 + p.AggregationBits.EncodingSizeSSZ() + 128 + 16
}

func (*PendingAttestation) Static() bool { return false }

func (p *PendingAttestation) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(p.AggregationBits, p.Data, p.InclusionDelay, p.ProposerIndex)
}
