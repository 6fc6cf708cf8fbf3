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
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

type ProposerSlashing struct {
	Header1 *SignedBeaconBlockHeader
	Header2 *SignedBeaconBlockHeader
}

func NewProposerSlashing() *ProposerSlashing {
	return &ProposerSlashing{Header1: NewSignedBeaconBlockHeader(), Header2: NewSignedBeaconBlockHeader()}
}

func (p *ProposerSlashing) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, p.Header1, p.Header2)
}

func (p *ProposerSlashing) DecodeSSZ(buf []byte, version int) error {
	if p.Header1 == nil {
		p.Header1 = NewSignedBeaconBlockHeader()
	}
	if p.Header2 == nil {
		p.Header2 = NewSignedBeaconBlockHeader()
	}
	return ssz.UnmarshalSSZ(buf, version, p.Header1, p.Header2)
}

func (*ProposerSlashing) EncodingSizeSSZ() int { return 416 }

func (*ProposerSlashing) Static() bool { return true }

func (p *ProposerSlashing) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(p.Header1, p.Header2)
}

type AttesterSlashing struct {
	Attestation1 *IndexedAttestation
	Attestation2 *IndexedAttestation
}

func NewAttesterSlashing() *AttesterSlashing {
	return &AttesterSlashing{Attestation1: NewIndexedAttestation(), Attestation2: NewIndexedAttestation()}
}

func (a *AttesterSlashing) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, a.Attestation1, a.Attestation2)
}

func (a *AttesterSlashing) DecodeSSZ(buf []byte, version int) error {
	if a.Attestation1 == nil {
		a.Attestation1 = NewIndexedAttestation()
	}
	if a.Attestation2 == nil {
		a.Attestation2 = NewIndexedAttestation()
	}
	return ssz.UnmarshalSSZ(buf, version, a.Attestation1, a.Attestation2)
}

func (a *AttesterSlashing) EncodingSizeSSZ() int {
	return 8 + a.Attestation1.EncodingSizeSSZ() + a.Attestation2.EncodingSizeSSZ()
}

func (*AttesterSlashing) Static() bool { return false }

func (a *AttesterSlashing) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(a.Attestation1, a.Attestation2)
}
