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

/*
 * BeaconBlockHeader is the message we validate in the lightclient.
 * It contains the hash of the block body, and state root data.
 */
type BeaconBlockHeader struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	Root          [32]byte
	BodyRoot      [32]byte
}

func (b *BeaconBlockHeader) Copy() *BeaconBlockHeader {
	cpy := *b
	return &cpy
}

func (b *BeaconBlockHeader) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, b.Slot, b.ProposerIndex, b.ParentRoot[:], b.Root[:], b.BodyRoot[:])
}

func (b *BeaconBlockHeader) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, &b.Slot, &b.ProposerIndex, b.ParentRoot[:], b.Root[:], b.BodyRoot[:])
}

func (b *BeaconBlockHeader) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(b.Slot, b.ProposerIndex, b.ParentRoot, b.Root, b.BodyRoot)
}

func (*BeaconBlockHeader) EncodingSizeSSZ() int { return 112 }

func (*BeaconBlockHeader) Static() bool { return true }

/*
 * SignedBeaconBlockHeader is a beacon block header + validator signature.
 */
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader
	Signature [96]byte
}

func NewSignedBeaconBlockHeader() *SignedBeaconBlockHeader {
	return &SignedBeaconBlockHeader{Header: &BeaconBlockHeader{}}
}

func (b *SignedBeaconBlockHeader) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, b.Header, b.Signature[:])
}

func (b *SignedBeaconBlockHeader) DecodeSSZ(buf []byte, version int) error {
	if b.Header == nil {
		b.Header = &BeaconBlockHeader{}
	}
	return ssz.UnmarshalSSZ(buf, version, b.Header, b.Signature[:])
}

func (b *SignedBeaconBlockHeader) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(b.Header, b.Signature[:])
}

func (*SignedBeaconBlockHeader) EncodingSizeSSZ() int { return 208 }

func (*SignedBeaconBlockHeader) Static() bool { return true }
