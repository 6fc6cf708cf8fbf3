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

// Fork data, contains if we were on bellatrix/alteir/phase0 and transition epoch.
type Fork struct {
	PreviousVersion [4]byte
	CurrentVersion  [4]byte
	Epoch           uint64
}

func (f *Fork) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, f.PreviousVersion[:], f.CurrentVersion[:], f.Epoch)
}

func (f *Fork) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, f.PreviousVersion[:], f.CurrentVersion[:], &f.Epoch)
}

func (*Fork) EncodingSizeSSZ() int { return 16 }

func (*Fork) Static() bool { return true }

func (f *Fork) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(f.PreviousVersion[:], f.CurrentVersion[:], f.Epoch)
}

// ForkData is the container hashed to derive a fork digest and signature domains.
type ForkData struct {
	CurrentVersion        [4]byte
	GenesisValidatorsRoot [32]byte
}

func (f *ForkData) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(f.CurrentVersion[:], f.GenesisValidatorsRoot)
}

// SigningData is the container whose root is signed: object root plus domain.
type SigningData struct {
	ObjectRoot [32]byte
	Domain     [32]byte
}

func (s *SigningData) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(s.ObjectRoot, s.Domain)
}
