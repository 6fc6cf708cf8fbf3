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
	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

type SignedBeaconBlock struct {
	Block     *BeaconBlock
	Signature [96]byte
}

type BeaconBlock struct {
	Slot          uint64
	ProposerIndex uint64
	ParentRoot    [32]byte
	StateRoot     [32]byte
	Body          *BeaconBody
}

type BeaconBody struct {
	RandaoReveal      [96]byte
	Eth1Data          *Eth1Data
	Graffiti          [32]byte
	ProposerSlashings *solid.ListSSZ[*ProposerSlashing]
	AttesterSlashings *solid.ListSSZ[*AttesterSlashing]
	Attestations      *solid.ListSSZ[*Attestation]
	Deposits          *solid.ListSSZ[*Deposit]
	VoluntaryExits    *solid.ListSSZ[*SignedVoluntaryExit]
}

func NewSignedBeaconBlock(beaconCfg *clparams.BeaconChainConfig) *SignedBeaconBlock {
	return &SignedBeaconBlock{Block: NewBeaconBlock(beaconCfg)}
}

func NewBeaconBlock(beaconCfg *clparams.BeaconChainConfig) *BeaconBlock {
	return &BeaconBlock{Body: NewBeaconBody(beaconCfg)}
}

func NewBeaconBody(beaconCfg *clparams.BeaconChainConfig) *BeaconBody {
	return &BeaconBody{
		Eth1Data:          &Eth1Data{},
		ProposerSlashings: solid.NewListSSZ(int(beaconCfg.MaxProposerSlashings), NewProposerSlashing),
		AttesterSlashings: solid.NewListSSZ(int(beaconCfg.MaxAttesterSlashings), NewAttesterSlashing),
		Attestations:      solid.NewListSSZ(int(beaconCfg.MaxAttestations), NewAttestation),
		Deposits:          solid.NewListSSZ(int(beaconCfg.MaxDeposits), NewDeposit),
		VoluntaryExits:    solid.NewListSSZ(int(beaconCfg.MaxVoluntaryExits), NewSignedVoluntaryExit),
	}
}

func (b *BeaconBody) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, b.RandaoReveal[:], b.Eth1Data, b.Graffiti[:], b.ProposerSlashings,
		b.AttesterSlashings, b.Attestations, b.Deposits, b.VoluntaryExits)
}

func (b *BeaconBody) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, b.RandaoReveal[:], b.Eth1Data, b.Graffiti[:], b.ProposerSlashings,
		b.AttesterSlashings, b.Attestations, b.Deposits, b.VoluntaryExits)
}

func (b *BeaconBody) EncodingSizeSSZ() int {
	return 96 + 72 + 32 + 5*4 + b.ProposerSlashings.EncodingSizeSSZ() + b.AttesterSlashings.EncodingSizeSSZ() +
		b.Attestations.EncodingSizeSSZ() + b.Deposits.EncodingSizeSSZ() + b.VoluntaryExits.EncodingSizeSSZ()
}

func (*BeaconBody) Static() bool { return false }

func (b *BeaconBody) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(b.RandaoReveal[:], b.Eth1Data, b.Graffiti, b.ProposerSlashings,
		b.AttesterSlashings, b.Attestations, b.Deposits, b.VoluntaryExits)
}

func (b *BeaconBlock) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, b.Slot, b.ProposerIndex, b.ParentRoot[:], b.StateRoot[:], b.Body)
}

func (b *BeaconBlock) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, &b.Slot, &b.ProposerIndex, b.ParentRoot[:], b.StateRoot[:], b.Body)
}

func (b *BeaconBlock) EncodingSizeSSZ() int {
	return 8 + 8 + 32 + 32 + 4 + b.Body.EncodingSizeSSZ()
}

func (*BeaconBlock) Static() bool { return false }

func (b *BeaconBlock) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(b.Slot, b.ProposerIndex, b.ParentRoot, b.StateRoot, b.Body)
}

// Header returns the block header of the block, with the body root filled in.
func (b *BeaconBlock) Header() (*BeaconBlockHeader, error) {
	bodyRoot, err := b.Body.HashSSZ()
	if err != nil {
		return nil, err
	}
	return &BeaconBlockHeader{
		Slot:          b.Slot,
		ProposerIndex: b.ProposerIndex,
		ParentRoot:    b.ParentRoot,
		Root:          b.StateRoot,
		BodyRoot:      bodyRoot,
	}, nil
}

func (b *SignedBeaconBlock) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, b.Block, b.Signature[:])
}

func (b *SignedBeaconBlock) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, b.Block, b.Signature[:])
}

func (b *SignedBeaconBlock) EncodingSizeSSZ() int {
	return 4 + 96 + b.Block.EncodingSizeSSZ()
}

func (*SignedBeaconBlock) Static() bool { return false }

func (b *SignedBeaconBlock) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(b.Block, b.Signature[:])
}
