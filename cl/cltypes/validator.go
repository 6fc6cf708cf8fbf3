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

const (
	DepositProofLength = 33
)

type DepositData struct {
	PubKey                [48]byte
	WithdrawalCredentials [32]byte // 32 byte
	Amount                uint64
	Signature             [96]byte
}

func (d *DepositData) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, d.PubKey[:], d.WithdrawalCredentials[:], d.Amount, d.Signature[:])
}

func (d *DepositData) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, d.PubKey[:], d.WithdrawalCredentials[:], &d.Amount, d.Signature[:])
}

func (*DepositData) EncodingSizeSSZ() int { return 184 }

func (*DepositData) Static() bool { return true }

func (d *DepositData) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(d.PubKey[:], d.WithdrawalCredentials, d.Amount, d.Signature[:])
}

// MessageHash is the root of the DepositMessage, the deposit data without its signature.
func (d *DepositData) MessageHash() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(d.PubKey[:], d.WithdrawalCredentials, d.Amount)
}

type Deposit struct {
	// Merkle proof is used for deposits
	Proof *solid.HashVectorSSZ // 33 X 32 size.
	Data  *DepositData
}

func NewDeposit() *Deposit {
	return &Deposit{Proof: solid.NewHashVector(DepositProofLength), Data: &DepositData{}}
}

func (d *Deposit) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, d.Proof, d.Data)
}

func (d *Deposit) DecodeSSZ(buf []byte, version int) error {
	if d.Proof == nil {
		d.Proof = solid.NewHashVector(DepositProofLength)
	}
	if d.Data == nil {
		d.Data = new(DepositData)
	}
	return ssz.UnmarshalSSZ(buf, version, d.Proof, d.Data)
}

func (*Deposit) EncodingSizeSSZ() int { return 1240 }

func (*Deposit) Static() bool { return true }

func (d *Deposit) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(d.Proof, d.Data)
}

type VoluntaryExit struct {
	Epoch          uint64
	ValidatorIndex uint64
}

func (e *VoluntaryExit) EncodeSSZ(buf []byte) ([]byte, error) {
	return ssz.MarshalSSZ(buf, e.Epoch, e.ValidatorIndex)
}

func (e *VoluntaryExit) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, &e.Epoch, &e.ValidatorIndex)
}

func (e *VoluntaryExit) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(e.Epoch, e.ValidatorIndex)
}

func (*VoluntaryExit) EncodingSizeSSZ() int { return 16 }

func (*VoluntaryExit) Static() bool { return true }

type SignedVoluntaryExit struct {
	VoluntaryExit *VoluntaryExit
	Signature     [96]byte
}

func NewSignedVoluntaryExit() *SignedVoluntaryExit {
	return &SignedVoluntaryExit{VoluntaryExit: &VoluntaryExit{}}
}

func (e *SignedVoluntaryExit) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, e.VoluntaryExit, e.Signature[:])
}

func (e *SignedVoluntaryExit) DecodeSSZ(buf []byte, version int) error {
	if e.VoluntaryExit == nil {
		e.VoluntaryExit = new(VoluntaryExit)
	}
	return ssz.UnmarshalSSZ(buf, version, e.VoluntaryExit, e.Signature[:])
}

func (e *SignedVoluntaryExit) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(e.VoluntaryExit, e.Signature[:])
}

func (*SignedVoluntaryExit) EncodingSizeSSZ() int { return 112 }

func (*SignedVoluntaryExit) Static() bool { return true }

// Validator is a registry entry. Identity fields never change once created.
type Validator struct {
	PublicKey                  [48]byte
	WithdrawalCredentials      [32]byte
	EffectiveBalance           uint64
	Slashed                    bool
	ActivationEligibilityEpoch uint64
	ActivationEpoch            uint64
	ExitEpoch                  uint64
	WithdrawableEpoch          uint64
}

func (v *Validator) EncodeSSZ(dst []byte) ([]byte, error) {
	return ssz.MarshalSSZ(dst, v.PublicKey[:], v.WithdrawalCredentials[:], v.EffectiveBalance, v.Slashed,
		v.ActivationEligibilityEpoch, v.ActivationEpoch, v.ExitEpoch, v.WithdrawableEpoch)
}

func (v *Validator) DecodeSSZ(buf []byte, version int) error {
	return ssz.UnmarshalSSZ(buf, version, v.PublicKey[:], v.WithdrawalCredentials[:], &v.EffectiveBalance, &v.Slashed,
		&v.ActivationEligibilityEpoch, &v.ActivationEpoch, &v.ExitEpoch, &v.WithdrawableEpoch)
}

func (*Validator) EncodingSizeSSZ() int { return 121 }

func (*Validator) Static() bool { return true }

func (v *Validator) HashSSZ() ([32]byte, error) {
	return merkle_tree.HashTreeRoot(v.PublicKey[:], v.WithdrawalCredentials, v.EffectiveBalance, v.Slashed,
		v.ActivationEligibilityEpoch, v.ActivationEpoch, v.ExitEpoch, v.WithdrawableEpoch)
}

func (v *Validator) Copy() *Validator {
	cpy := *v
	return &cpy
}

// Active returns if validator is active for given epoch
func (v *Validator) Active(epoch uint64) bool {
	return v.ActivationEpoch <= epoch && epoch < v.ExitEpoch
}

func (v *Validator) IsSlashable(epoch uint64) bool {
	return !v.Slashed && (v.ActivationEpoch <= epoch) && (epoch < v.WithdrawableEpoch)
}
