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

package cltypes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
)

func TestCheckpointRoot(t *testing.T) {
	root, err := (&cltypes.Checkpoint{}).HashSSZ()
	require.NoError(t, err)
	require.Equal(t, merkle_tree.ZeroHashes[1], root)
}

func TestJustificationBits(t *testing.T) {
	bits := cltypes.JustificationBits{true, false, true, true}
	require.Equal(t, byte(0b1101), bits.Byte())
	require.True(t, bits.CheckRange(2, 4))
	require.False(t, bits.CheckRange(0, 3))

	shifted := bits.Shift()
	require.Equal(t, cltypes.JustificationBits{false, true, false, true}, shifted)

	var decoded cltypes.JustificationBits
	require.NoError(t, decoded.DecodeSSZ([]byte{0b1101}, 0))
	require.Equal(t, bits, decoded)
	require.ErrorIs(t, decoded.DecodeSSZ([]byte{0x10}, 0), cltypes.ErrBadJustificationBits)
}

func TestIsSlashableAttestationData(t *testing.T) {
	base := cltypes.AttestationData{
		Slot:   10,
		Source: cltypes.Checkpoint{Epoch: 1},
		Target: cltypes.Checkpoint{Epoch: 2},
	}
	tests := []struct {
		name   string
		modify func(d *cltypes.AttestationData)
		want   bool
	}{
		{"identical", func(d *cltypes.AttestationData) {}, false},
		{"double vote", func(d *cltypes.AttestationData) { d.BeaconBlockRoot = [32]byte{1} }, true},
		{"different target epoch", func(d *cltypes.AttestationData) { d.Target.Epoch = 3 }, false},
		{"surrounding", func(d *cltypes.AttestationData) { d.Source.Epoch = 0; d.Target.Epoch = 3 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.modify(&other)
			require.Equal(t, tt.want, cltypes.IsSlashableAttestationData(&base, &other))
		})
	}
	// surround vote is only slashable with the surrounding attestation first
	surrounding := base
	surrounding.Source.Epoch = 0
	surrounding.Target.Epoch = 3
	require.True(t, cltypes.IsSlashableAttestationData(&surrounding, &base))
}

func TestValidatorStatus(t *testing.T) {
	v := &cltypes.Validator{ActivationEpoch: 2, ExitEpoch: 10, WithdrawableEpoch: 20}
	require.False(t, v.Active(1))
	require.True(t, v.Active(2))
	require.False(t, v.Active(10))
	require.True(t, v.IsSlashable(15))
	require.False(t, v.IsSlashable(20))
	v.Slashed = true
	require.False(t, v.IsSlashable(15))
}

func TestBeaconBlockRoundTrip(t *testing.T) {
	cfg := &clparams.MinimalBeaconConfig
	block := cltypes.NewSignedBeaconBlock(cfg)
	block.Block.Slot = 9
	block.Block.ProposerIndex = 3
	block.Block.ParentRoot = [32]byte{1}
	block.Block.Body.Graffiti = [32]byte{'g'}
	block.Block.Body.Eth1Data.DepositCount = 4

	att := cltypes.NewAttestation()
	att.AggregationBits = solid.NewBitList(5, cltypes.MaxValidatorsPerCommittee)
	att.AggregationBits.SetBitAt(2, true)
	att.Data.Slot = 8
	att.Data.Target = cltypes.Checkpoint{Epoch: 1, Root: [32]byte{7}}
	block.Block.Body.Attestations.Append(att)

	slashing := cltypes.NewAttesterSlashing()
	slashing.Attestation1.AttestingIndices.Append(1)
	slashing.Attestation1.AttestingIndices.Append(4)
	slashing.Attestation2.AttestingIndices.Append(4)
	block.Block.Body.AttesterSlashings.Append(slashing)

	deposit := cltypes.NewDeposit()
	deposit.Data.Amount = 32_000_000_000
	deposit.Proof.Set(32, [32]byte{5})
	block.Block.Body.Deposits.Append(deposit)

	exit := cltypes.NewSignedVoluntaryExit()
	exit.VoluntaryExit.ValidatorIndex = 6
	block.Block.Body.VoluntaryExits.Append(exit)

	enc, err := block.EncodeSSZ(nil)
	require.NoError(t, err)
	require.Len(t, enc, block.EncodingSizeSSZ())

	decoded := cltypes.NewSignedBeaconBlock(cfg)
	require.NoError(t, decoded.DecodeSSZ(enc, int(clparams.Phase0Version)))

	expectedRoot, err := block.HashSSZ()
	require.NoError(t, err)
	root, err := decoded.HashSSZ()
	require.NoError(t, err)
	require.Equal(t, expectedRoot, root)

	require.Equal(t, 1, decoded.Block.Body.Attestations.Len())
	require.True(t, decoded.Block.Body.Attestations.Get(0).AggregationBits.GetBitAt(2))
	require.Equal(t, 5, decoded.Block.Body.Attestations.Get(0).AggregationBits.Len())
	require.Equal(t, []uint64{1, 4}, decoded.Block.Body.AttesterSlashings.Get(0).Attestation1.AttestingIndices.Elements())
	require.Equal(t, [32]byte{5}, decoded.Block.Body.Deposits.Get(0).Proof.Get(32))
	require.Equal(t, uint64(6), decoded.Block.Body.VoluntaryExits.Get(0).VoluntaryExit.ValidatorIndex)

	header, err := decoded.Block.Header()
	require.NoError(t, err)
	bodyRoot, err := block.Block.Body.HashSSZ()
	require.NoError(t, err)
	require.Equal(t, bodyRoot, header.BodyRoot)
	headerRoot, err := header.HashSSZ()
	require.NoError(t, err)
	blockRoot, err := block.Block.HashSSZ()
	require.NoError(t, err)
	require.Equal(t, blockRoot, headerRoot)
}

func TestBeaconBodyRejectsTooManyOperations(t *testing.T) {
	cfg := &clparams.MinimalBeaconConfig
	body := cltypes.NewBeaconBody(cfg)
	for i := 0; i < 3; i++ {
		body.AttesterSlashings.Append(cltypes.NewAttesterSlashing())
	}
	enc, err := body.EncodeSSZ(nil)
	require.NoError(t, err)
	require.Error(t, cltypes.NewBeaconBody(cfg).DecodeSSZ(enc, 0))
}
