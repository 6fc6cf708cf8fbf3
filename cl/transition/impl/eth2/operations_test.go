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

package eth2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/statetest"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/machine"
	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
)

func (c *chain) proposerSlashing(s *state.CachingBeaconState, index uint64, bodyRoots ...[32]byte) *cltypes.ProposerSlashing {
	c.t.Helper()
	slashing := cltypes.NewProposerSlashing()
	for i, signed := range []*cltypes.SignedBeaconBlockHeader{slashing.Header1, slashing.Header2} {
		signed.Header = &cltypes.BeaconBlockHeader{Slot: s.Slot(), ProposerIndex: index, BodyRoot: bodyRoots[i]}
		signed.Signature = c.sign(s, index, c.cfg.DomainBeaconProposer, state.Epoch(s), signed.Header)
	}
	return slashing
}

func TestProcessProposerSlashing(t *testing.T) {
	c := newChain(t)
	s := c.slotState(1)
	proposer, err := s.GetBeaconProposerIndex()
	require.NoError(t, err)
	victim := (proposer + 1) % genesisValidators
	impl := eth2.New(true)

	require.ErrorIs(t, impl.ProcessProposerSlashing(s, c.proposerSlashing(s, victim, [32]byte{1}, [32]byte{1})), eth2.ErrInvalidProposerSlashing)

	forged := c.proposerSlashing(s, victim, [32]byte{1}, [32]byte{2})
	forged.Header2.Signature = forged.Header1.Signature
	require.ErrorIs(t, impl.ProcessProposerSlashing(s, forged), eth2.ErrInvalidSignature)
	require.False(t, c.validator(s, victim).Slashed)

	slashing := c.proposerSlashing(s, victim, [32]byte{1}, [32]byte{2})
	require.NoError(t, impl.ProcessProposerSlashing(s, slashing))

	v := c.validator(s, victim)
	require.True(t, v.Slashed)
	require.Equal(t, uint64(5), v.ExitEpoch)
	require.Equal(t, v.ExitEpoch+c.cfg.MinValidatorWithdrawabilityDelay, v.WithdrawableEpoch)
	require.Equal(t, c.cfg.MaxEffectiveBalance-c.cfg.MaxEffectiveBalance/c.cfg.MinSlashingPenaltyQuotient, c.balance(s, victim))
	require.Equal(t, c.cfg.MaxEffectiveBalance+c.cfg.MaxEffectiveBalance/c.cfg.WhistleBlowerRewardQuotient, c.balance(s, proposer))
	require.Equal(t, c.cfg.MaxEffectiveBalance, s.SlashingSegmentAt(0))

	require.ErrorIs(t, impl.ProcessProposerSlashing(s, slashing), eth2.ErrNotSlashable)
}

func (c *chain) indexedAttestation(s *state.CachingBeaconState, indices []uint64, data *cltypes.AttestationData) *cltypes.IndexedAttestation {
	c.t.Helper()
	signers := make([]*bls.SecretKey, len(indices))
	for i, index := range indices {
		signers[i] = c.keys[index]
	}
	sig, err := statetest.AggregateSign(s, signers, c.cfg.DomainBeaconAttester, data.Target.Epoch, data)
	require.NoError(c.t, err)
	return &cltypes.IndexedAttestation{
		AttestingIndices: solid.NewUint64ListSSZFromSlice(cltypes.MaxValidatorsPerCommittee, indices),
		Data:             data,
		Signature:        sig,
	}
}

func TestProcessAttesterSlashing(t *testing.T) {
	c := newChain(t)
	s := c.slotState(1)
	impl := eth2.New(true)
	vote := func(root byte) *cltypes.AttestationData {
		return &cltypes.AttestationData{Target: cltypes.Checkpoint{Root: [32]byte{root}}}
	}

	tests := []struct {
		name     string
		slashing func() *cltypes.AttesterSlashing
		err      error
	}{
		{
			name: "same vote twice",
			slashing: func() *cltypes.AttesterSlashing {
				return &cltypes.AttesterSlashing{
					Attestation1: c.indexedAttestation(s, []uint64{1, 2}, vote(1)),
					Attestation2: c.indexedAttestation(s, []uint64{1, 2}, vote(1)),
				}
			},
			err: eth2.ErrInvalidAttesterSlashing,
		},
		{
			name: "unsorted indices",
			slashing: func() *cltypes.AttesterSlashing {
				return &cltypes.AttesterSlashing{
					Attestation1: c.indexedAttestation(s, []uint64{2, 1}, vote(1)),
					Attestation2: c.indexedAttestation(s, []uint64{1, 2}, vote(2)),
				}
			},
			err: state.ErrUnsortedAttestingIndices,
		},
		{
			name: "forged signature",
			slashing: func() *cltypes.AttesterSlashing {
				forged := c.indexedAttestation(s, []uint64{1, 2}, vote(2))
				forged.Signature = c.indexedAttestation(s, []uint64{1, 2}, vote(1)).Signature
				return &cltypes.AttesterSlashing{
					Attestation1: c.indexedAttestation(s, []uint64{1, 2}, vote(1)),
					Attestation2: forged,
				}
			},
			err: state.ErrInvalidIndexedAttestationSignature,
		},
		{
			name: "disjoint attesters",
			slashing: func() *cltypes.AttesterSlashing {
				return &cltypes.AttesterSlashing{
					Attestation1: c.indexedAttestation(s, []uint64{1, 2}, vote(1)),
					Attestation2: c.indexedAttestation(s, []uint64{3, 4}, vote(2)),
				}
			},
			err: eth2.ErrNoSlashableIndices,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, impl.ProcessAttesterSlashing(s, tt.slashing()), tt.err)
		})
	}

	doubleVote := &cltypes.AttesterSlashing{
		Attestation1: c.indexedAttestation(s, []uint64{1, 2, 3, 4}, vote(1)),
		Attestation2: c.indexedAttestation(s, []uint64{2, 3, 4, 5}, vote(2)),
	}
	require.NoError(t, impl.ProcessAttesterSlashing(s, doubleVote))
	for index := uint64(0); index < 8; index++ {
		require.Equal(t, index >= 2 && index <= 4, c.validator(s, index).Slashed, "validator %d", index)
	}
	require.Equal(t, 3*c.cfg.MaxEffectiveBalance, s.SlashingSegmentAt(0))
	require.ErrorIs(t, impl.ProcessAttesterSlashing(s, doubleVote), eth2.ErrNoSlashableIndices)
}

func TestProcessDepositsInBlock(t *testing.T) {
	c := newChain(t)
	datas, err := statetest.GenesisDepositDatas(c.cfg, c.keys)
	require.NoError(t, err)
	keys, err := statetest.Keys(genesisValidators + 2)
	require.NoError(t, err)
	valid, err := statetest.DepositData(c.cfg, keys[genesisValidators], c.cfg.MaxEffectiveBalance)
	require.NoError(t, err)
	unproven, err := statetest.DepositData(c.cfg, keys[genesisValidators+1], c.cfg.MaxEffectiveBalance)
	require.NoError(t, err)
	unproven.Signature = valid.Signature

	tree, err := statetest.DepositTreeOf(c.cfg, append(datas, valid, unproven))
	require.NoError(t, err)
	root, err := tree.Root()
	require.NoError(t, err)
	c.s.SetEth1Data(&cltypes.Eth1Data{Root: root, DepositCount: tree.Len(), BlockHash: statetest.Eth1BlockHash})

	block := c.buildBlock(1, func(_ *state.CachingBeaconState, body *cltypes.BeaconBody) {
		for i, data := range []*cltypes.DepositData{valid, unproven} {
			deposit, err := statetest.DepositAt(tree, uint64(genesisValidators+i), data)
			require.NoError(t, err)
			body.Deposits.Append(deposit)
		}
	})
	require.NoError(t, machine.TransitionState(eth2.New(true), c.s, block))

	require.Equal(t, uint64(genesisValidators+2), c.s.Eth1DepositIndex())
	require.Equal(t, genesisValidators+1, c.s.ValidatorLength())
	index, ok := c.s.ValidatorIndexByPubkey(valid.PubKey)
	require.True(t, ok)
	require.Equal(t, uint64(genesisValidators), index)
	require.Equal(t, c.cfg.MaxEffectiveBalance, c.balance(c.s, index))
	_, ok = c.s.ValidatorIndexByPubkey(unproven.PubKey)
	require.False(t, ok)
}

func TestProcessDeposit(t *testing.T) {
	c := newChain(t)
	datas, err := statetest.GenesisDepositDatas(c.cfg, c.keys)
	require.NoError(t, err)
	topUp := &cltypes.DepositData{PubKey: datas[3].PubKey, WithdrawalCredentials: datas[3].WithdrawalCredentials, Amount: 1_000_000_000}

	tree, err := statetest.DepositTreeOf(c.cfg, append(datas, topUp))
	require.NoError(t, err)
	root, err := tree.Root()
	require.NoError(t, err)
	c.s.SetEth1Data(&cltypes.Eth1Data{Root: root, DepositCount: tree.Len()})
	impl := eth2.New(true)

	wrongIndex, err := statetest.DepositAt(tree, 0, topUp)
	require.NoError(t, err)
	require.ErrorIs(t, impl.ProcessDeposit(c.s, wrongIndex), eth2.ErrInvalidDepositProof)
	require.Equal(t, uint64(genesisValidators), c.s.Eth1DepositIndex())

	require.ErrorIs(t, impl.ProcessDeposit(c.s, &cltypes.Deposit{}), cltypes.ErrNilField)

	// Top-ups carry no proof of possession.
	deposit, err := statetest.DepositAt(tree, genesisValidators, topUp)
	require.NoError(t, err)
	require.NoError(t, impl.ProcessDeposit(c.s, deposit))
	require.Equal(t, uint64(genesisValidators+1), c.s.Eth1DepositIndex())
	require.Equal(t, c.cfg.MaxEffectiveBalance+topUp.Amount, c.balance(c.s, 3))
	require.Equal(t, genesisValidators, c.s.ValidatorLength())
}

func TestProcessVoluntaryExit(t *testing.T) {
	c := newChain(t)
	impl := eth2.New(true)
	s := c.s
	exitEpoch := c.cfg.ShardCommitteePeriod
	s.SetSlot(exitEpoch * c.cfg.SlotsPerEpoch)
	exit := func(index, epoch uint64) *cltypes.SignedVoluntaryExit {
		signed := &cltypes.SignedVoluntaryExit{VoluntaryExit: &cltypes.VoluntaryExit{Epoch: epoch, ValidatorIndex: index}}
		signed.Signature = c.sign(s, index, c.cfg.DomainVoluntaryExit, epoch, signed.VoluntaryExit)
		return signed
	}

	require.ErrorIs(t, impl.ProcessVoluntaryExit(s, exit(7, exitEpoch+1)), eth2.ErrExitTooEarly)

	forged := exit(7, exitEpoch)
	forged.Signature = exit(8, exitEpoch).Signature
	require.ErrorIs(t, impl.ProcessVoluntaryExit(s, forged), eth2.ErrInvalidSignature)

	require.NoError(t, impl.ProcessVoluntaryExit(s, exit(7, exitEpoch)))
	v := c.validator(s, 7)
	require.Equal(t, state.ComputeActivationExitEpoch(c.cfg, exitEpoch), v.ExitEpoch)
	require.Equal(t, v.ExitEpoch+c.cfg.MinValidatorWithdrawabilityDelay, v.WithdrawableEpoch)

	require.ErrorIs(t, impl.ProcessVoluntaryExit(s, exit(7, exitEpoch)), eth2.ErrAlreadyExiting)
	unknown := &cltypes.SignedVoluntaryExit{VoluntaryExit: &cltypes.VoluntaryExit{Epoch: exitEpoch, ValidatorIndex: genesisValidators}}
	require.ErrorIs(t, impl.ProcessVoluntaryExit(s, unknown), state.ErrInvalidValidatorIndex)
}

func TestProcessVoluntaryExitBeforeShardCommitteePeriod(t *testing.T) {
	c := newChain(t)
	c.advance(c.cfg.SlotsPerEpoch)
	signed := &cltypes.SignedVoluntaryExit{VoluntaryExit: &cltypes.VoluntaryExit{Epoch: 1, ValidatorIndex: 3}}
	signed.Signature = c.sign(c.s, 3, c.cfg.DomainVoluntaryExit, 1, signed.VoluntaryExit)
	require.ErrorIs(t, eth2.New(true).ProcessVoluntaryExit(c.s, signed), eth2.ErrExitTooEarly)
}

func TestProcessEth1DataMajority(t *testing.T) {
	c := newChain(t)
	impl := eth2.New(true)
	vote := &cltypes.Eth1Data{Root: [32]byte{1}, DepositCount: genesisValidators, BlockHash: [32]byte{2}}
	genesisEth1 := c.s.Eth1Data().Copy()

	half := int(c.cfg.SlotsPerEth1VotingPeriod() / 2)
	for i := 0; i < half; i++ {
		require.NoError(t, impl.ProcessEth1Data(c.s, vote))
		require.True(t, genesisEth1.Equal(c.s.Eth1Data()), "adopted after %d votes", i+1)
	}
	require.NoError(t, impl.ProcessEth1Data(c.s, vote))
	require.True(t, vote.Equal(c.s.Eth1Data()))
	require.Equal(t, half+1, c.s.Eth1DataVotes().Len())
}
