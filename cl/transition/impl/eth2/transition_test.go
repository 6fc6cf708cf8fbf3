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

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/statetest"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/machine"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

func TestProcessSlotsEmptyEpochsMainnet(t *testing.T) {
	cfg := &clparams.MainnetBeaconConfig
	s, _, err := statetest.Genesis(cfg, genesisValidators)
	require.NoError(t, err)
	genesisRoot, err := s.HashSSZ()
	require.NoError(t, err)

	require.NoError(t, eth2.New(true).ProcessSlots(s, 2*cfg.SlotsPerEpoch))
	require.Equal(t, 2*cfg.SlotsPerEpoch, s.Slot())

	header := s.LatestBlockHeader()
	require.Equal(t, genesisRoot, header.Root)
	require.Equal(t, genesisRoot, s.StateRoots().Get(0))
	headerRoot, err := header.HashSSZ()
	require.NoError(t, err)
	for slot := 0; slot < int(2*cfg.SlotsPerEpoch); slot++ {
		require.Equal(t, headerRoot, s.BlockRoots().Get(slot), "block root at slot %d", slot)
		require.NotEqual(t, [32]byte{}, s.StateRoots().Get(slot), "state root at slot %d", slot)
	}
	// nothing attested, so nothing is justified
	require.Equal(t, cltypes.JustificationBits{}, s.JustificationBits())
	require.Zero(t, s.CurrentJustifiedCheckpoint().Epoch)
	require.Zero(t, s.FinalizedCheckpoint().Epoch)

	// Only the end of epoch 1 charges the missed source, target and head votes.
	totalBalance := uint64(genesisValidators) * cfg.MaxEffectiveBalance
	baseReward := cfg.MaxEffectiveBalance * cfg.BaseRewardFactor / utils.IntegerSquareRoot(totalBalance) / cfg.BaseRewardsPerEpoch
	for i, balance := range s.Balances().Elements() {
		require.Equal(t, cfg.MaxEffectiveBalance-3*baseReward, balance, "validator %d", i)
	}
}

func TestProcessSlotsBounds(t *testing.T) {
	c := newChain(t)
	c.advance(3)
	root, err := c.s.HashSSZ()
	require.NoError(t, err)

	require.NoError(t, eth2.New(true).ProcessSlots(c.s, 3))
	sameRoot, err := c.s.HashSSZ()
	require.NoError(t, err)
	require.Equal(t, root, sameRoot)

	require.ErrorIs(t, eth2.New(true).ProcessSlots(c.s, 2), eth2.ErrInvalidTransition)
}

func TestTransitionStateEmptyBlocks(t *testing.T) {
	c := newChain(t)
	genesisMix := c.s.GetRandaoMixes(0)

	for _, slot := range []uint64{1, 5, 9} {
		block := c.buildBlock(slot, nil)
		require.NoError(t, machine.TransitionState(eth2.New(true), c.s, block), "block at slot %d", slot)
		require.Equal(t, slot, c.s.Slot())
		header := c.s.LatestBlockHeader()
		require.Equal(t, slot, header.Slot)
		require.Equal(t, block.Block.ProposerIndex, header.ProposerIndex)
		root, err := c.s.HashSSZ()
		require.NoError(t, err)
		require.Equal(t, block.Block.StateRoot, root)
	}
	require.NotEqual(t, genesisMix, c.s.GetRandaoMixes(1))
	require.Equal(t, 3, c.s.Eth1DataVotes().Len())
}

func TestTransitionStateRejectsInvalidBlocks(t *testing.T) {
	const slot = 2
	tests := []struct {
		name           string
		fullValidation bool
		tamper         func(c *chain, pre *state.CachingBeaconState, block *cltypes.SignedBeaconBlock)
		err            error
	}{
		{
			name:           "signature by another validator",
			fullValidation: true,
			tamper: func(c *chain, pre *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) {
				other := (block.Block.ProposerIndex + 1) % genesisValidators
				block.Signature = c.sign(pre, other, c.cfg.DomainBeaconProposer, 0, block.Block)
			},
			err: eth2.ErrInvalidSignature,
		},
		{
			name:           "wrong state root",
			fullValidation: true,
			tamper: func(c *chain, pre *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) {
				block.Block.StateRoot[0] ^= 0xff
				c.signBlock(pre, block)
			},
			err: eth2.ErrInvalidStateRoot,
		},
		{
			name:           "randao revealed by another validator",
			fullValidation: true,
			tamper: func(c *chain, pre *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) {
				block.Block.Body.RandaoReveal = c.randaoReveal(pre, (block.Block.ProposerIndex+1)%genesisValidators)
				c.signBlock(pre, block)
			},
			err: eth2.ErrInvalidSignature,
		},
		{
			name: "wrong proposer",
			tamper: func(_ *chain, _ *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) {
				block.Block.ProposerIndex = (block.Block.ProposerIndex + 1) % genesisValidators
			},
			err: eth2.ErrWrongProposer,
		},
		{
			name: "unknown parent",
			tamper: func(_ *chain, _ *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) {
				block.Block.ParentRoot = [32]byte{1}
			},
			err: eth2.ErrWrongParentRoot,
		},
		{
			name: "too many exits",
			tamper: func(c *chain, _ *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) {
				for i := uint64(0); i <= c.cfg.MaxVoluntaryExits; i++ {
					block.Block.Body.VoluntaryExits.Append(cltypes.NewSignedVoluntaryExit())
				}
			},
			err: machine.ErrTooManyOperations,
		},
		{
			name: "bad signature is not checked",
			tamper: func(c *chain, pre *state.CachingBeaconState, block *cltypes.SignedBeaconBlock) {
				other := (block.Block.ProposerIndex + 1) % genesisValidators
				block.Signature = c.sign(pre, other, c.cfg.DomainBeaconProposer, 0, block.Block)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newChain(t)
			block := c.buildBlock(slot, nil)
			tt.tamper(c, c.slotState(slot), block)
			err := machine.TransitionState(eth2.New(tt.fullValidation), c.s, block)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestTransitionStateRejectsPastBlock(t *testing.T) {
	c := newChain(t)
	block := c.buildBlock(1, nil)
	c.advance(2)
	require.ErrorIs(t, machine.TransitionState(eth2.New(true), c.s, block), eth2.ErrInvalidTransition)
}

// Every block carries the attestations of every committee of the previous slot, so the
// chain justifies each epoch from epoch 2 on and finalizes epoch 2 at the end of epoch 3.
func TestTransitionStateJustifiesAndFinalizes(t *testing.T) {
	c := newChain(t)
	spe := c.cfg.SlotsPerEpoch
	for slot := uint64(1); slot <= 4*spe; slot++ {
		block := c.buildBlock(slot, func(pre *state.CachingBeaconState, body *cltypes.BeaconBody) {
			attestedSlot := slot - 1
			committees := pre.GetCommitteeCountPerSlot(state.GetEpochAtSlot(c.cfg, attestedSlot))
			for index := uint64(0); index < committees; index++ {
				attestation, err := statetest.Attestation(pre, c.keys, attestedSlot, index)
				require.NoError(t, err)
				body.Attestations.Append(attestation)
			}
		})
		require.NoError(t, machine.TransitionState(eth2.New(true), c.s, block), "block at slot %d", slot)

		switch slot {
		case 2 * spe:
			require.Zero(t, c.s.CurrentJustifiedCheckpoint().Epoch)
		case 3 * spe:
			require.Equal(t, uint64(2), c.s.CurrentJustifiedCheckpoint().Epoch)
			require.Zero(t, c.s.FinalizedCheckpoint().Epoch)
			require.Equal(t, cltypes.JustificationBits{true, true, false, false}, c.s.JustificationBits())
		}
	}

	require.Equal(t, uint64(3), c.s.CurrentJustifiedCheckpoint().Epoch)
	finalized := c.s.FinalizedCheckpoint()
	require.Equal(t, uint64(2), finalized.Epoch)
	epochTwoRoot, err := c.s.GetBlockRoot(2)
	require.NoError(t, err)
	require.Equal(t, epochTwoRoot, finalized.Root)
	require.Equal(t, cltypes.JustificationBits{true, true, true, false}, c.s.JustificationBits())

	// Everyone attested on time, so everyone gained.
	for i, balance := range c.s.Balances().Elements() {
		require.Greater(t, balance, c.cfg.MaxEffectiveBalance, "validator %d", i)
	}
}
