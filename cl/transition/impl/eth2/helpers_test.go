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
	"github.com/ChainSafe/lodestar-sub010/cl/fork"
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/statetest"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/machine"
	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
)

const genesisValidators = 64

type chain struct {
	t    *testing.T
	cfg  *clparams.BeaconChainConfig
	s    *state.CachingBeaconState
	keys []*bls.SecretKey
}

func newChain(t *testing.T) *chain {
	t.Helper()
	cfg := &clparams.MinimalBeaconConfig
	s, keys, err := statetest.Genesis(cfg, genesisValidators)
	require.NoError(t, err)
	return &chain{t: t, cfg: cfg, s: s, keys: keys}
}

// advance moves the chain state to slot with empty slots.
func (c *chain) advance(slot uint64) {
	c.t.Helper()
	require.NoError(c.t, eth2.New(false).ProcessSlots(c.s, slot))
}

// sign signs obj with the key of validator index.
func (c *chain) sign(s *state.CachingBeaconState, index uint64, domainType [4]byte, epoch uint64, obj ssz.HashableSSZ) [96]byte {
	c.t.Helper()
	sig, err := statetest.Sign(s, c.keys[index], domainType, epoch, obj)
	require.NoError(c.t, err)
	return sig
}

func (c *chain) randaoReveal(s *state.CachingBeaconState, proposer uint64) [96]byte {
	c.t.Helper()
	epoch := state.Epoch(s)
	domain, err := s.GetDomain(c.cfg.DomainRandao, epoch)
	require.NoError(c.t, err)
	signingRoot, err := fork.ComputeSigningRootFromRoot(merkle_tree.Uint64Root(epoch), domain)
	require.NoError(c.t, err)
	var reveal [96]byte
	copy(reveal[:], c.keys[proposer].Sign(signingRoot[:]))
	return reveal
}

// buildBlock proposes a block at slot on top of the chain state. fill runs against the
// pre-state at slot and may add operations to the body. The state root is only set when
// the block applies cleanly without signature checks.
func (c *chain) buildBlock(slot uint64, fill func(pre *state.CachingBeaconState, body *cltypes.BeaconBody)) *cltypes.SignedBeaconBlock {
	c.t.Helper()
	pre := c.s.Copy()
	require.NoError(c.t, eth2.New(false).ProcessSlots(pre, slot))
	proposer, err := pre.GetBeaconProposerIndex()
	require.NoError(c.t, err)
	parent := pre.LatestBlockHeader()
	parentRoot, err := parent.HashSSZ()
	require.NoError(c.t, err)

	signed := cltypes.NewSignedBeaconBlock(c.cfg)
	block := signed.Block
	block.Slot = slot
	block.ProposerIndex = proposer
	block.ParentRoot = parentRoot
	block.Body.Eth1Data = pre.Eth1Data().Copy()
	block.Body.RandaoReveal = c.randaoReveal(pre, proposer)
	if fill != nil {
		fill(pre, block.Body)
	}

	post := pre.Copy()
	if err := machine.ProcessBlock(eth2.New(false), post, signed); err == nil {
		block.StateRoot, err = post.HashSSZ()
		require.NoError(c.t, err)
	}
	c.signBlock(pre, signed)
	return signed
}

// signBlock signs block with the key of its proposer.
func (c *chain) signBlock(s *state.CachingBeaconState, signed *cltypes.SignedBeaconBlock) {
	c.t.Helper()
	epoch := state.GetEpochAtSlot(c.cfg, signed.Block.Slot)
	signed.Signature = c.sign(s, signed.Block.ProposerIndex, c.cfg.DomainBeaconProposer, epoch, signed.Block)
}

// slotState returns a copy of the chain state advanced to slot.
func (c *chain) slotState(slot uint64) *state.CachingBeaconState {
	c.t.Helper()
	s := c.s.Copy()
	require.NoError(c.t, eth2.New(false).ProcessSlots(s, slot))
	return s
}

func (c *chain) balance(s *state.CachingBeaconState, index uint64) uint64 {
	c.t.Helper()
	balance, err := s.ValidatorBalance(int(index))
	require.NoError(c.t, err)
	return balance
}

func (c *chain) validator(s *state.CachingBeaconState, index uint64) *cltypes.Validator {
	c.t.Helper()
	v, err := s.ValidatorForValidatorIndex(int(index))
	require.NoError(c.t, err)
	return v
}
