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

package statechange_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/statetest"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2/statechange"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

const testValidatorCount = 64

// genesisAtSlot returns a minimal preset genesis advanced through empty slots.
func genesisAtSlot(t *testing.T, slot uint64) *state.CachingBeaconState {
	t.Helper()
	cfg := clparams.MinimalBeaconConfig
	s, _, err := statetest.Genesis(&cfg, testValidatorCount)
	require.NoError(t, err)
	require.NoError(t, eth2.New(false).ProcessSlots(s, slot))
	return s
}

// attestEpoch records pending attestations of every committee of epoch voting for the canonical
// target and head, except the committees skip selects. It returns who attested.
func attestEpoch(t *testing.T, s *state.CachingBeaconState, epoch uint64, skip func(slot, committee uint64) bool) map[uint64]bool {
	t.Helper()
	cfg := s.BeaconConfig()
	targetRoot, err := s.GetBlockRoot(epoch)
	require.NoError(t, err)
	source := s.CurrentJustifiedCheckpoint()
	if epoch == state.PreviousEpoch(s) && epoch != state.Epoch(s) {
		source = s.PreviousJustifiedCheckpoint()
	}

	attesters := make(map[uint64]bool)
	committeeCount := s.GetCommitteeCountPerSlot(epoch)
	// heads are only known for slots before the state slot
	for slot := epoch * cfg.SlotsPerEpoch; slot < (epoch+1)*cfg.SlotsPerEpoch && slot < s.Slot(); slot++ {
		headRoot, err := s.GetBlockRootAtSlot(slot)
		require.NoError(t, err)
		for committeeIndex := uint64(0); committeeIndex < committeeCount; committeeIndex++ {
			if skip != nil && skip(slot, committeeIndex) {
				continue
			}
			committee, err := s.GetBeaconCommitee(slot, committeeIndex)
			require.NoError(t, err)
			bits := solid.NewBitList(len(committee), cltypes.MaxValidatorsPerCommittee)
			for i, member := range committee {
				bits.SetBitAt(i, true)
				attesters[member] = true
			}
			pending := &cltypes.PendingAttestation{
				AggregationBits: bits,
				Data: &cltypes.AttestationData{
					Slot:            slot,
					CommitteeIndex:  committeeIndex,
					BeaconBlockRoot: headRoot,
					Source:          source,
					Target:          cltypes.Checkpoint{Epoch: epoch, Root: targetRoot},
				},
				InclusionDelay: 1 + slot%3,
				ProposerIndex:  slot % testValidatorCount,
			}
			if epoch == state.Epoch(s) {
				s.AddCurrentEpochAttestation(pending)
			} else {
				s.AddPreviousEpochAttestation(pending)
			}
		}
	}
	return attesters
}

func balances(s *state.CachingBeaconState) []uint64 {
	return append([]uint64(nil), s.Balances().Elements()...)
}

func TestAttestationDeltasMatchBalanceChanges(t *testing.T) {
	s := genesisAtSlot(t, 15)
	attesters := attestEpoch(t, s, 0, func(slot, committee uint64) bool { return slot == 3 && committee == 1 })
	require.Less(t, len(attesters), testValidatorCount)

	rewards, penalties, err := statechange.GetAttestationDeltas(s)
	require.NoError(t, err)
	before := balances(s)
	require.NoError(t, statechange.ProcessRewardsAndPenalties(s))
	after := balances(s)

	cfg := s.BeaconConfig()
	baseReward := cfg.MaxEffectiveBalance * cfg.BaseRewardFactor / utils.IntegerSquareRoot(s.GetTotalActiveBalance()) / cfg.BaseRewardsPerEpoch
	for index := range before {
		expected := before[index] + rewards[index]
		if penalties[index] > expected {
			expected = 0
		} else {
			expected -= penalties[index]
		}
		require.Equal(t, expected, after[index], "validator %d", index)

		if attesters[uint64(index)] {
			require.Zero(t, penalties[index], "validator %d", index)
			require.Positive(t, rewards[index], "validator %d", index)
		} else {
			require.Equal(t, 3*baseReward, penalties[index], "validator %d", index)
		}
	}
}

func TestAttestationDeltasPreferEarliestInclusion(t *testing.T) {
	s := genesisAtSlot(t, 15)
	attestEpoch(t, s, 0, nil)
	want, _, err := statechange.GetAttestationDeltas(s)
	require.NoError(t, err)

	// the same votes included again with a longer delay do not change anything
	for _, pending := range s.PreviousEpochAttestations().Elements() {
		if pending.InclusionDelay != 1 {
			continue
		}
		again := *pending
		again.InclusionDelay = 4
		s.AddPreviousEpochAttestation(&again)
	}
	rewards, _, err := statechange.GetAttestationDeltas(s)
	require.NoError(t, err)
	require.Equal(t, want, rewards)
}

func TestAttestationDeltasRejectZeroInclusionDelay(t *testing.T) {
	s := genesisAtSlot(t, 15)
	attestEpoch(t, s, 0, nil)
	s.PreviousEpochAttestations().Get(0).InclusionDelay = 0
	_, _, err := statechange.GetAttestationDeltas(s)
	require.ErrorIs(t, err, statechange.ErrInvalidPendingAttestation)
}

func TestRewardsSkippedAtGenesisEpoch(t *testing.T) {
	s := genesisAtSlot(t, 7)
	before := balances(s)
	require.NoError(t, statechange.ProcessRewardsAndPenalties(s))
	require.Equal(t, before, balances(s))
}

func TestJustificationWithSupermajority(t *testing.T) {
	tests := []struct {
		name      string
		skip      func(slot, committee uint64) bool
		justified bool
	}{
		{name: "everyone", justified: true},
		{name: "one committee missing", skip: func(slot, committee uint64) bool { return slot == 9 && committee == 0 }, justified: true},
		{name: "half missing", skip: func(slot, _ uint64) bool { return slot%2 == 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := genesisAtSlot(t, 23)
			attestEpoch(t, s, 1, tt.skip)
			oldCurrent := s.CurrentJustifiedCheckpoint()
			targetRoot, err := s.GetBlockRoot(1)
			require.NoError(t, err)

			require.NoError(t, statechange.ProcessJustificationBitsAndFinality(s))
			require.Equal(t, oldCurrent, s.PreviousJustifiedCheckpoint())
			require.Equal(t, tt.justified, s.JustificationBits()[1])
			if tt.justified {
				require.Equal(t, cltypes.Checkpoint{Epoch: 1, Root: targetRoot}, s.CurrentJustifiedCheckpoint())
			} else {
				require.Equal(t, oldCurrent, s.CurrentJustifiedCheckpoint())
			}
			require.Equal(t, uint64(0), s.FinalizedCheckpoint().Epoch)
		})
	}
}

func TestJustificationSkippedForFirstEpochs(t *testing.T) {
	s := genesisAtSlot(t, 15)
	attestEpoch(t, s, 0, nil)
	require.NoError(t, statechange.ProcessJustificationBitsAndFinality(s))
	require.Equal(t, cltypes.JustificationBits{}, s.JustificationBits())
}

func TestFinalizationFromTwoJustifiedEpochs(t *testing.T) {
	s := genesisAtSlot(t, 23)
	root1, err := s.GetBlockRoot(1)
	require.NoError(t, err)
	// epoch 1 justified with epoch 0 as previous justified
	s.SetPreviousJustifiedCheckpoint(cltypes.Checkpoint{Epoch: 0})
	s.SetCurrentJustifiedCheckpoint(cltypes.Checkpoint{Epoch: 1, Root: root1})
	s.SetJustificationBits(cltypes.JustificationBits{true})
	attestEpoch(t, s, 1, nil)
	attestEpoch(t, s, 2, nil)

	require.NoError(t, statechange.ProcessJustificationBitsAndFinality(s))
	root2, err := s.GetBlockRoot(2)
	require.NoError(t, err)
	require.Equal(t, cltypes.Checkpoint{Epoch: 2, Root: root2}, s.CurrentJustifiedCheckpoint())
	require.Equal(t, cltypes.Checkpoint{Epoch: 1, Root: root1}, s.FinalizedCheckpoint())
	require.Equal(t, cltypes.JustificationBits{true, true, false, false}, s.JustificationBits())
}

func TestProcessEpochAtGenesisKeepsBalances(t *testing.T) {
	s := genesisAtSlot(t, 8)
	for index, balance := range balances(s) {
		require.Equal(t, s.BeaconConfig().MaxEffectiveBalance, balance, "validator %d", index)
	}
	require.Zero(t, s.HistoricalRootsLength())
}
