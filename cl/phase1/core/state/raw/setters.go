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

package raw

import (
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
)

func (b *BeaconState) SetGenesisTime(genesisTime uint64) {
	b.genesisTime = genesisTime
	b.markLeaf(GenesisTimeLeafIndex)
}

func (b *BeaconState) SetGenesisValidatorsRoot(root [32]byte) {
	b.genesisValidatorsRoot = root
	b.markLeaf(GenesisValidatorsRootLeafIndex)
}

func (b *BeaconState) SetSlot(slot uint64) {
	b.slot = slot
	b.markLeaf(SlotLeafIndex)
}

func (b *BeaconState) SetFork(fork *cltypes.Fork) {
	b.fork = fork
	b.markLeaf(ForkLeafIndex)
}

func (b *BeaconState) SetLatestBlockHeader(header *cltypes.BeaconBlockHeader) {
	b.latestBlockHeader = header
	b.markLeaf(LatestBlockHeaderLeafIndex)
}

func (b *BeaconState) SetBlockRootAt(index int, root [32]byte) {
	b.markLeaf(BlockRootsLeafIndex)
	b.blockRoots.Set(index, root)
}

func (b *BeaconState) SetStateRootAt(index int, root [32]byte) {
	b.markLeaf(StateRootsLeafIndex)
	b.stateRoots.Set(index, root)
}

func (b *BeaconState) AddHistoricalRoot(root [32]byte) {
	b.markLeaf(HistoricalRootsLeafIndex)
	b.historicalRoots.Append(root)
}

func (b *BeaconState) SetEth1Data(eth1Data *cltypes.Eth1Data) {
	b.eth1Data = eth1Data
	b.markLeaf(Eth1DataLeafIndex)
}

func (b *BeaconState) AddEth1DataVote(vote *cltypes.Eth1Data) {
	b.markLeaf(Eth1DataVotesLeafIndex)
	b.eth1DataVotes.Append(vote)
}

func (b *BeaconState) ResetEth1DataVotes() {
	b.markLeaf(Eth1DataVotesLeafIndex)
	b.eth1DataVotes.Clear()
}

func (b *BeaconState) SetEth1DepositIndex(eth1DepositIndex uint64) {
	b.eth1DepositIndex = eth1DepositIndex
	b.markLeaf(Eth1DepositIndexLeafIndex)
}

// AddValidator appends a registry entry and its balance in one step.
func (b *BeaconState) AddValidator(validator *cltypes.Validator, balance uint64) {
	b.validators.Append(validator)
	b.balances.Append(balance)
	b.markLeaf(ValidatorsLeafIndex, BalancesLeafIndex)
}

func (b *BeaconState) validatorAt(index int) (*cltypes.Validator, error) {
	if index < 0 || index >= b.validators.Len() {
		return nil, ErrInvalidValidatorIndex
	}
	b.markLeaf(ValidatorsLeafIndex)
	return b.validators.Get(index), nil
}

func (b *BeaconState) SetValidatorSlashed(index int, slashed bool) error {
	v, err := b.validatorAt(index)
	if err != nil {
		return err
	}
	v.Slashed = slashed
	return nil
}

func (b *BeaconState) SetEffectiveBalanceForValidatorAtIndex(index int, balance uint64) error {
	v, err := b.validatorAt(index)
	if err != nil {
		return err
	}
	v.EffectiveBalance = balance
	return nil
}

func (b *BeaconState) SetActivationEligibilityEpochForValidatorAtIndex(index int, epoch uint64) error {
	v, err := b.validatorAt(index)
	if err != nil {
		return err
	}
	v.ActivationEligibilityEpoch = epoch
	return nil
}

func (b *BeaconState) SetActivationEpochForValidatorAtIndex(index int, epoch uint64) error {
	v, err := b.validatorAt(index)
	if err != nil {
		return err
	}
	v.ActivationEpoch = epoch
	return nil
}

func (b *BeaconState) SetExitEpochForValidatorAtIndex(index int, epoch uint64) error {
	v, err := b.validatorAt(index)
	if err != nil {
		return err
	}
	v.ExitEpoch = epoch
	return nil
}

func (b *BeaconState) SetWithdrawableEpochForValidatorAtIndex(index int, epoch uint64) error {
	v, err := b.validatorAt(index)
	if err != nil {
		return err
	}
	v.WithdrawableEpoch = epoch
	return nil
}

func (b *BeaconState) SetValidatorBalance(index int, balance uint64) error {
	if index < 0 || index >= b.balances.Len() {
		return ErrInvalidValidatorIndex
	}
	b.markLeaf(BalancesLeafIndex)
	b.balances.Set(index, balance)
	return nil
}

func (b *BeaconState) SetRandaoMixAt(index int, mix [32]byte) {
	b.markLeaf(RandaoMixesLeafIndex)
	b.randaoMixes.Set(index, mix)
}

func (b *BeaconState) SetSlashingSegmentAt(index int, segment uint64) {
	b.markLeaf(SlashingsLeafIndex)
	b.slashings.Set(index, segment)
}

func (b *BeaconState) AddCurrentEpochAttestation(attestation *cltypes.PendingAttestation) {
	b.markLeaf(CurrentEpochAttestationsLeafIndex)
	b.currentEpochAttestations.Append(attestation)
}

func (b *BeaconState) AddPreviousEpochAttestation(attestation *cltypes.PendingAttestation) {
	b.markLeaf(PreviousEpochAttestationsLeafIndex)
	b.previousEpochAttestations.Append(attestation)
}

// RotateEpochAttestations moves the current epoch attestations to the previous slot and empties the current list.
func (b *BeaconState) RotateEpochAttestations() {
	b.markLeaf(PreviousEpochAttestationsLeafIndex, CurrentEpochAttestationsLeafIndex)
	b.previousEpochAttestations = b.currentEpochAttestations
	b.currentEpochAttestations = solid.NewListSSZ(int(b.beaconConfig.CurrentEpochAttestationsLength()), cltypes.NewPendingAttestation)
}

func (b *BeaconState) SetJustificationBits(justificationBits cltypes.JustificationBits) {
	b.justificationBits = justificationBits
	b.markLeaf(JustificationBitsLeafIndex)
}

func (b *BeaconState) SetPreviousJustifiedCheckpoint(checkpoint cltypes.Checkpoint) {
	b.previousJustifiedCheckpoint = checkpoint
	b.markLeaf(PreviousJustifiedCheckpointLeafIndex)
}

func (b *BeaconState) SetCurrentJustifiedCheckpoint(checkpoint cltypes.Checkpoint) {
	b.currentJustifiedCheckpoint = checkpoint
	b.markLeaf(CurrentJustifiedCheckpointLeafIndex)
}

func (b *BeaconState) SetFinalizedCheckpoint(checkpoint cltypes.Checkpoint) {
	b.finalizedCheckpoint = checkpoint
	b.markLeaf(FinalizedCheckpointLeafIndex)
}
