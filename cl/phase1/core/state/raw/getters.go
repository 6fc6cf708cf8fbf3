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
	"errors"
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
)

var (
	ErrInvalidValidatorIndex = errors.New("invalid validator index")
	ErrMismatchedRegistry    = errors.New("validators and balances have different lengths")
)

// Just a bunch of simple getters.

func (b *BeaconState) BeaconConfig() *clparams.BeaconChainConfig {
	return b.beaconConfig
}

func (b *BeaconState) Version() clparams.StateVersion {
	return b.version
}

func (b *BeaconState) GenesisTime() uint64 {
	return b.genesisTime
}

func (b *BeaconState) GenesisValidatorsRoot() [32]byte {
	return b.genesisValidatorsRoot
}

func (b *BeaconState) Slot() uint64 {
	return b.slot
}

func (b *BeaconState) PreviousSlot() uint64 {
	if b.slot == 0 {
		return 0
	}
	return b.slot - 1
}

func (b *BeaconState) Fork() *cltypes.Fork {
	return b.fork
}

func (b *BeaconState) LatestBlockHeader() cltypes.BeaconBlockHeader {
	return *b.latestBlockHeader
}

// BlockRoots is read only, use SetBlockRootAt to modify.
func (b *BeaconState) BlockRoots() *solid.HashVectorSSZ {
	return b.blockRoots
}

// StateRoots is read only, use SetStateRootAt to modify.
func (b *BeaconState) StateRoots() *solid.HashVectorSSZ {
	return b.stateRoots
}

func (b *BeaconState) HistoricalRoots() *solid.HashListSSZ {
	return b.historicalRoots
}

func (b *BeaconState) HistoricalRootsLength() uint64 {
	return uint64(b.historicalRoots.Len())
}

func (b *BeaconState) Eth1Data() *cltypes.Eth1Data {
	return b.eth1Data
}

func (b *BeaconState) Eth1DataVotes() *solid.ListSSZ[*cltypes.Eth1Data] {
	return b.eth1DataVotes
}

func (b *BeaconState) Eth1DepositIndex() uint64 {
	return b.eth1DepositIndex
}

func (b *BeaconState) ValidatorLength() int {
	return b.validators.Len()
}

// ValidatorForValidatorIndex returns a copy of the registry entry.
func (b *BeaconState) ValidatorForValidatorIndex(index int) (*cltypes.Validator, error) {
	if index < 0 || index >= b.validators.Len() {
		return nil, ErrInvalidValidatorIndex
	}
	return b.validators.Get(index).Copy(), nil
}

// ForEachValidator iterates the registry in index order. The callback must not modify v.
func (b *BeaconState) ForEachValidator(fn func(v *cltypes.Validator, idx int, total int) bool) {
	b.validators.Range(func(idx int, v *cltypes.Validator, total int) bool {
		return fn(v, idx, total)
	})
}

func (b *BeaconState) ValidatorPublicKey(index int) ([48]byte, error) {
	if index < 0 || index >= b.validators.Len() {
		return [48]byte{}, ErrInvalidValidatorIndex
	}
	return b.validators.Get(index).PublicKey, nil
}

func (b *BeaconState) ValidatorEffectiveBalance(index int) (uint64, error) {
	if index < 0 || index >= b.validators.Len() {
		return 0, ErrInvalidValidatorIndex
	}
	return b.validators.Get(index).EffectiveBalance, nil
}

func (b *BeaconState) ValidatorIsSlashed(index int) (bool, error) {
	if index < 0 || index >= b.validators.Len() {
		return false, ErrInvalidValidatorIndex
	}
	return b.validators.Get(index).Slashed, nil
}

func (b *BeaconState) ValidatorExitEpoch(index int) (uint64, error) {
	if index < 0 || index >= b.validators.Len() {
		return 0, ErrInvalidValidatorIndex
	}
	return b.validators.Get(index).ExitEpoch, nil
}

func (b *BeaconState) BalancesLength() int {
	return b.balances.Len()
}

func (b *BeaconState) ValidatorBalance(index int) (uint64, error) {
	if index < 0 || index >= b.balances.Len() {
		return 0, ErrInvalidValidatorIndex
	}
	return b.balances.Get(index), nil
}

// Balances is read only, use SetValidatorBalance to modify.
func (b *BeaconState) Balances() *solid.Uint64ListSSZ {
	return b.balances
}

func (b *BeaconState) RandaoMixes() *solid.HashVectorSSZ {
	return b.randaoMixes
}

// GetRandaoMixes returns the mix stored for epoch, modulo the vector length.
func (b *BeaconState) GetRandaoMixes(epoch uint64) [32]byte {
	return b.randaoMixes.Get(int(epoch % b.beaconConfig.EpochsPerHistoricalVector))
}

func (b *BeaconState) SlashingSegmentAt(pos int) uint64 {
	return b.slashings.Get(pos)
}

// SlashingsSum is the total of the slashings vector.
func (b *BeaconState) SlashingsSum() (sum uint64) {
	for _, v := range b.slashings.Elements() {
		sum += v
	}
	return
}

func (b *BeaconState) PreviousEpochAttestations() *solid.ListSSZ[*cltypes.PendingAttestation] {
	return b.previousEpochAttestations
}

func (b *BeaconState) CurrentEpochAttestations() *solid.ListSSZ[*cltypes.PendingAttestation] {
	return b.currentEpochAttestations
}

func (b *BeaconState) JustificationBits() cltypes.JustificationBits {
	return b.justificationBits
}

func (b *BeaconState) PreviousJustifiedCheckpoint() cltypes.Checkpoint {
	return b.previousJustifiedCheckpoint
}

func (b *BeaconState) CurrentJustifiedCheckpoint() cltypes.Checkpoint {
	return b.currentJustifiedCheckpoint
}

func (b *BeaconState) FinalizedCheckpoint() cltypes.Checkpoint {
	return b.finalizedCheckpoint
}

// CheckRegistry reports a broken validators/balances pairing.
func (b *BeaconState) CheckRegistry() error {
	if b.validators.Len() != b.balances.Len() {
		return fmt.Errorf("%w: %d validators, %d balances", ErrMismatchedRegistry, b.validators.Len(), b.balances.Len())
	}
	return nil
}

// ValidatorsRoot is the hash tree root of the validator registry alone.
func (b *BeaconState) ValidatorsRoot() ([32]byte, error) {
	return b.validators.HashSSZ()
}
