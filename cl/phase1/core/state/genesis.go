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

package state

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

var ErrInvalidDepositProof = errors.New("invalid deposit merkle proof")

// InitializeBeaconStateFromEth1 builds the genesis state from the eth1 block that triggered
// genesis and the deposits collected up to it. Deposit proofs must be built against the
// deposit tree truncated to each deposit, as the deposit root is replayed incrementally.
func InitializeBeaconStateFromEth1(cfg *clparams.BeaconChainConfig, eth1BlockHash [32]byte, eth1Timestamp uint64, deposits []*cltypes.Deposit) (*CachingBeaconState, error) {
	b := New(cfg)
	genesisVersion := cfg.GenesisForkVersion.Bytes()
	b.SetGenesisTime(eth1Timestamp + cfg.GenesisDelay)
	b.SetFork(&cltypes.Fork{PreviousVersion: genesisVersion, CurrentVersion: genesisVersion, Epoch: cfg.GenesisEpoch})
	b.SetEth1Data(&cltypes.Eth1Data{BlockHash: eth1BlockHash, DepositCount: uint64(len(deposits))})

	bodyRoot, err := cltypes.NewBeaconBody(cfg).HashSSZ()
	if err != nil {
		return nil, err
	}
	b.SetLatestBlockHeader(&cltypes.BeaconBlockHeader{BodyRoot: bodyRoot})
	for i := 0; i < int(cfg.EpochsPerHistoricalVector); i++ {
		b.SetRandaoMixAt(i, eth1BlockHash)
	}

	tree := merkle_tree.NewDepositTree(cfg.DepositContractTreeDepth)
	for i, deposit := range deposits {
		leaf, err := deposit.Data.HashSSZ()
		if err != nil {
			return nil, err
		}
		tree.Push(leaf)
		depositRoot, err := tree.Root()
		if err != nil {
			return nil, err
		}
		eth1Data := b.Eth1Data().Copy()
		eth1Data.Root = depositRoot
		b.SetEth1Data(eth1Data)

		if !utils.IsValidMerkleBranch(leaf, deposit.Proof.Elements(), cfg.DepositContractTreeDepth+1, b.Eth1DepositIndex(), depositRoot) {
			return nil, fmt.Errorf("genesis deposit %d: %w", i, ErrInvalidDepositProof)
		}
		b.SetEth1DepositIndex(b.Eth1DepositIndex() + 1)
		if _, err := b.ApplyDeposit(deposit.Data); err != nil {
			return nil, fmt.Errorf("genesis deposit %d: %w", i, err)
		}
	}

	// Process activations
	for index := 0; index < b.ValidatorLength(); index++ {
		balance, err := b.ValidatorBalance(index)
		if err != nil {
			return nil, err
		}
		effectiveBalance := utils.Min64(balance-balance%cfg.EffectiveBalanceIncrement, cfg.MaxEffectiveBalance)
		if err := b.SetEffectiveBalanceForValidatorAtIndex(index, effectiveBalance); err != nil {
			return nil, err
		}
		if effectiveBalance != cfg.MaxEffectiveBalance {
			continue
		}
		if err := b.SetActivationEligibilityEpochForValidatorAtIndex(index, cfg.GenesisEpoch); err != nil {
			return nil, err
		}
		if err := b.SetActivationEpochForValidatorAtIndex(index, cfg.GenesisEpoch); err != nil {
			return nil, err
		}
	}

	validatorsRoot, err := b.ValidatorsRoot()
	if err != nil {
		return nil, err
	}
	b.SetGenesisValidatorsRoot(validatorsRoot)
	return b, nil
}

// IsValidGenesisState reports whether the candidate genesis has reached the minimum time and validator count.
func IsValidGenesisState(b *CachingBeaconState) bool {
	cfg := b.BeaconConfig()
	if b.GenesisTime() < cfg.MinGenesisTime {
		return false
	}
	return uint64(len(b.GetActiveValidatorsIndices(cfg.GenesisEpoch))) >= cfg.MinGenesisActiveValidatorCount
}
