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

package machine

import (
	"fmt"
	"time"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
)

// ProcessBlock processes a block with the block processor
func ProcessBlock(impl BlockProcessor, s *state.CachingBeaconState, signedBlock *cltypes.SignedBeaconBlock) error {
	block := signedBlock.Block
	if err := checkOperationCaps(s.BeaconConfig(), block.Body); err != nil {
		return fmt.Errorf("processBlock: %w", err)
	}
	// Process the block header.
	if err := impl.ProcessBlockHeader(s, block); err != nil {
		return fmt.Errorf("processBlock: failed to process block header: %w", err)
	}
	// Process RANDAO reveal.
	if err := impl.ProcessRandao(s, block.Body.RandaoReveal, block.ProposerIndex); err != nil {
		return fmt.Errorf("processBlock: failed to process RANDAO reveal: %w", err)
	}
	// Process Eth1 data.
	if err := impl.ProcessEth1Data(s, block.Body.Eth1Data); err != nil {
		return fmt.Errorf("processBlock: failed to process Eth1 data: %w", err)
	}
	// Process block body operations.
	if err := ProcessOperations(impl, s, block.Body); err != nil {
		return fmt.Errorf("processBlock: failed to process block body operations: %w", err)
	}
	return nil
}

// ProcessOperations checks the operation counts of the body, then applies every operation in order.
func ProcessOperations(impl BlockOperationProcessor, s *state.CachingBeaconState, blockBody *cltypes.BeaconBody) error {
	if err := checkOperationCounts(s, blockBody); err != nil {
		return err
	}
	// Process each proposer slashing
	if err := forEachProcess(s, blockBody.ProposerSlashings.Elements(), impl.ProcessProposerSlashing); err != nil {
		return fmt.Errorf("ProcessProposerSlashing: %w", err)
	}
	// Process each attester slashing
	if err := forEachProcess(s, blockBody.AttesterSlashings.Elements(), impl.ProcessAttesterSlashing); err != nil {
		return fmt.Errorf("ProcessAttesterSlashing: %w", err)
	}
	// Process each attestations
	start := time.Now()
	if err := impl.ProcessAttestations(s, blockBody.Attestations); err != nil {
		return fmt.Errorf("ProcessAttestation: %w", err)
	}
	monitor.ObserveAttestationBlockProcessingTime(start)
	// Process each deposit
	if err := forEachProcess(s, blockBody.Deposits.Elements(), impl.ProcessDeposit); err != nil {
		return fmt.Errorf("ProcessDeposit: %w", err)
	}
	// Process each voluntary exit.
	if err := forEachProcess(s, blockBody.VoluntaryExits.Elements(), impl.ProcessVoluntaryExit); err != nil {
		return fmt.Errorf("ProcessVoluntaryExit: %w", err)
	}
	return nil
}

func forEachProcess[T any](s *state.CachingBeaconState, items []T, fn func(s *state.CachingBeaconState, item T) error) error {
	for i, item := range items {
		if err := fn(s, item); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

// checkOperationCaps rejects bodies carrying more operations of a kind than the config allows.
// It does not touch the state, so it runs before the body is hashed.
func checkOperationCaps(beaconConfig *clparams.BeaconChainConfig, blockBody *cltypes.BeaconBody) error {
	counts := []struct {
		name  string
		count int
		limit uint64
	}{
		{"proposer slashings", blockBody.ProposerSlashings.Len(), beaconConfig.MaxProposerSlashings},
		{"attester slashings", blockBody.AttesterSlashings.Len(), beaconConfig.MaxAttesterSlashings},
		{"attestations", blockBody.Attestations.Len(), beaconConfig.MaxAttestations},
		{"deposits", blockBody.Deposits.Len(), beaconConfig.MaxDeposits},
		{"voluntary exits", blockBody.VoluntaryExits.Len(), beaconConfig.MaxVoluntaryExits},
	}
	for _, c := range counts {
		if uint64(c.count) > c.limit {
			return fmt.Errorf("%w: %d %s, at most %d", ErrTooManyOperations, c.count, c.name, c.limit)
		}
	}
	return nil
}

func checkOperationCounts(s *state.CachingBeaconState, blockBody *cltypes.BeaconBody) error {
	if err := checkOperationCaps(s.BeaconConfig(), blockBody); err != nil {
		return err
	}
	expectedDeposits, err := maximumDeposits(s)
	if err != nil {
		return err
	}
	if uint64(blockBody.Deposits.Len()) != expectedDeposits {
		return fmt.Errorf("%w: got %d, expected %d", ErrWrongDepositsCount, blockBody.Deposits.Len(), expectedDeposits)
	}
	return nil
}
