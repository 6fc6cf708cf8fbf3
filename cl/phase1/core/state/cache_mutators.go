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
	"fmt"
	"math/bits"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
	"github.com/ledgerwatch/log/v3"
)

// SlashValidator exits and penalizes slashedInd, rewarding the proposer and the
// whistleblower, which defaults to the proposer.
func (b *CachingBeaconState) SlashValidator(slashedInd uint64, whistleblowerInd *uint64) error {
	cfg := b.BeaconConfig()
	epoch := Epoch(b)
	if slashedInd >= uint64(b.ValidatorLength()) {
		return fmt.Errorf("SlashValidator: %w: %d", ErrInvalidValidatorIndex, slashedInd)
	}
	proposerInd, err := b.GetBeaconProposerIndex()
	if err != nil {
		return fmt.Errorf("unable to get beacon proposer index: %w", err)
	}
	if whistleblowerInd == nil {
		whistleblowerInd = new(uint64)
		*whistleblowerInd = proposerInd
	}
	if *whistleblowerInd >= uint64(b.ValidatorLength()) {
		return fmt.Errorf("SlashValidator: whistleblower %w: %d", ErrInvalidValidatorIndex, *whistleblowerInd)
	}

	if err := b.InitiateValidatorExit(slashedInd); err != nil {
		return err
	}
	// Change the validator to be slashed
	if err := b.SetValidatorSlashed(int(slashedInd), true); err != nil {
		return err
	}
	validator, err := b.ValidatorForValidatorIndex(int(slashedInd))
	if err != nil {
		return err
	}
	newWithdrawableEpoch := utils.Max64(validator.WithdrawableEpoch, epoch+cfg.EpochsPerSlashingsVector)
	if err := b.SetWithdrawableEpochForValidatorAtIndex(int(slashedInd), newWithdrawableEpoch); err != nil {
		return err
	}

	// Update slashings vector
	slashingsIndex := int(epoch % cfg.EpochsPerSlashingsVector)
	b.SetSlashingSegmentAt(slashingsIndex, b.SlashingSegmentAt(slashingsIndex)+validator.EffectiveBalance)
	if err := DecreaseBalance(b, slashedInd, validator.EffectiveBalance/cfg.MinSlashingPenaltyQuotient); err != nil {
		return err
	}

	whistleBlowerReward := validator.EffectiveBalance / cfg.WhistleBlowerRewardQuotient
	proposerReward := whistleBlowerReward / cfg.ProposerRewardQuotient
	if err := IncreaseBalance(b, proposerInd, proposerReward); err != nil {
		return err
	}
	if err := IncreaseBalance(b, *whistleblowerInd, whistleBlowerReward-proposerReward); err != nil {
		return err
	}
	monitor.ObserveSlashedValidator()
	log.Debug("Slashed validator", "index", slashedInd, "whistleblower", *whistleblowerInd, "epoch", epoch)
	return nil
}

// InitiateValidatorExit queues index behind the furthest scheduled exit, respecting the churn limit.
// Validators already exiting are left untouched.
func (b *CachingBeaconState) InitiateValidatorExit(index uint64) error {
	cfg := b.BeaconConfig()
	validatorExitEpoch, err := b.ValidatorExitEpoch(int(index))
	if err != nil {
		return err
	}
	if validatorExitEpoch != cfg.FarFutureEpoch {
		return nil
	}

	queue := b.getExitQueue()
	exitQueueEpoch := ComputeActivationExitEpoch(cfg, Epoch(b))
	var exitQueueChurn uint64
	if queue.epoch >= exitQueueEpoch {
		exitQueueEpoch = queue.epoch
		exitQueueChurn = queue.churn
	}
	if exitQueueChurn >= b.GetValidatorChurnLimit() {
		exitQueueEpoch++
		exitQueueChurn = 0
	}

	newWithdrawableEpoch, carry := bits.Add64(exitQueueEpoch, cfg.MinValidatorWithdrawabilityDelay, 0)
	if carry != 0 {
		return ErrWithdrawableEpochOverflow
	}
	if err := b.SetExitEpochForValidatorAtIndex(int(index), exitQueueEpoch); err != nil {
		return err
	}
	if err := b.SetWithdrawableEpochForValidatorAtIndex(int(index), newWithdrawableEpoch); err != nil {
		return err
	}
	b.exitQueueCache = &exitQueue{epoch: exitQueueEpoch, churn: exitQueueChurn + 1}
	return nil
}

func (b *CachingBeaconState) getExitQueue() exitQueue {
	if b.exitQueueCache != nil {
		return *b.exitQueueCache
	}
	farFutureEpoch := b.BeaconConfig().FarFutureEpoch
	var queue exitQueue
	b.ForEachValidator(func(v *cltypes.Validator, idx, total int) bool {
		if v.ExitEpoch == farFutureEpoch {
			return true
		}
		if v.ExitEpoch > queue.epoch {
			queue = exitQueue{epoch: v.ExitEpoch}
		}
		if v.ExitEpoch == queue.epoch {
			queue.churn++
		}
		return true
	})
	b.exitQueueCache = &queue
	return queue
}
