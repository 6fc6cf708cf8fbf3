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

package monitor

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Slot and block processing metrics
	processSlotsTime               = newGauge("process_slots_time", "microseconds spent advancing slots")
	fullBlockProcessingTime        = newGauge("full_block_processing_time", "milliseconds spent on a full block transition")
	attestationBlockProcessingTime = newGauge("attestation_block_processing_time", "milliseconds spent processing block attestations")
	batchVerificationThroughput    = newGauge("aggregation_per_signature", "average milliseconds per verified attestation signature")

	// Epoch processing metrics
	epochProcessingTime                     = newGauge("epoch_processing_time", "microseconds spent on epoch processing")
	processJustificationBitsAndFinalityTime = newGauge("process_justification_bits_and_finality_time", "microseconds spent on justification and finality")
	processRewardsAndPenaltiesTime          = newGauge("process_rewards_and_penalties_time", "microseconds spent on rewards and penalties")
	processRegistryUpdatesTime              = newGauge("process_registry_updates_time", "microseconds spent on registry updates")
	processSlashingsTime                    = newGauge("process_slashings_time", "microseconds spent on slashings")
	processFinalUpdatesTime                 = newGauge("process_final_updates_time", "microseconds spent on final updates")

	// Operation outcome metrics
	droppedDeposits   = newCounter("deposits_dropped", "deposits dropped because of an invalid signature")
	slashedValidators = newCounter("validators_slashed", "validators slashed by block operations")
	processedEpochs   = newCounter("epochs_processed", "epoch transitions performed")
)

func newGauge(name, help string) prometheus.Gauge {
	g := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "beacon", Subsystem: "stf", Name: name, Help: help})
	prometheus.MustRegister(g)
	return g
}

func newCounter(name, help string) prometheus.Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts{Namespace: "beacon", Subsystem: "stf", Name: name, Help: help})
	prometheus.MustRegister(c)
	return c
}

func microToMilli(micros int64) float64 {
	return float64(micros) / 1000
}

// ObserveProcessSlotsTime sets last slots processing time
func ObserveProcessSlotsTime(startTime time.Time) {
	processSlotsTime.Set(float64(time.Since(startTime).Microseconds()))
}

// ObserveEpochProcessingTime sets last epoch processing time
func ObserveEpochProcessingTime(startTime time.Time) {
	epochProcessingTime.Set(float64(time.Since(startTime).Microseconds()))
	processedEpochs.Inc()
}

// ObserveProcessJustificationBitsAndFinalityTime sets ProcessJustificationBitsAndFinality time
func ObserveProcessJustificationBitsAndFinalityTime(startTime time.Time) {
	processJustificationBitsAndFinalityTime.Set(float64(time.Since(startTime).Microseconds()))
}

// ObserveProcessRewardsAndPenaltiesTime sets ProcessRewardsAndPenalties time
func ObserveProcessRewardsAndPenaltiesTime(startTime time.Time) {
	processRewardsAndPenaltiesTime.Set(float64(time.Since(startTime).Microseconds()))
}

// ObserveProcessRegistryUpdatesTime sets ProcessRegistryUpdates time
func ObserveProcessRegistryUpdatesTime(startTime time.Time) {
	processRegistryUpdatesTime.Set(float64(time.Since(startTime).Microseconds()))
}

// ObserveProcessSlashingsTime sets ProcessSlashings time
func ObserveProcessSlashingsTime(startTime time.Time) {
	processSlashingsTime.Set(float64(time.Since(startTime).Microseconds()))
}

// ObserveProcessFinalUpdatesTime sets ProcessFinalUpdates time
func ObserveProcessFinalUpdatesTime(startTime time.Time) {
	processFinalUpdatesTime.Set(float64(time.Since(startTime).Microseconds()))
}

// ObserveAttestationBlockProcessingTime sets the block attestations processing time
func ObserveAttestationBlockProcessingTime(startTime time.Time) {
	attestationBlockProcessingTime.Set(microToMilli(time.Since(startTime).Microseconds()))
}

// ObserveFullBlockProcessingTime sets the full block processing time
func ObserveFullBlockProcessingTime(startTime time.Time) {
	fullBlockProcessingTime.Set(microToMilli(time.Since(startTime).Microseconds()))
}

// ObserveBatchVerificationThroughput sets the average time spent per signature in the last batch
func ObserveBatchVerificationThroughput(d time.Duration, totalSigs int) {
	if totalSigs == 0 {
		return
	}
	batchVerificationThroughput.Set(microToMilli(d.Microseconds()) / float64(totalSigs))
}

func ObserveDroppedDeposit() {
	droppedDeposits.Inc()
}

func ObserveSlashedValidator() {
	slashedValidators.Inc()
}
