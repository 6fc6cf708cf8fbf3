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

package consensus_tests

import "github.com/ChainSafe/lodestar-sub010/cl/spectest"

var TestFormats = spectest.Format{}.
	Add("epoch_processing", "effective_balance_updates", effectiveBalancesUpdateTest).
	Add("epoch_processing", "eth1_data_reset", eth1DataResetTest).
	Add("epoch_processing", "historical_roots_update", historicalRootsUpdateTest).
	Add("epoch_processing", "justification_and_finalization", justificationFinalizationTest).
	Add("epoch_processing", "participation_record_updates", participationRecordUpdatesTest).
	Add("epoch_processing", "randao_mixes_reset", randaoMixesTest).
	Add("epoch_processing", "registry_updates", registryUpdatesTest).
	Add("epoch_processing", "rewards_and_penalties", rewardsAndPenaltiesTest).
	Add("epoch_processing", "slashings", slashingsTest).
	Add("epoch_processing", "slashings_reset", slashingsResetTest).
	Add("finality", "finality", blocksHandler).
	Add("operations", "attestation", operationAttestationHandler).
	Add("operations", "attester_slashing", operationAttesterSlashingHandler).
	Add("operations", "block_header", operationBlockHeaderHandler).
	Add("operations", "deposit", operationDepositHandler).
	Add("operations", "proposer_slashing", operationProposerSlashingHandler).
	Add("operations", "voluntary_exit", operationVoluntaryExitHandler).
	Add("sanity", "blocks", blocksHandler).
	Add("sanity", "slots", slotsHandler)
