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

package eth2

import "errors"

var (
	// ErrInvalidTransition is an engine invariant violation, e.g. rewinding the state.
	ErrInvalidTransition = errors.New("invalid state transition")

	ErrInvalidSignature        = errors.New("invalid signature")
	ErrInvalidStateRoot        = errors.New("state root differs from block state root")
	ErrWrongSlot               = errors.New("block slot does not match state slot")
	ErrStaleBlock              = errors.New("block is not newer than the latest block header")
	ErrWrongProposer           = errors.New("block proposer is not the expected proposer")
	ErrWrongParentRoot         = errors.New("block parent root does not match the latest block header")
	ErrSlashedProposer         = errors.New("block proposer is slashed")
	ErrNotSlashable            = errors.New("validator is not slashable")
	ErrInvalidProposerSlashing = errors.New("invalid proposer slashing")
	ErrInvalidAttesterSlashing = errors.New("attestations are not slashable")
	ErrNoSlashableIndices      = errors.New("attester slashing slashed no validator")
	ErrInvalidTargetEpoch      = errors.New("attestation target epoch out of range")
	ErrInclusionWindow         = errors.New("attestation not in its inclusion window")
	ErrStaleCheckpoint         = errors.New("attestation source does not match the justified checkpoint")
	ErrInvalidDepositProof     = errors.New("invalid deposit merkle branch")
	ErrInactiveValidator       = errors.New("validator is not active")
	ErrAlreadyExiting          = errors.New("validator already initiated an exit")
	ErrExitTooEarly            = errors.New("voluntary exit is not yet valid")
)
