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

	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/raw"
)

var (
	ErrInvalidValidatorIndex     = raw.ErrInvalidValidatorIndex
	ErrGetBlockRootAtSlotFuture  = errors.New("GetBlockRootAtSlot: slot in the future")
	ErrGetBlockRootAtSlotTooOld  = errors.New("GetBlockRootAtSlot: slot too much far behind")
	ErrCommitteeIndexOutOfRange  = errors.New("committee index out of range")
	ErrInvalidAggregationBits    = errors.New("aggregation bits length does not match committee size")
	ErrEmptyIndexedAttestation   = errors.New("indexed attestation has no attesting indices")
	ErrUnsortedAttestingIndices  = errors.New("attesting indices are not sorted and unique")
	ErrTooManyAttestingIndices   = errors.New("too many attesting indices")
	ErrWithdrawableEpochOverflow = errors.New("withdrawable epoch is too big")
)
