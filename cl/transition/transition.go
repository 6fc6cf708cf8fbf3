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

// Package transition exposes the phase0 state transition function.
package transition

import (
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/machine"
)

// DefaultMachine verifies every signature and the post-state root.
var DefaultMachine machine.Interface = eth2.New(true)

// TransitionState advances s to the block slot and applies block. s is mutated in place,
// callers Copy it first to keep the pre-state.
func TransitionState(s *state.CachingBeaconState, block *cltypes.SignedBeaconBlock, fullValidation bool) error {
	return machine.TransitionState(eth2.New(fullValidation), s, block)
}

// ProcessSlots advances s to slot without applying a block.
func ProcessSlots(s *state.CachingBeaconState, slot uint64) error {
	return DefaultMachine.ProcessSlots(s, slot)
}
