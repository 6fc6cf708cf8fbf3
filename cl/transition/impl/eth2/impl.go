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

import "github.com/ChainSafe/lodestar-sub010/cl/transition/machine"

var _ machine.Interface = (*Impl)(nil)

// Impl runs the phase0 processors. With FullValidation unset the block and
// operation signatures and the post-state root are trusted, deposit proofs of
// possession are always checked.
type Impl struct {
	FullValidation bool
}

// New returns the phase0 state transition machine.
func New(fullValidation bool) *Impl {
	return &Impl{FullValidation: fullValidation}
}
