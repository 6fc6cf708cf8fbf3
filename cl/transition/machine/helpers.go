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

	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
)

// maximumDeposits is the number of deposits the next block must carry.
func maximumDeposits(s *state.CachingBeaconState) (uint64, error) {
	depositCount, depositIndex := s.Eth1Data().DepositCount, s.Eth1DepositIndex()
	if depositCount < depositIndex {
		return 0, fmt.Errorf("%w: deposit count %d behind deposit index %d", ErrInvalidDepositCount, depositCount, depositIndex)
	}
	return min(s.BeaconConfig().MaxDeposits, depositCount-depositIndex), nil
}
