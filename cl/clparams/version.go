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

package clparams

import "fmt"

type StateVersion uint8

// Phase0Version is the only state layout this engine transitions.
const Phase0Version StateVersion = 0

// StringToClVersion converts the string to the state version.
func StringToClVersion(s string) (StateVersion, error) {
	switch s {
	case "phase0":
		return Phase0Version, nil
	default:
		return 0, fmt.Errorf("unsupported fork version %s", s)
	}
}

func ClVersionToString(s StateVersion) string {
	switch s {
	case Phase0Version:
		return "phase0"
	default:
		panic("unsupported fork version")
	}
}

func (s StateVersion) String() string {
	return ClVersionToString(s)
}
