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

package utils_test

import (
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

func TestSSZSnappy(t *testing.T) {
	checkpoint := &cltypes.Checkpoint{
		Epoch: 69,
		Root:  [32]byte{96},
	}
	encoded, err := utils.EncodeSSZSnappy(checkpoint)
	require.NoError(t, err)
	decoded := &cltypes.Checkpoint{}
	require.NoError(t, utils.DecodeSSZSnappy(decoded, encoded, 0))
	require.Equal(t, checkpoint, decoded)

	// a plain snappy block of the wrong ssz size
	require.Error(t, utils.DecodeSSZSnappy(decoded, snappy.Encode(nil, []byte{1, 2, 3}), 0))
	require.Error(t, utils.DecodeSSZSnappy(decoded, []byte{0xff, 0xff}, 0))
}

func TestXorBytes32(t *testing.T) {
	a := [32]byte{0xff, 0x0f}
	b := [32]byte{0x0f, 0x0f}
	require.Equal(t, [32]byte{0xf0, 0x00}, utils.XorBytes32(a, b))
}
