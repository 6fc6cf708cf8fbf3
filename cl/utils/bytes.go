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

package utils

import (
	"github.com/golang/snappy"

	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

// EncodeSSZSnappy is the ssz_snappy file encoding: the SSZ bytes of data in a snappy block.
func EncodeSSZSnappy(data ssz.Marshaler) ([]byte, error) {
	enc, err := data.EncodeSSZ(make([]byte, 0, data.EncodingSizeSSZ()))
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, enc), nil
}

func DecodeSSZSnappy(dst ssz.Unmarshaler, src []byte, version int) error {
	dec, err := snappy.Decode(nil, src)
	if err != nil {
		return err
	}
	return dst.DecodeSSZ(dec, version)
}

func XorBytes32(a, b [32]byte) (out [32]byte) {
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return
}
