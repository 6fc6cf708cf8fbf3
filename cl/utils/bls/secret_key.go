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

package bls

import (
	blst "github.com/supranational/blst/bindings/go"
)

// SecretKey signs messages under the eth2 ciphersuite.
type SecretKey struct {
	scalar *blst.SecretKey
}

// GenerateKey derives a secret key from at least 32 bytes of input keying material.
func GenerateKey(ikm []byte) (*SecretKey, error) {
	if len(ikm) < 32 {
		return nil, ErrInvalidSecretKey
	}
	sk := blst.KeyGen(ikm)
	if sk == nil {
		return nil, ErrInvalidSecretKey
	}
	return &SecretKey{scalar: sk}, nil
}

func NewSecretKeyFromBytes(b []byte) (*SecretKey, error) {
	sk := new(blst.SecretKey).Deserialize(b)
	if sk == nil {
		return nil, ErrInvalidSecretKey
	}
	return &SecretKey{scalar: sk}, nil
}

func (s *SecretKey) Bytes() []byte {
	return s.scalar.Serialize()
}

// PublicKey returns the 48 byte compressed public key.
func (s *SecretKey) PublicKey() []byte {
	return new(blst.P1Affine).From(s.scalar).Compress()
}

// Sign returns the 96 byte compressed signature of msg.
func (s *SecretKey) Sign(msg []byte) []byte {
	return new(blst.P2Affine).Sign(s.scalar, msg, eth2Curve).Compress()
}
