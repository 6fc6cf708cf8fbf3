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
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	blst "github.com/supranational/blst/bindings/go"
)

const (
	publicKeyLength = 48
	pkCacheSize     = 1 << 16
)

// PublicKey is a decompressed, subgroup checked G1 point.
type PublicKey = *blst.P1Affine

var pkCache *lru.Cache[[publicKeyLength]byte, *blst.P1Affine]

func init() {
	var err error
	if pkCache, err = lru.New[[publicKeyLength]byte, *blst.P1Affine](pkCacheSize); err != nil {
		panic(err)
	}
}

// NewPublicKeyFromBytes decompresses and validates a 48 byte public key.
func NewPublicKeyFromBytes(b []byte) (PublicKey, error) {
	return newPublicKeyFromBytes(b, true)
}

func newPublicKeyFromBytes(b []byte, cache bool) (PublicKey, error) {
	if len(b) != publicKeyLength {
		return nil, fmt.Errorf("bls(public_key): invalid key length. should be %d", publicKeyLength)
	}
	var key [publicKeyLength]byte
	copy(key[:], b)
	if cache {
		if pk, ok := pkCache.Get(key); ok {
			return pk, nil
		}
	}
	pk := new(blst.P1Affine).Uncompress(b)
	if pk == nil {
		return nil, ErrDeserializePublicKey
	}
	// KeyValidate checks both the subgroup and infinity.
	if !pk.KeyValidate() {
		return nil, ErrInfinitePublicKey
	}
	if cache {
		pkCache.Add(key, pk)
	}
	return pk, nil
}

// AggregatePublicKeys sums the given compressed public keys into one compressed key.
func AggregatePublicKeys(pubKeys [][]byte) ([]byte, error) {
	if len(pubKeys) == 0 {
		return nil, ErrNoPublicKeysToAggregate
	}
	affines := make([]*blst.P1Affine, 0, len(pubKeys))
	for _, b := range pubKeys {
		pk, err := NewPublicKeyFromBytes(b)
		if err != nil {
			return nil, err
		}
		affines = append(affines, pk)
	}
	agg := new(blst.P1Aggregate)
	// keys were validated on decompression
	if !agg.Aggregate(affines, false) {
		return nil, ErrDeserializePublicKey
	}
	return agg.ToAffine().Compress(), nil
}
