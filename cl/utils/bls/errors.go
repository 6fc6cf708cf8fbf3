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

import "errors"

var (
	ErrDeserializeSignature    = errors.New("bls(signature): could not deserialize signature")
	ErrNotGroupSignature       = errors.New("bls(signature): signature is not in the correct subgroup")
	ErrNoSignaturesToAggregate = errors.New("bls(signature): no signatures to aggregate")
	ErrDeserializePublicKey    = errors.New("bls(public_key): could not deserialize public key")
	ErrInfinitePublicKey       = errors.New("bls(public_key): public key is infinite")
	ErrNoPublicKeysToAggregate = errors.New("bls(public_key): no public keys to aggregate")
	ErrInvalidSecretKey        = errors.New("bls(secret_key): invalid secret key")
)
