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

package bls_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
)

func testKey(t *testing.T, seed byte) *bls.SecretKey {
	ikm := make([]byte, 32)
	ikm[0] = seed
	sk, err := bls.GenerateKey(ikm)
	require.NoError(t, err)
	return sk
}

func TestSignAndVerify(t *testing.T) {
	sk := testKey(t, 1)
	msg := []byte("beacon")
	sig := sk.Sign(msg)
	require.Len(t, sig, 96)
	require.Len(t, sk.PublicKey(), 48)

	ok, err := bls.Verify(sig, msg, sk.PublicKey())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = bls.Verify(sig, []byte("other"), sk.PublicKey())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = bls.Verify(sig, msg, testKey(t, 2).PublicKey())
	require.NoError(t, err)
	require.False(t, ok)

	_, err = bls.Verify(sig[:95], msg, sk.PublicKey())
	require.Error(t, err)
}

func TestSecretKeyRoundTrip(t *testing.T) {
	sk := testKey(t, 3)
	decoded, err := bls.NewSecretKeyFromBytes(sk.Bytes())
	require.NoError(t, err)
	require.Equal(t, sk.PublicKey(), decoded.PublicKey())

	_, err = bls.GenerateKey([]byte{1, 2, 3})
	require.ErrorIs(t, err, bls.ErrInvalidSecretKey)
}

func TestFastAggregateVerify(t *testing.T) {
	msg := []byte("attestation data root")
	var (
		sigs    [][]byte
		pubkeys [][]byte
	)
	for i := byte(1); i <= 4; i++ {
		sk := testKey(t, i)
		sigs = append(sigs, sk.Sign(msg))
		pubkeys = append(pubkeys, sk.PublicKey())
	}
	aggregate, err := bls.AggregateSignatures(sigs)
	require.NoError(t, err)

	ok, err := bls.VerifyAggregate(aggregate, msg, pubkeys)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = bls.VerifyAggregate(aggregate, msg, pubkeys[:3])
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = bls.VerifyAggregate(aggregate, msg, nil)
	require.NoError(t, err)
	require.False(t, ok)

	aggregatePk, err := bls.AggregatePublicKeys(pubkeys)
	require.NoError(t, err)
	ok, err = bls.Verify(aggregate, msg, aggregatePk)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = bls.AggregateSignatures(nil)
	require.ErrorIs(t, err, bls.ErrNoSignaturesToAggregate)
	_, err = bls.AggregatePublicKeys(nil)
	require.ErrorIs(t, err, bls.ErrNoPublicKeysToAggregate)
}

func TestVerifyMultipleSignatures(t *testing.T) {
	var sigs, msgs, pubkeys [][]byte
	for i := byte(1); i <= 3; i++ {
		sk := testKey(t, i)
		msg := []byte{i, i, i}
		sigs = append(sigs, sk.Sign(msg))
		msgs = append(msgs, msg)
		pubkeys = append(pubkeys, sk.PublicKey())
	}
	ok, err := bls.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	require.NoError(t, err)
	require.True(t, ok)

	msgs[1] = []byte("tampered")
	ok, err = bls.VerifyMultipleSignatures(sigs, msgs, pubkeys)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = bls.VerifyMultipleSignatures(sigs, msgs[:2], pubkeys)
	require.Error(t, err)
}

func TestInvalidPublicKey(t *testing.T) {
	_, err := bls.NewPublicKeyFromBytes(make([]byte, 47))
	require.Error(t, err)
	// all zero bytes are not a valid compressed point
	_, err = bls.NewPublicKeyFromBytes(make([]byte, 48))
	require.Error(t, err)
}
