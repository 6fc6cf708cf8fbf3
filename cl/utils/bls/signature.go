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
	"crypto/rand"
	"fmt"
	"sync"

	blst "github.com/supranational/blst/bindings/go"
)

const (
	signatureLength = 96
	scalarBytes     = 32
	randBitsEntropy = 64
)

// Proof of possession ciphersuite over G2 signatures.
var eth2Curve = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")

func signatureFromBytes(b []byte) (*blst.P2Affine, error) {
	if len(b) != signatureLength {
		return nil, fmt.Errorf("bls(signature): invalid signature length. should be %d", signatureLength)
	}
	sig := new(blst.P2Affine).Uncompress(b)
	if sig == nil {
		return nil, ErrDeserializeSignature
	}
	// aggregates may be the point at infinity, only the subgroup is checked
	if !sig.SigValidate(false) {
		return nil, ErrNotGroupSignature
	}
	return sig, nil
}

// Verify checks a signature over msg against one compressed public key.
func Verify(signature []byte, msg []byte, publicKeyBytes []byte) (bool, error) {
	sig, err := signatureFromBytes(signature)
	if err != nil {
		return false, err
	}
	pk, err := NewPublicKeyFromBytes(publicKeyBytes)
	if err != nil {
		return false, err
	}
	return sig.Verify(false, pk, false, msg, eth2Curve), nil
}

// VerifyAggregate is FastAggregateVerify: one message signed by every key. No keys never verifies.
func VerifyAggregate(signature []byte, msg []byte, publicKeysBytes [][]byte) (bool, error) {
	if len(publicKeysBytes) == 0 {
		return false, nil
	}
	sig, err := signatureFromBytes(signature)
	if err != nil {
		return false, err
	}
	pks := make([]*blst.P1Affine, len(publicKeysBytes))
	for i, b := range publicKeysBytes {
		if pks[i], err = NewPublicKeyFromBytes(b); err != nil {
			return false, err
		}
	}
	return sig.FastAggregateVerify(false, pks, msg, eth2Curve), nil
}

// VerifyMultipleSignatures checks n (signature, message, key) triples with a single multi-pairing,
// each triple weighted by a random 64 bit scalar so invalid signatures cannot cancel out.
// A false result does not tell which triple is wrong.
func VerifyMultipleSignatures(sigs [][]byte, msgs [][]byte, pubKeys [][]byte) (bool, error) {
	if len(sigs) == 0 || len(pubKeys) == 0 {
		return false, nil
	}
	length := len(sigs)
	if length != len(pubKeys) || length != len(msgs) {
		return false, fmt.Errorf("provided signatures, pubkeys and messages have differing lengths. S: %d, P: %d,M %d",
			length, len(pubKeys), len(msgs))
	}
	rawSigs := new(blst.P2Affine).BatchUncompress(sigs)
	if rawSigs == nil {
		return false, ErrDeserializeSignature
	}
	pks := make([]*blst.P1Affine, length)
	rawMsgs := make([]blst.Message, length)
	for i := range pks {
		pk, err := newPublicKeyFromBytes(pubKeys[i], false)
		if err != nil {
			return false, err
		}
		pks[i] = pk
		rawMsgs[i] = msgs[i]
	}

	var randLock sync.Mutex
	randFunc := func(scalar *blst.Scalar) {
		var rbytes [scalarBytes]byte
		randLock.Lock()
		_, _ = rand.Read(rbytes[:])
		randLock.Unlock()
		// never zero, the scalar is read big endian
		rbytes[len(rbytes)-1] |= 0x01
		scalar.FromBEndian(rbytes[:])
	}
	// signatures are group checked here, keys were on decompression
	return new(blst.P2Affine).MultipleAggregateVerify(rawSigs, true, pks, false, rawMsgs, eth2Curve, randFunc, randBitsEntropy), nil
}

// AggregateSignatures sums compressed signatures into one compressed signature.
func AggregateSignatures(sigs [][]byte) ([]byte, error) {
	if len(sigs) == 0 {
		return nil, ErrNoSignaturesToAggregate
	}
	affines := make([]*blst.P2Affine, len(sigs))
	for i, b := range sigs {
		sig, err := signatureFromBytes(b)
		if err != nil {
			return nil, err
		}
		affines[i] = sig
	}
	agg := new(blst.P2Aggregate)
	agg.Aggregate(affines, false)
	return agg.ToAffine().Compress(), nil
}
