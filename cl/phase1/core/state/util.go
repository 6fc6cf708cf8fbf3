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

package state

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/fork"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/lru"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
	"golang.org/x/exp/slices"
)

var ErrInvalidIndexedAttestationSignature = errors.New("invalid indexed attestation signature")

func copyLRU[K comparable, V any](dst *lru.Cache[K, V], src *lru.Cache[K, V]) *lru.Cache[K, V] {
	dst.Purge()
	for _, key := range src.Keys() {
		val, has := src.Peek(key)
		if !has {
			continue
		}
		dst.Add(key, val)
	}
	return dst
}

// GetIndexedAttestation sorts attestingIndicies in place and wraps them with the attestation data.
func GetIndexedAttestation(attestation *cltypes.Attestation, attestingIndicies []uint64) *cltypes.IndexedAttestation {
	slices.Sort(attestingIndicies)
	return &cltypes.IndexedAttestation{
		AttestingIndices: solid.NewUint64ListSSZFromSlice(cltypes.MaxValidatorsPerCommittee, attestingIndicies),
		Data:             attestation.Data,
		Signature:        attestation.Signature,
	}
}

func ValidatorFromDeposit(conf *clparams.BeaconChainConfig, deposit *cltypes.DepositData) *cltypes.Validator {
	amount := deposit.Amount
	effectiveBalance := utils.Min64(amount-amount%conf.EffectiveBalanceIncrement, conf.MaxEffectiveBalance)

	return &cltypes.Validator{
		PublicKey:                  deposit.PubKey,
		WithdrawalCredentials:      deposit.WithdrawalCredentials,
		EffectiveBalance:           effectiveBalance,
		ActivationEligibilityEpoch: conf.FarFutureEpoch,
		ActivationEpoch:            conf.FarFutureEpoch,
		ExitEpoch:                  conf.FarFutureEpoch,
		WithdrawableEpoch:          conf.FarFutureEpoch,
	}
}

// IsValidIndexedAttestationShape checks that indices are non-empty, sorted, unique and bounded.
func IsValidIndexedAttestationShape(att *cltypes.IndexedAttestation) error {
	inds := att.AttestingIndices.Elements()
	if len(inds) == 0 {
		return ErrEmptyIndexedAttestation
	}
	if len(inds) > cltypes.MaxValidatorsPerCommittee {
		return fmt.Errorf("%w: %d", ErrTooManyAttestingIndices, len(inds))
	}
	if !utils.IsSortedSet(inds) {
		return ErrUnsortedAttestingIndices
	}
	return nil
}

// IndexedAttestationSignatureSet returns the aggregated public key and signing root an
// indexed attestation's signature must verify against.
func (b *CachingBeaconState) IndexedAttestationSignatureSet(att *cltypes.IndexedAttestation) (aggregatedPubkey []byte, signingRoot [32]byte, err error) {
	inds := att.AttestingIndices.Elements()
	pks := make([][]byte, 0, len(inds))
	for _, v := range inds {
		publicKey, err := b.ValidatorPublicKey(int(v))
		if err != nil {
			return nil, [32]byte{}, err
		}
		pks = append(pks, publicKey[:])
	}
	domain, err := b.GetDomain(b.BeaconConfig().DomainBeaconAttester, att.Data.Target.Epoch)
	if err != nil {
		return nil, [32]byte{}, fmt.Errorf("unable to get the domain: %w", err)
	}
	signingRoot, err = fork.ComputeSigningRoot(att.Data, domain)
	if err != nil {
		return nil, [32]byte{}, fmt.Errorf("unable to get signing root: %w", err)
	}
	aggregatedPubkey, err = bls.AggregatePublicKeys(pks)
	if err != nil {
		return nil, [32]byte{}, err
	}
	return aggregatedPubkey, signingRoot, nil
}

// IsValidIndexedAttestation checks the shape of att and, if verifySignature, its aggregate signature.
func (b *CachingBeaconState) IsValidIndexedAttestation(att *cltypes.IndexedAttestation, verifySignature bool) error {
	if err := IsValidIndexedAttestationShape(att); err != nil {
		return err
	}
	for _, index := range att.AttestingIndices.Elements() {
		if index >= uint64(b.ValidatorLength()) {
			return fmt.Errorf("%w: attesting index %d", ErrInvalidValidatorIndex, index)
		}
	}
	if !verifySignature {
		return nil
	}
	aggregatedPubkey, signingRoot, err := b.IndexedAttestationSignatureSet(att)
	if err != nil {
		return err
	}
	valid, err := bls.Verify(att.Signature[:], signingRoot[:], aggregatedPubkey)
	if err != nil {
		return fmt.Errorf("error while validating signature: %w", err)
	}
	if !valid {
		return ErrInvalidIndexedAttestationSignature
	}
	return nil
}
