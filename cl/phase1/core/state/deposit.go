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
	"fmt"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/fork"
	"github.com/ChainSafe/lodestar-sub010/cl/monitor"
	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
	"github.com/ledgerwatch/log/v3"
)

// IsValidDepositSignature checks the deposit proof of possession. The domain is
// fork agnostic: genesis fork version and an empty genesis validators root.
func IsValidDepositSignature(b *CachingBeaconState, data *cltypes.DepositData) (bool, error) {
	domain, err := fork.ComputeDomain(b.BeaconConfig().DomainDeposit[:], b.BeaconConfig().GenesisForkVersion.Bytes(), [32]byte{})
	if err != nil {
		return false, err
	}
	messageRoot, err := data.MessageHash()
	if err != nil {
		return false, err
	}
	signingRoot, err := fork.ComputeSigningRootFromRoot(messageRoot, domain)
	if err != nil {
		return false, err
	}
	valid, err := bls.Verify(data.Signature[:], signingRoot[:], data.PubKey[:])
	if err != nil {
		// undecodable keys or signatures are just invalid proofs of possession
		return false, nil
	}
	return valid, nil
}

// ApplyDeposit credits an existing validator or registers a new one. A new public key
// with an invalid signature is dropped without error; added reports whether the
// deposit changed the state.
func (b *CachingBeaconState) ApplyDeposit(data *cltypes.DepositData) (added bool, err error) {
	if validatorIndex, ok := b.ValidatorIndexByPubkey(data.PubKey); ok {
		return true, IncreaseBalance(b, validatorIndex, data.Amount)
	}
	valid, err := IsValidDepositSignature(b, data)
	if err != nil {
		return false, err
	}
	if !valid {
		monitor.ObserveDroppedDeposit()
		log.Debug("Dropped deposit with invalid signature", "pubkey", fmt.Sprintf("%x", data.PubKey), "depositIndex", b.Eth1DepositIndex())
		return false, nil
	}
	b.AddValidator(ValidatorFromDeposit(b.BeaconConfig(), data), data.Amount)
	return true, nil
}
