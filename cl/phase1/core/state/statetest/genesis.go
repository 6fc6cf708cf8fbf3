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

// Package statetest builds small deterministic beacon states for tests.
package statetest

import (
	"encoding/binary"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/fork"
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
	"github.com/ChainSafe/lodestar-sub010/cl/utils/bls"
)

// Eth1BlockHash is the eth1 block hash every test genesis is built from.
var Eth1BlockHash = [32]byte{0x42}

// Keys derives count secret keys, the i-th from the hash of i.
func Keys(count int) ([]*bls.SecretKey, error) {
	keys := make([]*bls.SecretKey, count)
	for i := range keys {
		var index [8]byte
		binary.LittleEndian.PutUint64(index[:], uint64(i))
		ikm := utils.Sha256(index[:])
		sk, err := bls.GenerateKey(ikm[:])
		if err != nil {
			return nil, err
		}
		keys[i] = sk
	}
	return keys, nil
}

// DepositData returns a deposit of amount for sk with a valid proof of possession.
func DepositData(cfg *clparams.BeaconChainConfig, sk *bls.SecretKey, amount uint64) (*cltypes.DepositData, error) {
	data := &cltypes.DepositData{Amount: amount}
	copy(data.PubKey[:], sk.PublicKey())
	data.WithdrawalCredentials = utils.Sha256(data.PubKey[:])
	data.WithdrawalCredentials[0] = 0
	if err := SignDepositData(cfg, sk, data); err != nil {
		return nil, err
	}
	return data, nil
}

// SignDepositData signs data in place with sk.
func SignDepositData(cfg *clparams.BeaconChainConfig, sk *bls.SecretKey, data *cltypes.DepositData) error {
	domain, err := fork.ComputeDomain(cfg.DomainDeposit[:], cfg.GenesisForkVersion.Bytes(), [32]byte{})
	if err != nil {
		return err
	}
	messageRoot, err := data.MessageHash()
	if err != nil {
		return err
	}
	signingRoot, err := fork.ComputeSigningRootFromRoot(messageRoot, domain)
	if err != nil {
		return err
	}
	copy(data.Signature[:], sk.Sign(signingRoot[:]))
	return nil
}

// Deposits wraps datas with proofs against the deposit tree as it was right after each of them was pushed.
func Deposits(cfg *clparams.BeaconChainConfig, datas []*cltypes.DepositData) ([]*cltypes.Deposit, error) {
	tree := merkle_tree.NewDepositTree(cfg.DepositContractTreeDepth)
	deposits := make([]*cltypes.Deposit, 0, len(datas))
	for i, data := range datas {
		leaf, err := data.HashSSZ()
		if err != nil {
			return nil, err
		}
		tree.Push(leaf)
		deposit, err := DepositAt(tree, uint64(i), data)
		if err != nil {
			return nil, err
		}
		deposits = append(deposits, deposit)
	}
	return deposits, nil
}

// DepositTreeOf returns the tree holding datas, for deposits included after genesis.
func DepositTreeOf(cfg *clparams.BeaconChainConfig, datas []*cltypes.DepositData) (*merkle_tree.DepositTree, error) {
	tree := merkle_tree.NewDepositTree(cfg.DepositContractTreeDepth)
	for _, data := range datas {
		leaf, err := data.HashSSZ()
		if err != nil {
			return nil, err
		}
		tree.Push(leaf)
	}
	return tree, nil
}

// DepositAt returns the deposit of data proven against the current shape of tree.
func DepositAt(tree *merkle_tree.DepositTree, index uint64, data *cltypes.DepositData) (*cltypes.Deposit, error) {
	proof, err := tree.Proof(index)
	if err != nil {
		return nil, err
	}
	deposit := &cltypes.Deposit{Proof: solid.NewHashVector(cltypes.DepositProofLength), Data: data}
	for j, node := range proof {
		deposit.Proof.Set(j, node)
	}
	return deposit, nil
}

// GenesisDepositDatas returns max balance deposits for keys.
func GenesisDepositDatas(cfg *clparams.BeaconChainConfig, keys []*bls.SecretKey) ([]*cltypes.DepositData, error) {
	datas := make([]*cltypes.DepositData, len(keys))
	for i, sk := range keys {
		data, err := DepositData(cfg, sk, cfg.MaxEffectiveBalance)
		if err != nil {
			return nil, err
		}
		datas[i] = data
	}
	return datas, nil
}

// Genesis builds a genesis state with count active validators, returning their keys by validator index.
func Genesis(cfg *clparams.BeaconChainConfig, count int) (*state.CachingBeaconState, []*bls.SecretKey, error) {
	keys, err := Keys(count)
	if err != nil {
		return nil, nil, err
	}
	datas, err := GenesisDepositDatas(cfg, keys)
	if err != nil {
		return nil, nil, err
	}
	deposits, err := Deposits(cfg, datas)
	if err != nil {
		return nil, nil, err
	}
	s, err := state.InitializeBeaconStateFromEth1(cfg, Eth1BlockHash, cfg.MinGenesisTime, deposits)
	if err != nil {
		return nil, nil, err
	}
	return s, keys, nil
}
