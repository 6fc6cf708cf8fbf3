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
	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/lru"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state/raw"
)

const (
	shuffledSetsCacheSize     = 5
	activeValidatorsCacheSize = 5
	proposerCacheSize         = 64
)

// exitQueue tracks the furthest scheduled exit epoch and how many validators leave at it.
type exitQueue struct {
	epoch uint64
	churn uint64
}

// CachingBeaconState is a cached wrapper around a raw BeaconState. Every cache is
// derived data: dropping any of them never changes a result. Slices returned from
// the caches are shared and must be treated as read only.
type CachingBeaconState struct {
	// embedded BeaconState
	*raw.BeaconState

	// Internals
	publicKeyIndicies map[[48]byte]uint64
	// Caches
	activeValidatorsCache *lru.Cache[uint64, []uint64]
	shuffledSetsCache     *lru.Cache[[32]byte, []uint64]
	proposerCache         *lru.Cache[[32]byte, uint64]

	totalActiveBalanceCache map[uint64]uint64
	exitQueueCache          *exitQueue
}

func New(cfg *clparams.BeaconChainConfig) *CachingBeaconState {
	state := &CachingBeaconState{
		BeaconState: raw.New(cfg),
	}
	state.InitBeaconState()
	return state
}

func NewFromRaw(r *raw.BeaconState) *CachingBeaconState {
	state := &CachingBeaconState{
		BeaconState: r,
	}
	state.InitBeaconState()
	return state
}

func (b *CachingBeaconState) initCaches() {
	var err error
	// sizes are constant and positive, construction cannot fail
	if b.activeValidatorsCache, err = lru.New[uint64, []uint64]("beacon_active_validators_cache", activeValidatorsCacheSize); err != nil {
		panic(err)
	}
	if b.shuffledSetsCache, err = lru.New[[32]byte, []uint64]("beacon_shuffled_sets_cache", shuffledSetsCacheSize); err != nil {
		panic(err)
	}
	if b.proposerCache, err = lru.New[[32]byte, uint64]("beacon_proposer_cache", proposerCacheSize); err != nil {
		panic(err)
	}
	b.totalActiveBalanceCache = make(map[uint64]uint64)
	b.exitQueueCache = nil
}

// InitBeaconState rebuilds the public key index and resets every cache.
// Call it after the raw state was modified behind the cache's back, e.g. by DecodeSSZ.
func (b *CachingBeaconState) InitBeaconState() {
	b.publicKeyIndicies = make(map[[48]byte]uint64, b.ValidatorLength())
	b.ForEachValidator(func(validator *cltypes.Validator, i, total int) bool {
		b.publicKeyIndicies[validator.PublicKey] = uint64(i)
		return true
	})
	b.initCaches()
}

// DecodeSSZ decodes the raw state and rebuilds the caches.
func (b *CachingBeaconState) DecodeSSZ(buf []byte, version int) error {
	if err := b.BeaconState.DecodeSSZ(buf, version); err != nil {
		return err
	}
	b.InitBeaconState()
	return nil
}

// Copy returns an independent state, caches included.
func (b *CachingBeaconState) Copy() *CachingBeaconState {
	cpy := &CachingBeaconState{
		BeaconState:       b.BeaconState.Copy(),
		publicKeyIndicies: make(map[[48]byte]uint64, len(b.publicKeyIndicies)),
	}
	for k, v := range b.publicKeyIndicies {
		cpy.publicKeyIndicies[k] = v
	}
	cpy.initCaches()
	copyLRU(cpy.activeValidatorsCache, b.activeValidatorsCache)
	copyLRU(cpy.shuffledSetsCache, b.shuffledSetsCache)
	copyLRU(cpy.proposerCache, b.proposerCache)
	for k, v := range b.totalActiveBalanceCache {
		cpy.totalActiveBalanceCache[k] = v
	}
	if b.exitQueueCache != nil {
		queue := *b.exitQueueCache
		cpy.exitQueueCache = &queue
	}
	return cpy
}

// registryChanged drops every cache derived from activation/exit epochs or effective balances.
func (b *CachingBeaconState) registryChanged() {
	b.activeValidatorsCache.Purge()
	b.shuffledSetsCache.Purge()
	b.proposerCache.Purge()
	clear(b.totalActiveBalanceCache)
}

func (b *CachingBeaconState) balanceWeightsChanged() {
	b.proposerCache.Purge()
	clear(b.totalActiveBalanceCache)
}

func (b *CachingBeaconState) AddValidator(validator *cltypes.Validator, balance uint64) {
	b.publicKeyIndicies[validator.PublicKey] = uint64(b.ValidatorLength())
	b.BeaconState.AddValidator(validator, balance)
	b.registryChanged()
}

func (b *CachingBeaconState) SetActivationEpochForValidatorAtIndex(index int, epoch uint64) error {
	if err := b.BeaconState.SetActivationEpochForValidatorAtIndex(index, epoch); err != nil {
		return err
	}
	b.registryChanged()
	return nil
}

func (b *CachingBeaconState) SetExitEpochForValidatorAtIndex(index int, epoch uint64) error {
	if err := b.BeaconState.SetExitEpochForValidatorAtIndex(index, epoch); err != nil {
		return err
	}
	b.registryChanged()
	b.exitQueueCache = nil
	return nil
}

func (b *CachingBeaconState) SetEffectiveBalanceForValidatorAtIndex(index int, balance uint64) error {
	if err := b.BeaconState.SetEffectiveBalanceForValidatorAtIndex(index, balance); err != nil {
		return err
	}
	b.balanceWeightsChanged()
	return nil
}

// ValidatorIndexByPubkey looks a validator up by public key.
func (b *CachingBeaconState) ValidatorIndexByPubkey(key [48]byte) (uint64, bool) {
	val, ok := b.publicKeyIndicies[key]
	return val, ok
}
