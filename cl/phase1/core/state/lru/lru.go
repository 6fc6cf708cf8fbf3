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

package lru

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "beacon",
	Subsystem: "cache",
	Name:      "lookups",
	Help:      "state cache lookups by cache name and result",
}, []string{"cache", "result"})

func init() {
	prometheus.MustRegister(lookups)
}

// Cache is a wrapper around hashicorp lru but with metric for Get
type Cache[K comparable, V any] struct {
	*lru.Cache[K, V]
	hit  prometheus.Counter
	miss prometheus.Counter
}

func NewWithEvict[K comparable, V any](metricName string, size int, fn func(K, V)) (*Cache[K, V], error) {
	v, err := lru.NewWithEvict(size, fn)
	if err != nil {
		return nil, fmt.Errorf("lru(%s): %w", metricName, err)
	}
	return &Cache[K, V]{
		Cache: v,
		hit:   lookups.WithLabelValues(metricName, "hit"),
		miss:  lookups.WithLabelValues(metricName, "miss"),
	}, nil
}

func New[K comparable, V any](metricName string, size int) (*Cache[K, V], error) {
	return NewWithEvict[K, V](metricName, size, nil)
}

func (c *Cache[K, V]) Get(k K) (V, bool) {
	v, ok := c.Cache.Get(k)
	if ok {
		c.hit.Inc()
	} else {
		c.miss.Inc()
	}
	return v, ok
}
