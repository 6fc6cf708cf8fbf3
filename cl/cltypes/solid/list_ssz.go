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

package solid

import (
	"github.com/ChainSafe/lodestar-sub010/cl/merkle_tree"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

// ListSSZ is a bounded SSZ list of containers.
type ListSSZ[T ssz.ObjectSSZ] struct {
	list  []T
	limit int
	newFn func() T
}

func NewListSSZ[T ssz.ObjectSSZ](limit int, newFn func() T) *ListSSZ[T] {
	return &ListSSZ[T]{limit: limit, newFn: newFn}
}

func NewListSSZFromSlice[T ssz.ObjectSSZ](list []T, limit int, newFn func() T) *ListSSZ[T] {
	return &ListSSZ[T]{list: list, limit: limit, newFn: newFn}
}

func (l *ListSSZ[T]) Static() bool {
	return false
}

func (l *ListSSZ[T]) elementsStatic() bool {
	return l.newFn().Static()
}

func (l *ListSSZ[T]) EncodeSSZ(buf []byte) ([]byte, error) {
	if l.elementsStatic() {
		return ssz.EncodeStaticList(buf, l.list)
	}
	return ssz.EncodeDynamicList(buf, l.list)
}

func (l *ListSSZ[T]) DecodeSSZ(buf []byte, version int) (err error) {
	sample := l.newFn()
	if sample.Static() {
		l.list, err = ssz.DecodeStaticList(buf, sample.EncodingSizeSSZ(), uint64(l.limit), version, l.newFn)
	} else {
		l.list, err = ssz.DecodeDynamicList(buf, uint64(l.limit), version, l.newFn)
	}
	return
}

func (l *ListSSZ[T]) EncodingSizeSSZ() (size int) {
	static := l.elementsStatic()
	for _, element := range l.list {
		if !static {
			size += ssz.BytesPerLengthOffset
		}
		size += element.EncodingSizeSSZ()
	}
	return
}

func (l *ListSSZ[T]) HashSSZ() ([32]byte, error) {
	return merkle_tree.ListObjectSSZRoot(l.list, uint64(l.limit))
}

func (l *ListSSZ[T]) Get(index int) T {
	return l.list[index]
}

func (l *ListSSZ[T]) Set(index int, v T) {
	l.list[index] = v
}

func (l *ListSSZ[T]) Append(v T) {
	l.list = append(l.list, v)
}

func (l *ListSSZ[T]) Clear() {
	l.list = nil
}

func (l *ListSSZ[T]) Len() int {
	return len(l.list)
}

func (l *ListSSZ[T]) Limit() int {
	return l.limit
}

// Elements exposes the backing slice, callers must not append to it.
func (l *ListSSZ[T]) Elements() []T {
	return l.list
}

func (l *ListSSZ[T]) Range(fn func(index int, value T, length int) bool) {
	for i, v := range l.list {
		if !fn(i, v, len(l.list)) {
			return
		}
	}
}

// Copy returns a new list sharing the elements.
func (l *ListSSZ[T]) Copy() *ListSSZ[T] {
	cpy := &ListSSZ[T]{limit: l.limit, newFn: l.newFn}
	if l.list != nil {
		cpy.list = make([]T, len(l.list))
		copy(cpy.list, l.list)
	}
	return cpy
}
