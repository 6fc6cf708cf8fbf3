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

package ssz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

// pair is a static two-field container.
type pair struct {
	a, b uint64
}

func (p *pair) EncodeSSZ(dst []byte) ([]byte, error) { return ssz.MarshalSSZ(dst, p.a, p.b) }
func (p *pair) DecodeSSZ(buf []byte, v int) error   { return ssz.UnmarshalSSZ(buf, v, &p.a, &p.b) }
func (p *pair) EncodingSizeSSZ() int                { return 16 }
func (p *pair) Static() bool                        { return true }

// blob is a variable length byte list.
type blob struct {
	data []byte
}

func (b *blob) EncodeSSZ(dst []byte) ([]byte, error) { return append(dst, b.data...), nil }
func (b *blob) DecodeSSZ(buf []byte, _ int) error {
	b.data = append([]byte{}, buf...)
	return nil
}
func (b *blob) EncodingSizeSSZ() int { return len(b.data) }
func (b *blob) Static() bool         { return false }

func TestMarshalStaticContainer(t *testing.T) {
	p := &pair{a: 1, b: 2}
	enc, err := p.EncodeSSZ(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0}, enc)

	decoded := &pair{}
	require.NoError(t, decoded.DecodeSSZ(enc, 0))
	require.Equal(t, p, decoded)

	require.ErrorIs(t, decoded.DecodeSSZ(enc[:15], 0), ssz.ErrLowBufferSize)
	require.ErrorIs(t, decoded.DecodeSSZ(append(enc, 0), 0), ssz.ErrLowBufferSize)
}

func TestMarshalDynamicContainer(t *testing.T) {
	flag := true
	first, second := &blob{data: []byte{0xaa, 0xbb}}, &blob{data: []byte{0xcc}}
	enc, err := ssz.MarshalSSZ(nil, uint64(7), first, flag, second)
	require.NoError(t, err)
	// 8 (uint64) + 4 (offset) + 1 (bool) + 4 (offset) = 17 bytes of fixed part
	require.Equal(t, uint32(17), ssz.DecodeOffset(enc[8:]))
	require.Equal(t, uint32(19), ssz.DecodeOffset(enc[13:]))
	require.Len(t, enc, 20)

	var (
		n       uint64
		gotFlag bool
	)
	a, b := &blob{}, &blob{}
	require.NoError(t, ssz.UnmarshalSSZ(enc, 0, &n, a, &gotFlag, b))
	require.Equal(t, uint64(7), n)
	require.True(t, gotFlag)
	require.Equal(t, first.data, a.data)
	require.Equal(t, second.data, b.data)

	broken := append([]byte{}, enc...)
	ssz.EncodeOffset(broken[8:], 16)
	require.ErrorIs(t, ssz.UnmarshalSSZ(broken, 0, &n, a, &gotFlag, b), ssz.ErrBadOffset)

	broken = append([]byte{}, enc...)
	broken[12] = 2
	require.ErrorIs(t, ssz.UnmarshalSSZ(broken, 0, &n, a, &gotFlag, b), ssz.ErrBadBoolean)
}

func TestStaticList(t *testing.T) {
	list := []*pair{{1, 2}, {3, 4}, {5, 6}}
	enc, err := ssz.EncodeStaticList(nil, list)
	require.NoError(t, err)
	require.Len(t, enc, 48)

	decoded, err := ssz.DecodeStaticList(enc, 16, 3, 0, func() *pair { return &pair{} })
	require.NoError(t, err)
	require.Equal(t, list, decoded)

	_, err = ssz.DecodeStaticList(enc, 16, 2, 0, func() *pair { return &pair{} })
	require.ErrorIs(t, err, ssz.ErrTooBigList)
	_, err = ssz.DecodeStaticList(enc[:47], 16, 3, 0, func() *pair { return &pair{} })
	require.ErrorIs(t, err, ssz.ErrBufferNotRounded)
}

func TestDynamicList(t *testing.T) {
	list := []*blob{{data: []byte{1}}, {data: []byte{}}, {data: []byte{2, 3, 4}}}
	enc, err := ssz.EncodeDynamicList(nil, list)
	require.NoError(t, err)
	require.Len(t, enc, 12+4)

	decoded, err := ssz.DecodeDynamicList(enc, 8, 0, func() *blob { return &blob{} })
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	for i := range list {
		require.Equal(t, list[i].data, decoded[i].data)
	}

	_, err = ssz.DecodeDynamicList(enc, 2, 0, func() *blob { return &blob{} })
	require.ErrorIs(t, err, ssz.ErrTooBigList)

	empty, err := ssz.DecodeDynamicList(nil, 2, 0, func() *blob { return &blob{} })
	require.NoError(t, err)
	require.Empty(t, empty)
}
