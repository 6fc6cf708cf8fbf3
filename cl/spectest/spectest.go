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

// Package spectest runs consensus test vectors laid out as
// <config>/<fork>/<runner>/<handler>/<suite>/<case>.
package spectest

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

const (
	PreSsz  = "pre.ssz_snappy"
	PostSsz = "post.ssz_snappy"
	MetaYml = "meta.yaml"
)

// Phase0 is the only fork the runner knows.
const Phase0 = "phase0"

type TestCase struct {
	ConfigName    string
	ForkPhaseName string
	RunnerName    string
	HandlerName   string
	SuiteName     string
	CaseName      string
}

func (c TestCase) Version() int {
	return 0
}

func (c TestCase) BeaconConfig() (*clparams.BeaconChainConfig, error) {
	return clparams.GetConfigByPreset(c.ConfigName)
}

func (c TestCase) String() string {
	return path.Join(c.ConfigName, c.ForkPhaseName, c.RunnerName, c.HandlerName, c.SuiteName, c.CaseName)
}

type Handler interface {
	Run(t *testing.T, root fs.FS, c TestCase) error
}

type HandlerFunc func(t *testing.T, root fs.FS, c TestCase) error

func (h HandlerFunc) Run(t *testing.T, root fs.FS, c TestCase) error {
	return h(t, root, c)
}

// Format maps "<runner>/<handler>" to the handler running its cases.
type Format map[string]Handler

func (f Format) Add(runner, handler string, h Handler) Format {
	f[runner+"/"+handler] = h
	return f
}

// ReadTestCases lists every case directory under root.
func ReadTestCases(root fs.FS) (out []TestCase, err error) {
	err = fs.WalkDir(root, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		parts := strings.Split(p, "/")
		if len(parts) < 6 {
			return nil
		}
		out = append(out, TestCase{
			ConfigName:    parts[0],
			ForkPhaseName: parts[1],
			RunnerName:    parts[2],
			HandlerName:   parts[3],
			SuiteName:     parts[4],
			CaseName:      parts[5],
		})
		return fs.SkipDir
	})
	return out, err
}

// RunCases runs every phase0 case under root that format has a handler for.
func RunCases(t *testing.T, format Format, root fs.FS) {
	cases, err := ReadTestCases(root)
	if err != nil {
		t.Fatalf("reading test cases: %v", err)
	}
	for _, c := range cases {
		if c.ForkPhaseName != Phase0 {
			continue
		}
		handler, ok := format[c.RunnerName+"/"+c.HandlerName]
		if !ok {
			continue
		}
		caseRoot, err := fs.Sub(root, c.String())
		if err != nil {
			t.Fatalf("case %s: %v", c, err)
		}
		t.Run(c.String(), func(t *testing.T) {
			if err := handler.Run(t, caseRoot, c); err != nil {
				t.Fatalf("case %s: %v", c, err)
			}
		})
	}
}

// ReadSsz decodes the snappy framed ssz file name into obj.
func ReadSsz(root fs.FS, version int, name string, obj ssz.Unmarshaler) error {
	data, err := fs.ReadFile(root, name)
	if err != nil {
		return err
	}
	return utils.DecodeSSZSnappy(obj, data, version)
}

func ReadYml(root fs.FS, name string, obj any) error {
	data, err := fs.ReadFile(root, name)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, obj)
}

func ReadBeaconState(root fs.FS, c TestCase, name string) (*state.CachingBeaconState, error) {
	cfg, err := c.BeaconConfig()
	if err != nil {
		return nil, err
	}
	s := state.New(cfg)
	if err := ReadSsz(root, c.Version(), name, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadPostState reads post.ssz_snappy. A nil state with a nil error means the case
// expects the transition to fail.
func ReadPostState(root fs.FS, c TestCase) (*state.CachingBeaconState, error) {
	s, err := ReadBeaconState(root, c, PostSsz)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return s, err
}

type meta struct {
	BlocksCount int `yaml:"blocks_count"`
}

// ReadBlocks reads blocks_0 to blocks_<n-1>, n being blocks_count in meta.yaml.
func ReadBlocks(root fs.FS, c TestCase) ([]*cltypes.SignedBeaconBlock, error) {
	cfg, err := c.BeaconConfig()
	if err != nil {
		return nil, err
	}
	var m meta
	if err := ReadYml(root, MetaYml, &m); err != nil {
		return nil, err
	}
	blocks := make([]*cltypes.SignedBeaconBlock, 0, m.BlocksCount)
	for i := 0; i < m.BlocksCount; i++ {
		block := cltypes.NewSignedBeaconBlock(cfg)
		if err := ReadSsz(root, c.Version(), fmt.Sprintf("blocks_%d.ssz_snappy", i), block); err != nil {
			return nil, fmt.Errorf("blocks_%d: %w", i, err)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
