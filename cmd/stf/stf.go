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

package main

import (
	"fmt"
	"time"

	"github.com/ledgerwatch/log/v3"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/clpersist"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
	"github.com/ChainSafe/lodestar-sub010/cl/transition"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// phase0 is the only encoding version the states and blocks have.
const phase0 = 0

type stfConfig struct {
	fs             afero.Fs
	beaconConfig   *clparams.BeaconChainConfig
	preState       string
	blocks         []string
	postState      string
	slot           uint64
	fullValidation bool
	// nil unless --archive is set
	archive        afero.Fs
}

func configFromCli(fs afero.Fs, cliCtx *cli.Context) (*stfConfig, error) {
	beaconConfig, err := clparams.GetConfigByPreset(cliCtx.String(PresetFlag.Name))
	if err != nil {
		return nil, err
	}
	if path := cliCtx.String(ConfigFlag.Name); path != "" {
		if beaconConfig, err = clparams.LoadConfigFromYAML(fs, path, beaconConfig); err != nil {
			return nil, err
		}
	}
	var archive afero.Fs
	if dir := cliCtx.String(ArchiveFlag.Name); dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		archive = afero.NewBasePathFs(fs, dir)
	}
	return &stfConfig{
		fs:             fs,
		beaconConfig:   beaconConfig,
		preState:       cliCtx.String(PreStateFlag.Name),
		blocks:         cliCtx.StringSlice(BlocksFlag.Name),
		postState:      cliCtx.String(PostStateFlag.Name),
		slot:           cliCtx.Uint64(SlotFlag.Name),
		fullValidation: !cliCtx.Bool(NoVerifyFlag.Name),
		archive:        archive,
	}, nil
}

// runTransition applies the blocks to the pre-state, then the empty slots, and writes the result.
func runTransition(cfg *stfConfig) error {
	s := state.New(cfg.beaconConfig)
	if err := readSSZSnappy(cfg.fs, cfg.preState, s); err != nil {
		return fmt.Errorf("pre-state: %w", err)
	}
	log.Info("Loaded pre-state", "slot", s.Slot(), "validators", s.ValidatorLength())

	for _, path := range cfg.blocks {
		block := cltypes.NewSignedBeaconBlock(cfg.beaconConfig)
		if err := readSSZSnappy(cfg.fs, path, block); err != nil {
			return fmt.Errorf("block %s: %w", path, err)
		}
		start := time.Now()
		if err := transition.TransitionState(s, block, cfg.fullValidation); err != nil {
			return fmt.Errorf("block %s at slot %d: %w", path, block.Block.Slot, err)
		}
		log.Info("Applied block", "slot", block.Block.Slot, "proposer", block.Block.ProposerIndex, "elapsed", time.Since(start))
		if cfg.archive != nil {
			if err := clpersist.SaveBlockWithConfig(cfg.archive, block, cfg.beaconConfig); err != nil {
				return fmt.Errorf("archiving block %s: %w", path, err)
			}
		}
	}

	if cfg.slot > s.Slot() {
		if err := transition.ProcessSlots(s, cfg.slot); err != nil {
			return err
		}
		log.Info("Processed empty slots", "slot", s.Slot())
	}

	encoded, err := utils.EncodeSSZSnappy(s)
	if err != nil {
		return err
	}
	root, err := s.HashSSZ()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(cfg.fs, cfg.postState, encoded, 0644); err != nil {
		return err
	}
	log.Info("Wrote post-state", "slot", s.Slot(), "root", fmt.Sprintf("%x", root), "path", cfg.postState)
	if cfg.archive != nil {
		return clpersist.SaveState(cfg.archive, s)
	}
	return nil
}

func readSSZSnappy(fs afero.Fs, path string, dst ssz.Unmarshaler) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	return utils.DecodeSSZSnappy(dst, data, phase0)
}
