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

package clpersist

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/afero"
	"golang.org/x/exp/slices"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
	"github.com/ChainSafe/lodestar-sub010/cl/utils"
)

// Kinds of objects kept in the archive.
const (
	Blocks = "blocks"
	States = "states"
)

// SlotToPaths define the file structure to store an object of a slot
//
// superEpoch = floor(slot / (epochSize ^ 2))
// epoch =  floor(slot / epochSize)
// file is to be stored at
// "{kind}/{superEpoch}/{epoch}/{slot}.ssz_snappy"
func SlotToPaths(kind string, slot uint64, config *clparams.BeaconChainConfig) (folderPath string, filePath string) {
	superEpoch := slot / (config.SlotsPerEpoch * config.SlotsPerEpoch)
	epoch := slot / config.SlotsPerEpoch

	folderPath = path.Clean(fmt.Sprintf("%s/%d/%d", kind, superEpoch, epoch))
	filePath = path.Clean(fmt.Sprintf("%s/%d.ssz_snappy", folderPath, slot))
	return
}

func SaveBlockWithConfig(fs afero.Fs, block *cltypes.SignedBeaconBlock, config *clparams.BeaconChainConfig) error {
	return save(fs, Blocks, block.Block.Slot, block, config)
}

func ReadBlock(fs afero.Fs, slot uint64, config *clparams.BeaconChainConfig) (*cltypes.SignedBeaconBlock, error) {
	block := cltypes.NewSignedBeaconBlock(config)
	if err := read(fs, Blocks, slot, block, config); err != nil {
		return nil, err
	}
	return block, nil
}

// SaveState stores s under its own slot, replacing any state saved for that slot.
func SaveState(fs afero.Fs, s *state.CachingBeaconState) error {
	return save(fs, States, s.Slot(), s, s.BeaconConfig())
}

func ReadState(fs afero.Fs, slot uint64, config *clparams.BeaconChainConfig) (*state.CachingBeaconState, error) {
	s := state.New(config)
	if err := read(fs, States, slot, s, config); err != nil {
		return nil, err
	}
	return s, nil
}

func save(fs afero.Fs, kind string, slot uint64, obj ssz.Marshaler, config *clparams.BeaconChainConfig) error {
	folderPath, filePath := SlotToPaths(kind, slot, config)
	if err := fs.MkdirAll(folderPath, 0o755); err != nil {
		return err
	}
	encoded, err := utils.EncodeSSZSnappy(obj)
	if err != nil {
		return err
	}
	fp, err := fs.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer fp.Close()
	if _, err := fp.Write(encoded); err != nil {
		return err
	}
	return fp.Sync()
}

func read(fs afero.Fs, kind string, slot uint64, obj ssz.Unmarshaler, config *clparams.BeaconChainConfig) error {
	_, filePath := SlotToPaths(kind, slot, config)
	data, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return err
	}
	return utils.DecodeSSZSnappy(obj, data, 0)
}

// Slots lists the slots stored for kind in epoch, in ascending order.
func Slots(fs afero.Fs, kind string, epoch uint64, config *clparams.BeaconChainConfig) ([]uint64, error) {
	folderPath, _ := SlotToPaths(kind, epoch*config.SlotsPerEpoch, config)
	// ReadDir sorts by name, slots of one epoch can differ in digit count
	fi, err := afero.ReadDir(fs, folderPath)
	if err != nil {
		return nil, err
	}
	slots := make([]uint64, 0, len(fi))
	for _, f := range fi {
		var slot uint64
		if _, err := fmt.Sscanf(f.Name(), "%d.ssz_snappy", &slot); err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	slices.Sort(slots)
	return slots, nil
}
