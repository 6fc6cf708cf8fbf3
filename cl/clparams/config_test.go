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

package clparams

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestGetConfigByPreset(t *testing.T) {
	tests := []struct {
		preset        string
		slotsPerEpoch uint64
		shuffleRounds uint64
		wantErr       bool
	}{
		{preset: "mainnet", slotsPerEpoch: 32, shuffleRounds: 90},
		{preset: "minimal", slotsPerEpoch: 8, shuffleRounds: 10},
		{preset: "MINIMAL", slotsPerEpoch: 8, shuffleRounds: 10},
		{preset: "gnosis", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			cfg, err := GetConfigByPreset(tt.preset)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.slotsPerEpoch, cfg.SlotsPerEpoch)
			require.Equal(t, tt.shuffleRounds, cfg.ShuffleRoundCount)
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestGetConfigByPresetReturnsCopy(t *testing.T) {
	cfg, err := GetConfigByPreset("mainnet")
	require.NoError(t, err)
	cfg.SlotsPerEpoch = 1
	require.Equal(t, uint64(32), MainnetBeaconConfig.SlotsPerEpoch)
}

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
PRESET_BASE: 'minimal'
SLOTS_PER_EPOCH: 16
GENESIS_FORK_VERSION: 0x10000038
PROPORTIONAL_SLASHING_MULTIPLIER: 1
DOMAIN_RANDAO: 0x02000000
SOME_UNKNOWN_KEY: 12
`)
	cfg, err := ParseConfigYAML(data, &MinimalBeaconConfig)
	require.NoError(t, err)
	require.Equal(t, "minimal", cfg.PresetBase)
	require.Equal(t, uint64(16), cfg.SlotsPerEpoch)
	require.Equal(t, ConfigForkVersion(0x10000038), cfg.GenesisForkVersion)
	require.Equal(t, [4]byte{0x10, 0x00, 0x00, 0x38}, cfg.GenesisForkVersion.Bytes())
	require.Equal(t, uint64(1), cfg.ProportionalSlashingMultiplier)
	require.Equal(t, DomainType{2, 0, 0, 0}, cfg.DomainRandao)
	// untouched keys keep the base value
	require.Equal(t, MinimalBeaconConfig.ShuffleRoundCount, cfg.ShuffleRoundCount)
	// base is not modified
	require.Equal(t, uint64(8), MinimalBeaconConfig.SlotsPerEpoch)
}

func TestParseConfigYAMLInvalid(t *testing.T) {
	_, err := ParseConfigYAML([]byte("SLOTS_PER_EPOCH: 0\n"), &MainnetBeaconConfig)
	require.ErrorIs(t, err, ErrZeroSlotsPerEpoch)

	_, err = ParseConfigYAML([]byte("SLOTS_PER_HISTORICAL_ROOT: 33\n"), &MainnetBeaconConfig)
	require.ErrorIs(t, err, ErrBadHistoricalLength)

	_, err = ParseConfigYAML([]byte("GENESIS_FORK_VERSION: 0xzz\n"), &MainnetBeaconConfig)
	require.Error(t, err)
}

func TestLoadConfigFromYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/config.yaml", []byte("MAX_DEPOSITS: 4\n"), 0o600))
	cfg, err := LoadConfigFromYAML(fs, "/cfg/config.yaml", &MainnetBeaconConfig)
	require.NoError(t, err)
	require.Equal(t, uint64(4), cfg.MaxDeposits)
	// base is left alone
	require.Equal(t, uint64(16), MainnetBeaconConfig.MaxDeposits)

	_, err = LoadConfigFromYAML(fs, "/cfg/missing.yaml", &MainnetBeaconConfig)
	require.ErrorIs(t, err, os.ErrNotExist)

	// the file is never looked up on disk
	_, err = LoadConfigFromYAML(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/cfg/config.yaml", &MainnetBeaconConfig)
	require.Error(t, err)
}

func TestStateVersion(t *testing.T) {
	v, err := StringToClVersion("phase0")
	require.NoError(t, err)
	require.Equal(t, Phase0Version, v)
	require.Equal(t, "phase0", v.String())
	_, err = StringToClVersion("altair")
	require.Error(t, err)
}
