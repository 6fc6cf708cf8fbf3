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
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type NetworkType int

const (
	MainnetNetwork NetworkType = iota
	MinimalNetwork
)

// ConfigForkVersion is a 4 byte fork version stored as big endian integer.
type ConfigForkVersion uint32

func (v *ConfigForkVersion) UnmarshalYAML(node *yaml.Node) error {
	n, err := parseHexUint32(node.Value)
	if err != nil {
		return fmt.Errorf("clparams: bad fork version %q: %w", node.Value, err)
	}
	*v = ConfigForkVersion(n)
	return nil
}

func (v ConfigForkVersion) Bytes() (out [4]byte) {
	binary.BigEndian.PutUint32(out[:], uint32(v))
	return
}

// DomainType is the 4 byte prefix used for signature domain separation.
type DomainType [4]byte

func (d *DomainType) UnmarshalYAML(node *yaml.Node) error {
	n, err := parseHexUint32(node.Value)
	if err != nil {
		return fmt.Errorf("clparams: bad domain type %q: %w", node.Value, err)
	}
	binary.BigEndian.PutUint32(d[:], n)
	return nil
}

func parseHexUint32(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return 0, err
		}
		if len(b) > 4 {
			return 0, errors.New("value longer than 4 bytes")
		}
		var buf [4]byte
		copy(buf[4-len(b):], b)
		return binary.BigEndian.Uint32(buf[:]), nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

// BeaconChainConfig contains constant configs for node to participate in beacon chain.
type BeaconChainConfig struct {
	// Constants (non-configurable)
	GenesisSlot              uint64 `yaml:"GENESIS_SLOT"`
	GenesisEpoch             uint64 `yaml:"GENESIS_EPOCH"`
	FarFutureEpoch           uint64 `yaml:"FAR_FUTURE_EPOCH"`
	BaseRewardsPerEpoch      uint64 `yaml:"BASE_REWARDS_PER_EPOCH"`
	DepositContractTreeDepth uint64 `yaml:"DEPOSIT_CONTRACT_TREE_DEPTH"`
	JustificationBitsLength  uint64 `yaml:"JUSTIFICATION_BITS_LENGTH"`

	// Misc constants.
	PresetBase                     string `yaml:"PRESET_BASE"`
	ConfigName                     string `yaml:"CONFIG_NAME"`
	MaxCommitteesPerSlot           uint64 `yaml:"MAX_COMMITTEES_PER_SLOT"`
	TargetCommitteeSize            uint64 `yaml:"TARGET_COMMITTEE_SIZE"`
	MaxValidatorsPerCommittee      uint64 `yaml:"MAX_VALIDATORS_PER_COMMITTEE"`
	MinPerEpochChurnLimit          uint64 `yaml:"MIN_PER_EPOCH_CHURN_LIMIT"`
	ChurnLimitQuotient             uint64 `yaml:"CHURN_LIMIT_QUOTIENT"`
	ShuffleRoundCount              uint64 `yaml:"SHUFFLE_ROUND_COUNT"`
	MinGenesisActiveValidatorCount uint64 `yaml:"MIN_GENESIS_ACTIVE_VALIDATOR_COUNT"`
	MinGenesisTime                 uint64 `yaml:"MIN_GENESIS_TIME"`
	HysteresisQuotient             uint64 `yaml:"HYSTERESIS_QUOTIENT"`
	HysteresisDownwardMultiplier   uint64 `yaml:"HYSTERESIS_DOWNWARD_MULTIPLIER"`
	HysteresisUpwardMultiplier     uint64 `yaml:"HYSTERESIS_UPWARD_MULTIPLIER"`

	// Gwei value constants.
	MinDepositAmount          uint64 `yaml:"MIN_DEPOSIT_AMOUNT"`
	MaxEffectiveBalance       uint64 `yaml:"MAX_EFFECTIVE_BALANCE"`
	EjectionBalance           uint64 `yaml:"EJECTION_BALANCE"`
	EffectiveBalanceIncrement uint64 `yaml:"EFFECTIVE_BALANCE_INCREMENT"`

	// Initial value constants.
	GenesisForkVersion      ConfigForkVersion `yaml:"GENESIS_FORK_VERSION"`
	BLSWithdrawalPrefixByte byte              `yaml:"BLS_WITHDRAWAL_PREFIX"`

	// Time parameters constants.
	GenesisDelay                     uint64 `yaml:"GENESIS_DELAY"`
	SecondsPerSlot                   uint64 `yaml:"SECONDS_PER_SLOT"`
	MinAttestationInclusionDelay     uint64 `yaml:"MIN_ATTESTATION_INCLUSION_DELAY"`
	SlotsPerEpoch                    uint64 `yaml:"SLOTS_PER_EPOCH"`
	MinSeedLookahead                 uint64 `yaml:"MIN_SEED_LOOKAHEAD"`
	MaxSeedLookahead                 uint64 `yaml:"MAX_SEED_LOOKAHEAD"`
	EpochsPerEth1VotingPeriod        uint64 `yaml:"EPOCHS_PER_ETH1_VOTING_PERIOD"`
	SlotsPerHistoricalRoot           uint64 `yaml:"SLOTS_PER_HISTORICAL_ROOT"`
	MinValidatorWithdrawabilityDelay uint64 `yaml:"MIN_VALIDATOR_WITHDRAWABILITY_DELAY"`
	ShardCommitteePeriod             uint64 `yaml:"SHARD_COMMITTEE_PERIOD"`
	MinEpochsToInactivityPenalty     uint64 `yaml:"MIN_EPOCHS_TO_INACTIVITY_PENALTY"`
	SecondsPerETH1Block              uint64 `yaml:"SECONDS_PER_ETH1_BLOCK"`
	Eth1FollowDistance               uint64 `yaml:"ETH1_FOLLOW_DISTANCE"`

	// State list lengths
	EpochsPerHistoricalVector uint64 `yaml:"EPOCHS_PER_HISTORICAL_VECTOR"`
	EpochsPerSlashingsVector  uint64 `yaml:"EPOCHS_PER_SLASHINGS_VECTOR"`
	HistoricalRootsLimit      uint64 `yaml:"HISTORICAL_ROOTS_LIMIT"`
	ValidatorRegistryLimit    uint64 `yaml:"VALIDATOR_REGISTRY_LIMIT"`

	// Reward and penalty quotients constants.
	BaseRewardFactor               uint64 `yaml:"BASE_REWARD_FACTOR"`
	WhistleBlowerRewardQuotient    uint64 `yaml:"WHISTLEBLOWER_REWARD_QUOTIENT"`
	ProposerRewardQuotient         uint64 `yaml:"PROPOSER_REWARD_QUOTIENT"`
	InactivityPenaltyQuotient      uint64 `yaml:"INACTIVITY_PENALTY_QUOTIENT"`
	MinSlashingPenaltyQuotient     uint64 `yaml:"MIN_SLASHING_PENALTY_QUOTIENT"`
	ProportionalSlashingMultiplier uint64 `yaml:"PROPORTIONAL_SLASHING_MULTIPLIER"`

	// Max operations per block constants.
	MaxProposerSlashings uint64 `yaml:"MAX_PROPOSER_SLASHINGS"`
	MaxAttesterSlashings uint64 `yaml:"MAX_ATTESTER_SLASHINGS"`
	MaxAttestations      uint64 `yaml:"MAX_ATTESTATIONS"`
	MaxDeposits          uint64 `yaml:"MAX_DEPOSITS"`
	MaxVoluntaryExits    uint64 `yaml:"MAX_VOLUNTARY_EXITS"`

	// Signature domains.
	DomainBeaconProposer    DomainType `yaml:"DOMAIN_BEACON_PROPOSER"`
	DomainBeaconAttester    DomainType `yaml:"DOMAIN_BEACON_ATTESTER"`
	DomainRandao            DomainType `yaml:"DOMAIN_RANDAO"`
	DomainDeposit           DomainType `yaml:"DOMAIN_DEPOSIT"`
	DomainVoluntaryExit     DomainType `yaml:"DOMAIN_VOLUNTARY_EXIT"`
	DomainSelectionProof    DomainType `yaml:"DOMAIN_SELECTION_PROOF"`
	DomainAggregateAndProof DomainType `yaml:"DOMAIN_AGGREGATE_AND_PROOF"`
}

var MainnetBeaconConfig BeaconChainConfig = BeaconChainConfig{
	GenesisSlot:              0,
	GenesisEpoch:             0,
	FarFutureEpoch:           ^uint64(0),
	BaseRewardsPerEpoch:      4,
	DepositContractTreeDepth: 32,
	JustificationBitsLength:  4,

	PresetBase:                     "mainnet",
	ConfigName:                     "mainnet",
	MaxCommitteesPerSlot:           64,
	TargetCommitteeSize:            128,
	MaxValidatorsPerCommittee:      2048,
	MinPerEpochChurnLimit:          4,
	ChurnLimitQuotient:             1 << 16,
	ShuffleRoundCount:              90,
	MinGenesisActiveValidatorCount: 16384,
	MinGenesisTime:                 1606824000,
	HysteresisQuotient:             4,
	HysteresisDownwardMultiplier:   1,
	HysteresisUpwardMultiplier:     5,

	MinDepositAmount:          1 * 1e9,
	MaxEffectiveBalance:       32 * 1e9,
	EjectionBalance:           16 * 1e9,
	EffectiveBalanceIncrement: 1 * 1e9,

	GenesisForkVersion:      0x00000000,
	BLSWithdrawalPrefixByte: 0x00,

	GenesisDelay:                     604800,
	SecondsPerSlot:                   12,
	MinAttestationInclusionDelay:     1,
	SlotsPerEpoch:                    32,
	MinSeedLookahead:                 1,
	MaxSeedLookahead:                 4,
	EpochsPerEth1VotingPeriod:        64,
	SlotsPerHistoricalRoot:           8192,
	MinValidatorWithdrawabilityDelay: 256,
	ShardCommitteePeriod:             256,
	MinEpochsToInactivityPenalty:     4,
	SecondsPerETH1Block:              14,
	Eth1FollowDistance:               2048,

	EpochsPerHistoricalVector: 65536,
	EpochsPerSlashingsVector:  8192,
	HistoricalRootsLimit:      16777216,
	ValidatorRegistryLimit:    1099511627776,

	BaseRewardFactor:               64,
	WhistleBlowerRewardQuotient:    512,
	ProposerRewardQuotient:         8,
	InactivityPenaltyQuotient:      1 << 26,
	MinSlashingPenaltyQuotient:     128,
	ProportionalSlashingMultiplier: 3,

	MaxProposerSlashings: 16,
	MaxAttesterSlashings: 2,
	MaxAttestations:      128,
	MaxDeposits:          16,
	MaxVoluntaryExits:    16,

	DomainBeaconProposer:    DomainType{0, 0, 0, 0},
	DomainBeaconAttester:    DomainType{1, 0, 0, 0},
	DomainRandao:            DomainType{2, 0, 0, 0},
	DomainDeposit:           DomainType{3, 0, 0, 0},
	DomainVoluntaryExit:     DomainType{4, 0, 0, 0},
	DomainSelectionProof:    DomainType{5, 0, 0, 0},
	DomainAggregateAndProof: DomainType{6, 0, 0, 0},
}

func minimalConfig() BeaconChainConfig {
	cfg := MainnetBeaconConfig
	cfg.PresetBase = "minimal"
	cfg.ConfigName = "minimal"
	cfg.MaxCommitteesPerSlot = 4
	cfg.TargetCommitteeSize = 4
	cfg.ShuffleRoundCount = 10
	cfg.MinGenesisActiveValidatorCount = 64
	cfg.MinGenesisTime = 1578009600
	cfg.MinPerEpochChurnLimit = 2
	cfg.ChurnLimitQuotient = 32
	cfg.GenesisForkVersion = 0x00000001
	cfg.GenesisDelay = 300
	cfg.SecondsPerSlot = 6
	cfg.SlotsPerEpoch = 8
	cfg.EpochsPerEth1VotingPeriod = 4
	cfg.SlotsPerHistoricalRoot = 64
	cfg.ShardCommitteePeriod = 64
	cfg.Eth1FollowDistance = 16
	cfg.EpochsPerHistoricalVector = 64
	cfg.EpochsPerSlashingsVector = 64
	cfg.InactivityPenaltyQuotient = 1 << 25
	cfg.MinSlashingPenaltyQuotient = 64
	return cfg
}

var MinimalBeaconConfig BeaconChainConfig = minimalConfig()

// GetConfigByPreset returns a copy of the named preset.
func GetConfigByPreset(preset string) (*BeaconChainConfig, error) {
	var cfg BeaconChainConfig
	switch strings.ToLower(preset) {
	case "mainnet", "":
		cfg = MainnetBeaconConfig
	case "minimal":
		cfg = MinimalBeaconConfig
	default:
		return nil, fmt.Errorf("clparams: unknown preset %s", preset)
	}
	return &cfg, nil
}

// ParseConfigYAML overlays the keys present in data on top of a copy of base.
func ParseConfigYAML(data []byte, base *BeaconChainConfig) (*BeaconChainConfig, error) {
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("clparams: unable to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFromYAML reads a consensus config file from fs and overlays it on base.
func LoadConfigFromYAML(fs afero.Fs, path string, base *BeaconChainConfig) (*BeaconChainConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}
	return ParseConfigYAML(data, base)
}

var (
	ErrZeroSlotsPerEpoch    = errors.New("clparams: SLOTS_PER_EPOCH must be positive")
	ErrBadHistoricalLength  = errors.New("clparams: SLOTS_PER_HISTORICAL_ROOT must be a multiple of SLOTS_PER_EPOCH")
	ErrTooManyShuffleRounds = errors.New("clparams: SHUFFLE_ROUND_COUNT must fit in a byte")
	ErrSeedLookahead        = errors.New("clparams: EPOCHS_PER_HISTORICAL_VECTOR must exceed MIN_SEED_LOOKAHEAD")
)

func (b *BeaconChainConfig) Validate() error {
	if b.SlotsPerEpoch == 0 {
		return ErrZeroSlotsPerEpoch
	}
	if b.SlotsPerHistoricalRoot == 0 || b.SlotsPerHistoricalRoot%b.SlotsPerEpoch != 0 {
		return ErrBadHistoricalLength
	}
	if b.ShuffleRoundCount > 255 {
		return ErrTooManyShuffleRounds
	}
	if b.EpochsPerHistoricalVector <= b.MinSeedLookahead+1 {
		return ErrSeedLookahead
	}
	if b.EffectiveBalanceIncrement == 0 || b.HysteresisQuotient == 0 || b.EpochsPerSlashingsVector == 0 {
		return errors.New("clparams: zero divisor in config")
	}
	return nil
}

func (b *BeaconChainConfig) SlotsPerEth1VotingPeriod() uint64 {
	return b.EpochsPerEth1VotingPeriod * b.SlotsPerEpoch
}

func (b *BeaconChainConfig) PreviousEpochAttestationsLength() uint64 {
	return b.SlotsPerEpoch * b.MaxAttestations
}

func (b *BeaconChainConfig) CurrentEpochAttestationsLength() uint64 {
	return b.SlotsPerEpoch * b.MaxAttestations
}
