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

package consensus_tests

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/lodestar-sub010/cl/clparams"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/cltypes/solid"
	"github.com/ChainSafe/lodestar-sub010/cl/phase1/core/state"
	"github.com/ChainSafe/lodestar-sub010/cl/spectest"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
	"github.com/ChainSafe/lodestar-sub010/cl/transition/impl/eth2"
)

const (
	attestationFileName      = "attestation.ssz_snappy"
	attesterSlashingFileName = "attester_slashing.ssz_snappy"
	proposerSlashingFileName = "proposer_slashing.ssz_snappy"
	blockFileName            = "block.ssz_snappy"
	depositFileName          = "deposit.ssz_snappy"
	voluntaryExitFileName    = "voluntary_exit.ssz_snappy"
)

// operationHandler reads the operation stored in fileName, applies it to the pre-state
// and compares against the post-state. A missing post-state means the operation must fail.
func operationHandler[T ssz.Unmarshaler](fileName string, newFn func(cfg *clparams.BeaconChainConfig) T,
	apply func(impl *eth2.Impl, s *state.CachingBeaconState, op T) error) spectest.HandlerFunc {
	return func(t *testing.T, root fs.FS, c spectest.TestCase) error {
		preState, err := spectest.ReadBeaconState(root, c, spectest.PreSsz)
		require.NoError(t, err)
		postState, err := spectest.ReadPostState(root, c)
		require.NoError(t, err)
		op := newFn(preState.BeaconConfig())
		require.NoError(t, spectest.ReadSsz(root, c.Version(), fileName, op))

		err = apply(eth2.New(true), preState, op)
		if postState == nil {
			require.Error(t, err, "expected the operation to be rejected")
			return nil
		}
		require.NoError(t, err)
		requireSameRoot(t, postState, preState)
		return nil
	}
}

var operationAttestationHandler = operationHandler(attestationFileName,
	func(*clparams.BeaconChainConfig) *cltypes.Attestation { return cltypes.NewAttestation() },
	func(impl *eth2.Impl, s *state.CachingBeaconState, att *cltypes.Attestation) error {
		cfg := s.BeaconConfig()
		return impl.ProcessAttestations(s, solid.NewListSSZFromSlice([]*cltypes.Attestation{att}, int(cfg.MaxAttestations), cltypes.NewAttestation))
	})

var operationAttesterSlashingHandler = operationHandler(attesterSlashingFileName,
	func(*clparams.BeaconChainConfig) *cltypes.AttesterSlashing { return cltypes.NewAttesterSlashing() },
	(*eth2.Impl).ProcessAttesterSlashing)

var operationProposerSlashingHandler = operationHandler(proposerSlashingFileName,
	func(*clparams.BeaconChainConfig) *cltypes.ProposerSlashing { return cltypes.NewProposerSlashing() },
	(*eth2.Impl).ProcessProposerSlashing)

var operationBlockHeaderHandler = operationHandler(blockFileName, cltypes.NewBeaconBlock,
	(*eth2.Impl).ProcessBlockHeader)

var operationDepositHandler = operationHandler(depositFileName,
	func(*clparams.BeaconChainConfig) *cltypes.Deposit { return cltypes.NewDeposit() },
	(*eth2.Impl).ProcessDeposit)

var operationVoluntaryExitHandler = operationHandler(voluntaryExitFileName,
	func(*clparams.BeaconChainConfig) *cltypes.SignedVoluntaryExit { return cltypes.NewSignedVoluntaryExit() },
	(*eth2.Impl).ProcessVoluntaryExit)
