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

package fork

import (
	"errors"

	"github.com/ChainSafe/lodestar-sub010/cl/cltypes"
	"github.com/ChainSafe/lodestar-sub010/cl/ssz"
)

var ErrBadDomainType = errors.New("fork: domain type must be 4 bytes")

// ComputeForkDataRoot is the root of ForkData{currentVersion, genesisValidatorsRoot}.
func ComputeForkDataRoot(currentVersion [4]byte, genesisValidatorsRoot [32]byte) ([32]byte, error) {
	return (&cltypes.ForkData{
		CurrentVersion:        currentVersion,
		GenesisValidatorsRoot: genesisValidatorsRoot,
	}).HashSSZ()
}

// ComputeForkDigest returns the first 4 bytes of the fork data root.
func ComputeForkDigest(currentVersion [4]byte, genesisValidatorsRoot [32]byte) (digest [4]byte, err error) {
	root, err := ComputeForkDataRoot(currentVersion, genesisValidatorsRoot)
	if err != nil {
		return
	}
	copy(digest[:], root[:4])
	return
}

// ComputeDomain returns the domain type followed by the first 28 bytes of the fork data root.
func ComputeDomain(
	domainType []byte,
	currentVersion [4]byte,
	genesisValidatorsRoot [32]byte,
) ([]byte, error) {
	if len(domainType) != 4 {
		return nil, ErrBadDomainType
	}
	forkDataRoot, err := ComputeForkDataRoot(currentVersion, genesisValidatorsRoot)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, domainType...), forkDataRoot[:28]...), nil
}

// ComputeSigningRoot is the root of SigningData{object root, domain}.
func ComputeSigningRoot(obj ssz.HashableSSZ, domain []byte) ([32]byte, error) {
	objRoot, err := obj.HashSSZ()
	if err != nil {
		return [32]byte{}, err
	}
	return ComputeSigningRootFromRoot(objRoot, domain)
}

func ComputeSigningRootFromRoot(objRoot [32]byte, domain []byte) ([32]byte, error) {
	signingData := &cltypes.SigningData{ObjectRoot: objRoot}
	copy(signingData.Domain[:], domain)
	return signingData.HashSSZ()
}
