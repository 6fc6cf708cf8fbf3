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

import "github.com/urfave/cli/v2"

var cliFlags = []cli.Flag{
	&PreStateFlag,
	&BlocksFlag,
	&PostStateFlag,
	&SlotFlag,
	&PresetFlag,
	&ConfigFlag,
	&NoVerifyFlag,
	&ArchiveFlag,
	&VerbosityFlag,
}

var (
	PreStateFlag = cli.StringFlag{
		Name:     "pre",
		Usage:    "ssz_snappy encoded pre-state",
		Required: true,
	}
	BlocksFlag = cli.StringSliceFlag{
		Name:  "block",
		Usage: "ssz_snappy encoded signed block, applied in the given order",
	}
	PostStateFlag = cli.StringFlag{
		Name:     "post",
		Usage:    "where to write the ssz_snappy encoded post-state",
		Required: true,
	}
	SlotFlag = cli.Uint64Flag{
		Name:  "slot",
		Usage: "advance the post-state with empty slots up to this slot, 0 leaves it at the last block",
	}
	PresetFlag = cli.StringFlag{
		Name:  "preset",
		Usage: "mainnet or minimal",
		Value: "mainnet",
	}
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "consensus config yaml overlaid on the preset",
	}
	NoVerifyFlag = cli.BoolFlag{
		Name:  "no-verify",
		Usage: "skip signature and state root checks",
	}
	ArchiveFlag = cli.StringFlag{
		Name:  "archive",
		Usage: "directory where the applied blocks and the post-state are also stored by slot",
	}
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level, from 0 (crit) to 5 (trace)",
		Value: 3,
	}
)
