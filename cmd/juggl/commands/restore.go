// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/juggl-project/juggl/cmd/juggl/cli"
	"github.com/juggl-project/juggl/lib/juggle"
	"github.com/juggl-project/juggl/lib/manifest"
	"github.com/juggl-project/juggl/lib/mapfile"
)

type restoreParams struct {
	Manifest string `flag:"manifest,m" desc:"manifest written by 'juggl shuffle --manifest' (required)"`
	Verbose  bool   `flag:"verbose,v"  desc:"log progress at debug level"`
}

func restoreCommand(stdout io.Writer) *cli.Command {
	var params restoreParams

	return &cli.Command{
		Name:    "restore",
		Summary: "Undo a shuffle recorded with --manifest",
		Usage:   "juggl restore <SHUFFLED_FILE> --manifest <FILE> [flags]",
		Description: `Rebuild the original input from shuffled output and the manifest
written alongside it.

The shuffled file must be exactly the output the manifest describes:
same chunk lengths, the delimiter between every pair of chunks. The
reassembled content is checked against the digest of the original input
before anything is written, so a mismatched pair produces an error and
no output.`,
		Params: func() any { return &params },
		Run: func(args []string) error {
			return runRestore(stdout, &params, args)
		},
		Examples: []cli.Example{
			{
				Description: "Round trip through a shuffle",
				Command:     `juggl shuffle in.txt -d '\n' -m in.order > out.txt && juggl restore out.txt -m in.order > in.copy`,
			},
		},
	}
}

func runRestore(stdout io.Writer, params *restoreParams, args []string) error {
	path, err := singleInput(args, "shuffled file")
	if err != nil {
		return err
	}
	if params.Manifest == "" {
		return cli.Validation("--manifest is required")
	}

	env, err := newEnvironment("restore", params.Verbose)
	if err != nil {
		return err
	}
	logger := env.logger.With("input", path, "manifest", params.Manifest)

	record, err := manifest.ReadFile(params.Manifest)
	if err != nil {
		return err
	}
	buffer, err := mapfile.Open(path, mapfile.Options{})
	if err != nil {
		return err
	}
	defer buffer.Close()
	logger.Debug("restoring",
		"bytes", buffer.Len(),
		"chunks", len(record.Chunks),
		"input_digest", record.InputDigest.String(),
	)

	output := env.bufferedOutput(stdout)
	err = mapfile.Guard(func() error {
		_, err := juggle.Restore(buffer.Bytes(), record, output)
		return err
	})
	if err != nil {
		return err
	}
	return flush(output)
}
