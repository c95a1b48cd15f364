// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/juggl-project/juggl/cmd/juggl/cli"
	"github.com/juggl-project/juggl/lib/delimiter"
	"github.com/juggl-project/juggl/lib/juggle"
	"github.com/juggl-project/juggl/lib/manifest"
	"github.com/juggl-project/juggl/lib/mapfile"
	"github.com/juggl-project/juggl/lib/permute"
)

// shuffleParams is shared by "juggl shuffle" and the root command.
type shuffleParams struct {
	Delimiter  string `flag:"delimiter,d" desc:"chunk delimiter (escapes: \\n \\r \\t \\0 \\\\ \\xHH)"`
	Seed       string `flag:"seed,s"      desc:"unsigned 64-bit seed for a reproducible order"`
	Threads    int    `flag:"threads,t"   desc:"boundary scan workers (default $JUGGL_THREADS, or 1)"`
	Manifest   string `flag:"manifest,m"  desc:"also write a manifest that 'juggl restore' can undo"`
	Decompress string `flag:"decompress"  desc:"input compression: none, auto, zstd, gzip, or lz4" default:"none"`
	Verbose    bool   `flag:"verbose,v"   desc:"log progress at debug level"`
}

func shuffleCommand(stdout io.Writer) *cli.Command {
	var params shuffleParams

	return &cli.Command{
		Name:    "shuffle",
		Summary: "Write the chunks of a file in random order",
		Usage:   "juggl shuffle <INPUT_FILE> -d <DELIMITER> [-s <SEED>] [flags]",
		Description: `Split a file at every occurrence of the delimiter and write the
chunks to stdout in a uniformly random order, separated by the same
delimiter. No delimiter follows the last chunk.

Matching is leftmost-first and non-overlapping. A delimiter at the very
end of the input produces an empty final chunk, which is shuffled like
any other, so the output has the same length as the input.

Without --seed the order is drawn from operating system entropy. With
--seed, the same seed, input, and delimiter always produce the same
output, on every platform.`,
		Params: func() any { return &params },
		Run: func(args []string) error {
			return runShuffle(stdout, &params, args)
		},
		Examples: []cli.Example{
			{
				Description: "Shuffle CSV rows reproducibly",
				Command:     `juggl shuffle rows.csv -d '\n' -s 7`,
			},
			{
				Description: "Shuffle a zstd-compressed file and keep a manifest",
				Command:     `juggl shuffle corpus.zst -d '\n\n' --decompress auto -m corpus.order > shuffled.txt`,
			},
		},
	}
}

func runShuffle(stdout io.Writer, params *shuffleParams, args []string) error {
	path, err := singleInput(args, "input file")
	if err != nil {
		return err
	}
	delim, err := delimiter.Parse(params.Delimiter)
	if err != nil {
		return err
	}
	var seed *uint64
	if params.Seed != "" {
		value, err := permute.ParseSeed(params.Seed)
		if err != nil {
			return err
		}
		seed = &value
	}
	compression, err := mapfile.ParseCompression(params.Decompress)
	if err != nil {
		return cli.Validation("--decompress: %w", err)
	}

	env, err := newEnvironment("shuffle", params.Verbose)
	if err != nil {
		return err
	}
	workers, err := env.workers(params.Threads)
	if err != nil {
		return err
	}
	logger := env.logger.With("input", path)

	buffer, err := mapfile.Open(path, mapfile.Options{Decompress: compression})
	if err != nil {
		return err
	}
	defer buffer.Close()
	logger.Debug("input opened",
		"bytes", buffer.Len(),
		"mapped", buffer.Mapped(),
		"delimiter", delim.String(),
		"seeded", seed != nil,
	)

	output := env.bufferedOutput(stdout)
	var record *manifest.Manifest
	err = mapfile.Guard(func() error {
		result, err := juggle.Shuffle(buffer.Bytes(), output, juggle.Options{
			Delimiter: delim,
			Seed:      seed,
			Workers:   workers,
			Logger:    logger,
		})
		if err != nil {
			return err
		}
		if params.Manifest != "" {
			record = juggle.NewManifest(buffer.Bytes(), delim, seed, result.Order)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := flush(output); err != nil {
		return err
	}

	if record != nil {
		if err := manifest.WriteFile(params.Manifest, record); err != nil {
			return err
		}
		logger.Debug("manifest written", "path", params.Manifest, "chunks", len(record.Chunks))
	}
	return nil
}
