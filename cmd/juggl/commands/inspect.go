// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/juggl-project/juggl/cmd/juggl/cli"
	"github.com/juggl-project/juggl/lib/delimiter"
	"github.com/juggl-project/juggl/lib/juggle"
	"github.com/juggl-project/juggl/lib/mapfile"
)

type inspectParams struct {
	Delimiter  string `flag:"delimiter,d" desc:"chunk delimiter (escapes: \\n \\r \\t \\0 \\\\ \\xHH)"`
	Threads    int    `flag:"threads,t"   desc:"boundary scan workers (default $JUGGL_THREADS, or 1)"`
	Decompress string `flag:"decompress"  desc:"input compression: none, auto, zstd, gzip, or lz4" default:"none"`
	Format     string `flag:"format,f"    desc:"output format: text, json, or yaml" default:"text"`
	Verbose    bool   `flag:"verbose,v"   desc:"log progress at debug level"`
}

func inspectCommand(stdout io.Writer) *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Report how a delimiter divides a file",
		Usage:   "juggl inspect <INPUT_FILE> -d <DELIMITER> [--format text|json|yaml]",
		Description: `Scan a file with the same boundary rules as shuffle and report the
chunk count, empty chunks, chunk length range, and the content digest
that a shuffle manifest would record. Nothing is shuffled.`,
		Params: func() any { return &params },
		Run: func(args []string) error {
			return runInspect(stdout, &params, args)
		},
		Examples: []cli.Example{
			{
				Description: "Check a delimiter before shuffling",
				Command:     `juggl inspect records.bin -d '\x1e'`,
			},
			{
				Description: "Machine-readable statistics",
				Command:     `juggl inspect lines.txt -d '\n' --format json`,
			},
		},
	}
}

func runInspect(stdout io.Writer, params *inspectParams, args []string) error {
	path, err := singleInput(args, "input file")
	if err != nil {
		return err
	}
	delim, err := delimiter.Parse(params.Delimiter)
	if err != nil {
		return err
	}
	switch params.Format {
	case "text", "json", "yaml":
	default:
		return cli.Validation("--format must be text, json, or yaml, got %q", params.Format)
	}
	compression, err := mapfile.ParseCompression(params.Decompress)
	if err != nil {
		return cli.Validation("--decompress: %w", err)
	}

	env, err := newEnvironment("inspect", params.Verbose)
	if err != nil {
		return err
	}
	workers, err := env.workers(params.Threads)
	if err != nil {
		return err
	}

	buffer, err := mapfile.Open(path, mapfile.Options{Decompress: compression})
	if err != nil {
		return err
	}
	defer buffer.Close()
	env.logger.Debug("inspecting", "input", path, "bytes", buffer.Len(), "workers", workers)

	var stats juggle.Stats
	err = mapfile.Guard(func() error {
		stats = juggle.Inspect(buffer.Bytes(), delim, workers)
		return nil
	})
	if err != nil {
		return err
	}

	switch params.Format {
	case "json":
		return cli.WriteJSON(stdout, stats)
	case "yaml":
		return cli.WriteYAML(stdout, stats)
	default:
		return writeStatsText(stdout, stats)
	}
}

func writeStatsText(w io.Writer, stats juggle.Stats) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "size:\t%d bytes\n", stats.Size)
	fmt.Fprintf(tw, "chunks:\t%d (%d empty)\n", stats.Chunks, stats.EmptyChunks)
	fmt.Fprintf(tw, "chunk length:\tmin %d, max %d, mean %.2f\n", stats.MinChunk, stats.MaxChunk, stats.MeanChunk)
	fmt.Fprintf(tw, "delimiter:\t%s (hex %s)\n", stats.Delimiter, stats.DelimiterHex)
	fmt.Fprintf(tw, "digest:\t%s\n", stats.Digest)
	return tw.Flush()
}
