// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the juggl command tree. Each command reads
// its defaults from the environment ([config.Load]), opens inputs
// through [mapfile.Open], and runs the pipeline in [juggle] under
// [mapfile.Guard] so that faults on a mapped file surface as errors.
//
// [config.Load]: github.com/juggl-project/juggl/lib/config.Load
// [mapfile.Open]: github.com/juggl-project/juggl/lib/mapfile.Open
// [mapfile.Guard]: github.com/juggl-project/juggl/lib/mapfile.Guard
// [juggle]: github.com/juggl-project/juggl/lib/juggle
package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/juggl-project/juggl/cmd/juggl/cli"
	"github.com/juggl-project/juggl/lib/config"
	"github.com/juggl-project/juggl/lib/emit"
	"github.com/juggl-project/juggl/lib/version"
)

// Root builds and returns the complete juggl command tree. Data goes
// to stdout; help and logs go to stderr.
func Root() *cli.Command {
	return newRoot(os.Stdout, os.Stderr)
}

func newRoot(stdout, stderr io.Writer) *cli.Command {
	var params shuffleParams

	root := &cli.Command{
		Name:  "juggl",
		Usage: "juggl <INPUT_FILE> -d <DELIMITER> [-s <SEED>] [flags]",
		Description: `juggl: shuffle the delimited chunks of a file.

The input is split at every occurrence of the delimiter and the chunks
are written to stdout in random order, separated by the same delimiter.
Chunk contents are never changed. With --seed the order is reproducible.

When the first argument is not a command name it is the input file, and
juggl behaves exactly like "juggl shuffle".`,
		HelpOutput: stderr,
		Params:     func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Shuffle the lines of a file",
				Command:     `juggl lines.txt -d '\n'`,
			},
			{
				Description: "Shuffle reproducibly",
				Command:     `juggl records.bin -d '\x1e' -s 42`,
			},
		},
	}

	root.Subcommands = []*cli.Command{
		shuffleCommand(stdout),
		restoreCommand(stdout),
		inspectCommand(stdout),
		{
			Name:    "version",
			Summary: "Print version information",
			Run: func(args []string) error {
				if len(args) > 0 {
					return cli.Validation("version takes no arguments")
				}
				_, err := fmt.Fprintf(stdout, "juggl %s\n", version.Full())
				return err
			},
		},
	}

	root.Run = func(args []string) error {
		err := runShuffle(stdout, &params, args)
		if err == nil || len(args) == 0 {
			return err
		}
		suggestion := root.SuggestCommand(args[0])
		if suggestion == "" {
			return err
		}
		classified := cli.Classify(err)
		if toolError, ok := classified.(*cli.ToolError); ok && toolError.Category == cli.CategoryNotFound {
			return toolError.WithHint(fmt.Sprintf("Did you mean %q?", "juggl "+suggestion))
		}
		return classified
	}

	return root
}

// environment holds what every command run needs after flag parsing.
type environment struct {
	config config.Config
	logger *slog.Logger
}

// newEnvironment loads the environment configuration and builds the
// logger. verbose forces debug logging regardless of JUGGL_LOG_LEVEL.
func newEnvironment(command string, verbose bool) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	var level slog.Leveler = cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLogger(level, cfg.LogFormat).With("command", command)
	return &environment{config: cfg, logger: logger}, nil
}

// bufferedOutput wraps stdout in a writer sized by JUGGL_WRITE_BUFFER.
func (e *environment) bufferedOutput(stdout io.Writer) *bufio.Writer {
	return bufio.NewWriterSize(stdout, e.config.WriteBuffer)
}

// flush writes out buffered data. A failed flush is a failed write.
func flush(output *bufio.Writer) error {
	if err := output.Flush(); err != nil {
		return fmt.Errorf("%w: flushing output: %w", emit.ErrOutputWriteFailed, err)
	}
	return nil
}

// workers picks the scan worker count: the flag when set, otherwise
// JUGGL_THREADS.
func (e *environment) workers(flagValue int) (int, error) {
	if flagValue < 0 {
		return 0, cli.Validation("--threads must be positive, got %d", flagValue)
	}
	if flagValue == 0 {
		return e.config.Threads, nil
	}
	return flagValue, nil
}

// singleInput checks that exactly one input path was given.
func singleInput(args []string, what string) (string, error) {
	switch len(args) {
	case 0:
		return "", cli.Validation("%s required", what)
	case 1:
		return args[0], nil
	default:
		return "", cli.Validation("expected one %s, got %d arguments: %v", what, len(args), args)
	}
}
