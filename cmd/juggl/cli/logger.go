// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/juggl-project/juggl/lib/config"
)

// NewCommandLogger creates the structured logger for a command run.
// Output always goes to stderr; stdout carries only data. With
// [config.LogFormatAuto], a terminal gets slog.TextHandler output and
// anything else (pipes, CI, scripts) gets slog.JSONHandler output.
//
// Callers scope the logger with command-specific context via With():
//
//	logger := cli.NewCommandLogger(level, cfg.LogFormat).With(
//	    "command", "shuffle",
//	    "input", path,
//	)
func NewCommandLogger(level slog.Leveler, format config.LogFormat) *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level, format)
}

func newLogger(w io.Writer, isTerminal bool, level slog.Leveler, format config.LogFormat) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	useText := format == config.LogFormatText || (format != config.LogFormatJSON && isTerminal)
	if useText {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}
