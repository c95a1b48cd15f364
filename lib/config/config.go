// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads juggl's environment configuration.
//
// Every setting has a command-line flag that takes precedence; the
// environment only supplies defaults. There is no configuration file.
//
//   - JUGGL_LOG_LEVEL: debug, info, warn (default), or error
//   - JUGGL_LOG_FORMAT: auto (default), text, or json
//   - JUGGL_THREADS: boundary scan workers, default 1
//   - JUGGL_WRITE_BUFFER: stdout buffer size in bytes, default 65536
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// LogFormat selects the log handler.
type LogFormat string

const (
	// LogFormatAuto uses text on a terminal and JSON otherwise.
	LogFormatAuto LogFormat = "auto"
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// UnmarshalText accepts exactly the three known formats.
func (f *LogFormat) UnmarshalText(text []byte) error {
	switch format := LogFormat(text); format {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
		*f = format
		return nil
	default:
		return fmt.Errorf("unknown log format %q (want auto, text, or json)", text)
	}
}

// Config holds the environment settings.
type Config struct {
	LogLevel    slog.Level `env:"JUGGL_LOG_LEVEL"    envDefault:"warn"`
	LogFormat   LogFormat  `env:"JUGGL_LOG_FORMAT"   envDefault:"auto"`
	Threads     int        `env:"JUGGL_THREADS"      envDefault:"1"`
	WriteBuffer int        `env:"JUGGL_WRITE_BUFFER" envDefault:"65536"`
}

// Load reads and validates Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks ranges the environment parser cannot express.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("JUGGL_THREADS must be at least 1, got %d", c.Threads)
	}
	if c.WriteBuffer < 1 {
		return fmt.Errorf("JUGGL_WRITE_BUFFER must be at least 1, got %d", c.WriteBuffer)
	}
	return nil
}
