// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"JUGGL_LOG_LEVEL", "JUGGL_LOG_FORMAT", "JUGGL_THREADS", "JUGGL_WRITE_BUFFER"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{LogLevel: slog.LevelWarn, LogFormat: LogFormatAuto, Threads: 1, WriteBuffer: 65536}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("JUGGL_LOG_LEVEL", "debug")
	t.Setenv("JUGGL_LOG_FORMAT", "json")
	t.Setenv("JUGGL_THREADS", "8")
	t.Setenv("JUGGL_WRITE_BUFFER", "4096")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{LogLevel: slog.LevelDebug, LogFormat: LogFormatJSON, Threads: 8, WriteBuffer: 4096}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		variable string
		value    string
		message  string
	}{
		{name: "level", variable: "JUGGL_LOG_LEVEL", value: "loud", message: "parse env:"},
		{name: "format", variable: "JUGGL_LOG_FORMAT", value: "xml", message: "unknown log format"},
		{name: "threads not a number", variable: "JUGGL_THREADS", value: "many", message: "parse env:"},
		{name: "zero threads", variable: "JUGGL_THREADS", value: "0", message: "JUGGL_THREADS"},
		{name: "negative buffer", variable: "JUGGL_WRITE_BUFFER", value: "-1", message: "JUGGL_WRITE_BUFFER"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(test.variable, test.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), test.message) {
				t.Errorf("error = %v, want it to contain %q", err, test.message)
			}
		})
	}
}
