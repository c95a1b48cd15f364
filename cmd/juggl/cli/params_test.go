// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Delimiter string `flag:"delimiter,d" desc:"chunk delimiter"`
		Verbose   bool   `flag:"verbose,v" desc:"enable verbose output"`
		Threads   int    `flag:"threads" desc:"scan workers"`
		Limit     int64  `flag:"limit" desc:"byte limit"`
		Untagged  string // no flag tag: skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"-d", "::",
		"-v",
		"--threads", "8",
		"--limit", "1099511627776",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Delimiter != "::" {
		t.Errorf("Delimiter = %q, want %q", p.Delimiter, "::")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Threads != 8 {
		t.Errorf("Threads = %d, want 8", p.Threads)
	}
	if p.Limit != 1099511627776 {
		t.Errorf("Limit = %d, want 1099511627776", p.Limit)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field was bound to a flag")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Format     string `flag:"format" desc:"output format" default:"text"`
		Threads    int    `flag:"threads" desc:"workers" default:"1"`
		Limit      int64  `flag:"limit" desc:"byte limit" default:"100"`
		Decompress bool   `flag:"decompress" desc:"decompress" default:"true"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Format != "text" || p.Threads != 1 || p.Limit != 100 || !p.Decompress {
		t.Errorf("params = %+v, want the tag defaults", p)
	}
}

func TestBindFlags_EmbeddedStruct(t *testing.T) {
	type common struct {
		Verbose bool `flag:"verbose,v" desc:"debug logging"`
	}
	type params struct {
		common
		Seed string `flag:"seed,s" desc:"seed"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"-v", "-s", "9"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.Verbose || p.Seed != "9" {
		t.Errorf("params = %+v, want verbose and seed 9", p)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		params  any
		message string
	}{
		{"not a pointer", struct{}{}, "pointer to a struct"},
		{"pointer to non-struct", new(int), "pointer to a struct"},
		{"unsupported type", &struct {
			Rate float64 `flag:"rate"`
		}{}, "unsupported type"},
		{"bad default", &struct {
			Threads int `flag:"threads" default:"many"`
		}{}, "default for --threads"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := BindFlags(test.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), test.message) {
				t.Errorf("error = %v, want it to contain %q", err, test.message)
			}
		})
	}
}

func TestFlagsFromParams_PanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic for a non-pointer")
		}
	}()
	FlagsFromParams("test", struct{}{})
}

func TestParseFlagTag(t *testing.T) {
	if name, shorthand := parseFlagTag("delimiter,d"); name != "delimiter" || shorthand != "d" {
		t.Errorf("parseFlagTag(delimiter,d) = %q, %q", name, shorthand)
	}
	if name, shorthand := parseFlagTag("decompress"); name != "decompress" || shorthand != "" {
		t.Errorf("parseFlagTag(decompress) = %q, %q", name, shorthand)
	}
}
