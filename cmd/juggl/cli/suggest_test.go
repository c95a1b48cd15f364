// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"shuffle", "shufle", 1},
		{"restore", "restroe", 2},
		{"inspect", "inpsect", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			got := levenshtein(test.a, test.b)
			if got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if reverse := levenshtein(test.b, test.a); reverse != got {
				t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d", test.a, test.b, got, reverse)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "shuffle"},
		{Name: "restore"},
		{Name: "inspect"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"shufle", "shuffle"},  // missing letter
		{"shuffel", "shuffle"}, // transposition
		{"restor", "restore"},  // missing letter
		{"inspekt", "inspect"}, // substitution
		{"versions", "version"},
		{"lines.txt", ""}, // a file name, not a typo
		{"zzzzzzzzz", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := suggestCommand(test.input, commands)
			if got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.StringP("delimiter", "d", "", "")
		flagSet.StringP("seed", "s", "", "")
		flagSet.IntP("threads", "t", 1, "")
		flagSet.StringP("manifest", "m", "", "")
		flagSet.String("decompress", "none", "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "close typo with double dash",
			args: []string{"--delimter", ","},
			want: "--delimiter",
		},
		{
			name: "threads typo",
			args: []string{"--thraeds=4"},
			want: "--threads",
		},
		{
			name: "known flags before the typo",
			args: []string{"-d,", "input.txt", "--sed", "4"},
			want: "--seed",
		},
		{
			name: "unknown shorthand",
			args: []string{"-x"},
			want: "-d",
		},
		{
			name: "nothing close",
			args: []string{"--zzzzzzzzz"},
			want: "",
		},
		{
			name: "no flags",
			args: []string{"positional"},
			want: "",
		},
		{
			name: "after terminator",
			args: []string{"--", "--delimter"},
			want: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := suggestFlag(test.args, makeFlagSet())
			if got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
