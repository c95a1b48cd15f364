// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/juggl-project/juggl/lib/delimiter"
	"github.com/juggl-project/juggl/lib/emit"
	"github.com/juggl-project/juggl/lib/manifest"
	"github.com/juggl-project/juggl/lib/mapfile"
	"github.com/juggl-project/juggl/lib/permute"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("missing required flag --delimiter")
	if err.Error() != "missing required flag --delimiter" {
		t.Errorf("Error() = %q, want %q", err.Error(), "missing required flag --delimiter")
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := NotFound("cannot open input: shufle").WithHint(`Did you mean "juggl shuffle"?`)

	want := "cannot open input: shufle\n\nDid you mean \"juggl shuffle\"?"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Category != CategoryNotFound {
		t.Errorf("Category = %q, want %q", err.Category, CategoryNotFound)
	}
}

func TestToolError_EmptyHintNotAppended(t *testing.T) {
	err := Internal("unexpected failure")
	if strings.Contains(err.Error(), "\n\n") {
		t.Error("empty hint should not add blank line to error message")
	}
}

func TestToolError_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *ToolError
		code int
	}{
		{"Validation", Validation("bad"), 2},
		{"NotFound", NotFound("missing"), 1},
		{"Internal", Internal("bug"), 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.err.ExitCode(); got != test.code {
				t.Errorf("ExitCode() = %d, want %d", got, test.code)
			}
		})
	}
}

func TestToolError_UnwrapsToCause(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := fmt.Errorf("context: %w", Internal("failed: %w", cause))

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should reach the cause through ToolError")
	}
}

func TestClassify(t *testing.T) {
	openMissing := fmt.Errorf("%w: %w", mapfile.ErrOpenFailed, fs.ErrNotExist)
	openDenied := fmt.Errorf("%w: %w", mapfile.ErrOpenFailed, fs.ErrPermission)

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
	}{
		{"delimiter", fmt.Errorf("%w: empty", delimiter.ErrInvalidDelimiter), CategoryValidation},
		{"seed", fmt.Errorf("%w: \"x\"", permute.ErrInvalidSeed), CategoryValidation},
		{"missing input", openMissing, CategoryNotFound},
		{"unreadable input", openDenied, CategoryInternal},
		{"write failure", fmt.Errorf("%w: broken pipe", emit.ErrOutputWriteFailed), CategoryInternal},
		{"manifest", fmt.Errorf("%w: no chunks", manifest.ErrInvalidManifest), CategoryInternal},
		{"unknown", errors.New("anything else"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			classified := Classify(test.err)
			var toolErr *ToolError
			if !errors.As(classified, &toolErr) {
				t.Fatalf("Classify() = %T, want *ToolError", classified)
			}
			if toolErr.Category != test.category {
				t.Errorf("Category = %q, want %q", toolErr.Category, test.category)
			}
			if !errors.Is(classified, test.err) {
				t.Error("classified error lost its cause")
			}
		})
	}
}

func TestClassifyPreservesCategorizedErrors(t *testing.T) {
	if Classify(nil) != nil {
		t.Error("Classify(nil) != nil")
	}

	original := NotFound("gone")
	if Classify(original) != error(original) {
		t.Error("Classify replaced an existing ToolError")
	}

	exit := &ExitError{Code: 3}
	if Classify(exit) != error(exit) {
		t.Error("Classify replaced an ExitError")
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 4}
	if err.ExitCode() != 4 || !err.Silent() {
		t.Errorf("ExitError{4}: code %d, silent %v", err.ExitCode(), err.Silent())
	}
	if err.Error() != "exit code 4" {
		t.Errorf("Error() = %q", err.Error())
	}
}
