// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/juggl-project/juggl/lib/delimiter"
	"github.com/juggl-project/juggl/lib/mapfile"
	"github.com/juggl-project/juggl/lib/permute"
)

// ErrorCategory classifies command errors so the exit status tells
// scripts whether to fix their input or report a failure.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// a bad delimiter or seed, an unknown flag, a wrong argument count.
	// The caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a named file does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal indicates an I/O failure or inconsistent data:
	// unreadable input, failed output writes, corrupt manifests.
	CategoryInternal ErrorCategory = "internal"
)

// Exit statuses by category.
const (
	exitFailure = 1
	exitUsage   = 2
)

// ToolError is a categorized error returned by commands.
//
// ToolError wraps an inner error, preserving the full error chain while
// adding the category. Use the category-specific constructors
// (Validation, NotFound, Internal) or [Classify] rather than
// constructing ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next step shown after the message, separated
	// by a blank line.
	Hint string
}

// Error returns the underlying error message followed by the hint, if
// any. The category is not included in the string.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode returns 2 for validation errors and 1 for everything else.
func (e *ToolError) ExitCode() int {
	if e.Category == CategoryValidation {
		return exitUsage
	}
	return exitFailure
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a named file does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Classify returns err wrapped in a ToolError whose category follows
// from the sentinel errors in its chain. Errors that already carry a
// category or an exit code are returned unchanged. nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return err
	}
	var exitError *ExitError
	if errors.As(err, &exitError) {
		return err
	}

	category := CategoryInternal
	switch {
	case errors.Is(err, delimiter.ErrInvalidDelimiter), errors.Is(err, permute.ErrInvalidSeed):
		category = CategoryValidation
	case errors.Is(err, mapfile.ErrOpenFailed) && errors.Is(err, fs.ErrNotExist):
		category = CategoryNotFound
	}
	return &ToolError{Category: category, Err: err}
}
