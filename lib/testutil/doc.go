// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for juggl packages.
//
// [WriteFile] creates an input file inside the test's temporary
// directory and returns its path, so tests that exercise the mapping
// provider or the CLI do not repeat the MkdirTemp/WriteFile dance.
//
// [FailingWriter] is an io.Writer that accepts a fixed number of bytes
// and then fails, for exercising partial-output paths such as a closed
// downstream pipe.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no juggl-internal dependencies.
package testutil
