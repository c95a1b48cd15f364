// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to name inside a fresh temporary directory
// and returns the absolute path. The directory is removed when the test
// completes.
//
//	path := testutil.WriteFile(t, "input.txt", []byte("a,b,c"))
func WriteFile(t testing.TB, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// ErrWriterClosed is the error returned by [FailingWriter] once its
// budget is exhausted.
var ErrWriterClosed = errors.New("writer closed")

// FailingWriter accepts up to Limit bytes, then fails every write with
// ErrWriterClosed. A write that straddles the limit is partially
// accepted, like a pipe whose reader goes away mid-write.
type FailingWriter struct {
	Limit   int
	Written []byte
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	remaining := w.Limit - len(w.Written)
	if remaining >= len(p) {
		w.Written = append(w.Written, p...)
		return len(p), nil
	}
	if remaining > 0 {
		w.Written = append(w.Written, p[:remaining]...)
		return remaining, ErrWriterClosed
	}
	return 0, ErrWriterClosed
}
