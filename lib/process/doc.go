// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package process turns the error returned by the juggl command tree
// into a process exit. It is the only place outside the command layer
// that writes directly to stderr.
package process
