// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package juggle runs the shuffle pipeline over an in-memory buffer:
// boundary scan, permutation, emission. It also implements the two
// operations built on a finished shuffle: restoring the original order
// from a manifest, and reporting chunk statistics for an input.
//
// The package never opens files. Callers hand it the bytes of an input
// (usually a memory-mapped [mapfile.Buffer]) and an [io.Writer], and
// are responsible for guarding reads of mapped memory with
// [mapfile.Guard].
//
// [mapfile.Buffer]: github.com/juggl-project/juggl/lib/mapfile.Buffer
// [mapfile.Guard]: github.com/juggl-project/juggl/lib/mapfile.Guard
package juggle
