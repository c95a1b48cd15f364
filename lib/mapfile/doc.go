// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package mapfile provides read-only, random-access byte views over
// input files.
//
// [Open] memory-maps regular files (PROT_READ, MAP_SHARED) on Linux and
// Darwin so that scanning and emission read straight from the page
// cache without copying the file onto the Go heap. Empty files, pipes,
// character devices, and platforms without mmap fall back to reading
// the content into memory. Either way the caller gets a [Buffer] whose
// Bytes slice stays valid and unchanged until Close.
//
// Compressed inputs (zstd, gzip, LZ4 frames) can be decoded at open
// time with [Options].Decompress. The decompressed content lives on the
// heap and the compressed mapping is released immediately.
//
// Reading a mapped file that shrinks underneath the process, or whose
// storage returns an I/O error, raises SIGBUS. [Guard] converts such
// faults on the calling goroutine into ordinary errors.
//
// Every failure to produce a Buffer wraps [ErrOpenFailed].
package mapfile
