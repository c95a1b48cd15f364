// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package juggle

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/juggl-project/juggl/lib/delimiter"
	"github.com/juggl-project/juggl/lib/digest"
	"github.com/juggl-project/juggl/lib/emit"
	"github.com/juggl-project/juggl/lib/manifest"
	"github.com/juggl-project/juggl/lib/permute"
	"github.com/juggl-project/juggl/lib/scan"
)

// Options configures a shuffle.
type Options struct {
	// Delimiter separates chunks. Must be non-empty.
	Delimiter delimiter.Delimiter

	// Seed makes the permutation reproducible. Nil draws a fresh
	// generator from operating system entropy.
	Seed *uint64

	// Workers is the number of goroutines used for the boundary scan.
	// Values below 2 scan sequentially.
	Workers int

	// Logger receives progress at debug level. Nil discards.
	Logger *slog.Logger
}

// Result describes a completed shuffle.
type Result struct {
	// Order is the chunk spans in the order they were written.
	Order scan.SpanList

	// BytesWritten counts chunk and delimiter bytes written to the
	// output.
	BytesWritten int64
}

// Shuffle splits data at every occurrence of the delimiter, permutes
// the chunks, and writes them to w separated by the delimiter.
//
// On a write failure the returned error wraps [emit.ErrOutputWriteFailed]
// and the partial Result is still returned, so callers can report how
// much was written.
func Shuffle(data []byte, w io.Writer, options Options) (*Result, error) {
	if len(options.Delimiter) == 0 {
		return nil, fmt.Errorf("%w: empty delimiter", delimiter.ErrInvalidDelimiter)
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	spans := scan.Parallel(data, options.Delimiter, options.Workers)
	logger.Debug("input scanned",
		"bytes", len(data),
		"chunks", len(spans),
		"workers", max(options.Workers, 1),
	)

	generator, err := newGenerator(options.Seed)
	if err != nil {
		return nil, err
	}
	permute.Shuffle(spans, generator)

	written, err := emit.Emit(w, data, spans, options.Delimiter)
	result := &Result{Order: spans, BytesWritten: written}
	if err != nil {
		return result, err
	}
	logger.Debug("chunks emitted", "bytes_written", written)
	return result, nil
}

func newGenerator(seed *uint64) (*permute.Generator, error) {
	if seed != nil {
		return permute.Deterministic(*seed), nil
	}
	generator, err := permute.Entropy()
	if err != nil {
		return nil, fmt.Errorf("seeding permutation from entropy: %w", err)
	}
	return generator, nil
}

// NewManifest records a finished shuffle of data so [Restore] can undo
// it. order is Result.Order from the same shuffle.
func NewManifest(data []byte, delim delimiter.Delimiter, seed *uint64, order scan.SpanList) *manifest.Manifest {
	chunks := make([]manifest.Chunk, len(order))
	for index, span := range order {
		chunks[index] = manifest.Chunk{Offset: int64(span.Start), Length: int64(span.Len())}
	}
	var recordedSeed *uint64
	if seed != nil {
		value := *seed
		recordedSeed = &value
	}
	return &manifest.Manifest{
		Version:     manifest.FormatVersion,
		Delimiter:   append([]byte(nil), delim...),
		Seed:        recordedSeed,
		InputSize:   int64(len(data)),
		InputDigest: digest.Sum(data),
		Chunks:      chunks,
	}
}
