// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package juggle

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/juggl-project/juggl/lib/digest"
	"github.com/juggl-project/juggl/lib/emit"
	"github.com/juggl-project/juggl/lib/manifest"
	"github.com/juggl-project/juggl/lib/scan"
)

// ErrRestoreMismatch is returned when a shuffled file does not have the
// shape its manifest describes, or when the reassembled content does
// not match the recorded input digest.
var ErrRestoreMismatch = errors.New("shuffled input does not match manifest")

// Restore writes the original input to w, given the shuffled output and
// the manifest recorded alongside it.
//
// Chunks are located by the recorded lengths, not by searching for the
// delimiter, so inputs whose chunks contain partial delimiter matches
// restore exactly. Nothing is written unless the reassembled content
// matches the manifest's input digest.
func Restore(shuffled []byte, m *manifest.Manifest, w io.Writer) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if size := int64(len(shuffled)); size != m.OutputSize() {
		return 0, fmt.Errorf("%w: shuffled input is %d bytes, manifest describes %d",
			ErrRestoreMismatch, size, m.OutputSize())
	}

	emitted, err := locateChunks(shuffled, m)
	if err != nil {
		return 0, err
	}

	original := make(scan.SpanList, len(emitted))
	for position, index := range m.InputOrder() {
		original[position] = emitted[index]
	}

	hasher := digest.New()
	for index, span := range original {
		if index > 0 {
			hasher.Write(m.Delimiter)
		}
		hasher.Write(span.Bytes(shuffled))
	}
	if sum := hasher.Sum(); sum != m.InputDigest {
		return 0, fmt.Errorf("%w: restored digest %s, manifest records %s",
			ErrRestoreMismatch, sum, m.InputDigest)
	}

	return emit.Emit(w, shuffled, original, m.Delimiter)
}

// locateChunks returns the span of each manifest chunk within the
// shuffled buffer, in manifest (output) order, checking that the
// delimiter sits between every pair.
func locateChunks(shuffled []byte, m *manifest.Manifest) (scan.SpanList, error) {
	spans := make(scan.SpanList, len(m.Chunks))
	position := 0
	for index, chunk := range m.Chunks {
		if index > 0 {
			end := position + len(m.Delimiter)
			if !bytes.Equal(shuffled[position:end], m.Delimiter) {
				return nil, fmt.Errorf("%w: no delimiter at offset %d before chunk %d",
					ErrRestoreMismatch, position, index)
			}
			position = end
		}
		end := position + int(chunk.Length)
		spans[index] = scan.Span{Start: position, End: end}
		position = end
	}
	return spans, nil
}
