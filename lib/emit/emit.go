// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package emit streams chunk spans back out with the delimiter between
// them.
package emit

import (
	"errors"
	"fmt"
	"io"

	"github.com/juggl-project/juggl/lib/scan"
)

// ErrOutputWriteFailed wraps every write error returned by [Emit].
var ErrOutputWriteFailed = errors.New("output write failed")

// Emit writes the content of each span in spans, in list order, reading
// directly from data. The delimiter is written between consecutive
// spans but never after the last one. Output is streamed as it goes:
// the first failed write aborts the emission, and bytes already written
// stay written. Returns the number of bytes written.
func Emit(w io.Writer, data []byte, spans scan.SpanList, delimiter []byte) (int64, error) {
	var written int64
	for index, span := range spans {
		if index > 0 {
			count, err := w.Write(delimiter)
			written += int64(count)
			if err != nil {
				return written, fmt.Errorf("%w: delimiter before chunk %d: %w", ErrOutputWriteFailed, index, err)
			}
		}
		if span.Len() == 0 {
			continue
		}
		count, err := w.Write(span.Bytes(data))
		written += int64(count)
		if err != nil {
			return written, fmt.Errorf("%w: chunk %d (%d bytes): %w", ErrOutputWriteFailed, index, span.Len(), err)
		}
	}
	return written, nil
}
