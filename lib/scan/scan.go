// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package scan locates chunk boundaries in a byte buffer.
//
// A chunk is the maximal byte range between two consecutive delimiter
// occurrences (or the buffer start/end). Matching is leftmost-first and
// non-overlapping: after a match at p the search resumes at
// p+len(delimiter), so "aaa" split on "aa" yields "" and "a".
//
// The final chunk is always present, even when empty. A trailing
// delimiter therefore produces an empty last chunk, and an empty buffer
// produces exactly one empty chunk. Rejoining the chunks of a [SpanList]
// with the delimiter reconstructs the buffer byte for byte.
package scan

import "bytes"

// Span is a half-open byte range [Start, End) into the scanned buffer.
// It covers one chunk's content and excludes the delimiter after it.
type Span struct {
	Start int
	End   int
}

// Len returns the number of content bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Bytes returns the span's content within data. data must be the buffer
// the span was produced from.
func (s Span) Bytes(data []byte) []byte {
	return data[s.Start:s.End]
}

// SpanList is an ordered sequence of spans. The scanner produces it in
// buffer order; the permutation engine reorders it in place.
type SpanList []Span

// Scan performs one linear pass over data and returns the chunk spans
// separated by delimiter. Panics if delimiter is empty.
func Scan(data, delimiter []byte) SpanList {
	if len(delimiter) == 0 {
		panic("scan: empty delimiter")
	}
	return spansFromMatches(len(data), len(delimiter), matchesIn(data, delimiter, 0, len(data)))
}

// matchesIn returns the start offsets of greedy, non-overlapping
// delimiter matches that begin in [from, limit). Matches may extend
// past limit by up to len(delimiter)-1 bytes.
func matchesIn(data, delimiter []byte, from, limit int) []int {
	var positions []int
	for {
		position := firstMatch(data, delimiter, from, limit)
		if position < 0 {
			return positions
		}
		positions = append(positions, position)
		from = position + len(delimiter)
	}
}

// firstMatch returns the offset of the leftmost delimiter match starting
// in [from, limit), or -1.
func firstMatch(data, delimiter []byte, from, limit int) int {
	if from >= limit {
		return -1
	}
	end := min(limit+len(delimiter)-1, len(data))
	index := bytes.Index(data[from:end], delimiter)
	if index < 0 {
		return -1
	}
	return from + index
}

// spansFromMatches converts ordered match offsets into chunk spans over
// a buffer of the given length.
func spansFromMatches(length, delimiterLength int, positions []int) SpanList {
	spans := make(SpanList, 0, len(positions)+1)
	boundary := 0
	for _, position := range positions {
		spans = append(spans, Span{Start: boundary, End: position})
		boundary = position + delimiterLength
	}
	return append(spans, Span{Start: boundary, End: length})
}
