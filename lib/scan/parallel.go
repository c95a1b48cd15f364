// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"runtime/debug"
	"sync"
)

// MinSegmentSize is the smallest buffer segment handed to a parallel
// worker. Buffers shorter than two segments are scanned sequentially.
const MinSegmentSize = 1 << 20

// segment is one worker's share of the buffer: greedy matches that
// start in [start, limit), computed as if scanning began at start.
type segment struct {
	start   int
	limit   int
	matches []int
	fault   any
}

// Parallel returns exactly what [Scan] returns, splitting the search
// across up to workers goroutines. Each worker scans its own segment
// independently; a sequential merge then repairs segments whose first
// bytes were consumed by the previous segment's last match.
//
// data is typically a read-only memory map. A memory fault inside a
// worker is recovered there and re-raised as a panic on the calling
// goroutine, where the caller's fault guard (if any) can convert it.
func Parallel(data, delimiter []byte, workers int) SpanList {
	return parallel(data, delimiter, workers, MinSegmentSize)
}

func parallel(data, delimiter []byte, workers, minSegmentSize int) SpanList {
	if len(delimiter) == 0 {
		panic("scan: empty delimiter")
	}
	segmentSize := max(minSegmentSize, len(data)/max(workers, 1))
	if workers <= 1 || len(data) < 2*segmentSize {
		return Scan(data, delimiter)
	}

	var segments []*segment
	for start := 0; start < len(data); start += segmentSize {
		segments = append(segments, &segment{start: start, limit: min(start+segmentSize, len(data))})
	}

	var group sync.WaitGroup
	for _, current := range segments {
		group.Go(func() {
			defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
			defer func() {
				if recovered := recover(); recovered != nil {
					current.fault = recovered
				}
			}()
			current.matches = matchesIn(data, delimiter, current.start, current.limit)
		})
	}
	group.Wait()

	for _, current := range segments {
		if current.fault != nil {
			panic(current.fault)
		}
	}

	return spansFromMatches(len(data), len(delimiter), mergeSegments(data, delimiter, segments))
}

// mergeSegments concatenates per-segment matches into the sequence a
// single left-to-right scan would produce.
//
// A worker's matches are correct whenever its segment starts at or after
// the end of the previous accepted match: greedy matching from the
// segment start then agrees with greedy matching from that earlier
// point, since no match begins in between. Otherwise the segment is
// rescanned sequentially from the end of the previous match until a
// rescanned match coincides with a worker match; from that position on
// both scans are identical.
func mergeSegments(data, delimiter []byte, segments []*segment) []int {
	var positions []int
	next := 0
	for _, current := range segments {
		matches := current.matches
		if next > current.start {
			for {
				for len(matches) > 0 && matches[0] < next {
					matches = matches[1:]
				}
				position := firstMatch(data, delimiter, next, current.limit)
				if position < 0 {
					matches = nil
					break
				}
				if len(matches) > 0 && matches[0] == position {
					break
				}
				positions = append(positions, position)
				next = position + len(delimiter)
			}
		}
		if len(matches) > 0 {
			positions = append(positions, matches...)
			next = matches[len(matches)-1] + len(delimiter)
		}
	}
	return positions
}
