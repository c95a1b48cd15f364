// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package juggle

import (
	"github.com/juggl-project/juggl/lib/delimiter"
	"github.com/juggl-project/juggl/lib/digest"
	"github.com/juggl-project/juggl/lib/scan"
)

// Stats summarizes how a delimiter divides an input.
type Stats struct {
	Size         int64       `json:"size"          yaml:"size"`
	Chunks       int         `json:"chunks"        yaml:"chunks"`
	EmptyChunks  int         `json:"empty_chunks"  yaml:"empty_chunks"`
	MinChunk     int         `json:"min_chunk"     yaml:"min_chunk"`
	MaxChunk     int         `json:"max_chunk"     yaml:"max_chunk"`
	MeanChunk    float64     `json:"mean_chunk"    yaml:"mean_chunk"`
	Delimiter    string      `json:"delimiter"     yaml:"delimiter"`
	DelimiterHex string      `json:"delimiter_hex" yaml:"delimiter_hex"`
	Digest       digest.Hash `json:"digest"        yaml:"digest"`
}

// Inspect scans data with the same boundary rules as [Shuffle] and
// reports chunk statistics. It writes nothing.
func Inspect(data []byte, delim delimiter.Delimiter, workers int) Stats {
	spans := scan.Parallel(data, delim, workers)

	stats := Stats{
		Size:         int64(len(data)),
		Chunks:       len(spans),
		MinChunk:     spans[0].Len(),
		Delimiter:    delim.String(),
		DelimiterHex: delim.Hex(),
		Digest:       digest.Sum(data),
	}
	var total int
	for _, span := range spans {
		length := span.Len()
		total += length
		if length == 0 {
			stats.EmptyChunks++
		}
		stats.MinChunk = min(stats.MinChunk, length)
		stats.MaxChunk = max(stats.MaxChunk, length)
	}
	stats.MeanChunk = float64(total) / float64(len(spans))
	return stats
}
