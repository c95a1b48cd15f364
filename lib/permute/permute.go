// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package permute reorders a sequence uniformly at random, in place.
//
// [Shuffle] is Fisher-Yates driven by a [Generator], the single
// "uniform index in [0, n)" capability. Generators come in two variants
// that the shuffle consumes identically:
//
//   - [Deterministic] derives a BLAKE3 extendable-output stream from a
//     64-bit seed. The resulting permutation is a pure function of the
//     seed and the sequence length, stable across platforms and Go
//     releases because no standard-library generator is involved.
//   - [Entropy] is a ChaCha8 generator seeded from crypto/rand. Runs
//     are not reproducible.
//
// Index draws are unbiased: words that would skew the modulo reduction
// are rejected and redrawn.
package permute

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidSeed is returned by [ParseSeed] for text that is not an
// unsigned 64-bit decimal integer.
var ErrInvalidSeed = errors.New("invalid seed")

// Source produces uniformly distributed 64-bit words. It has the same
// shape as math/rand/v2.Source, so *rand.ChaCha8 satisfies it directly.
type Source interface {
	Uint64() uint64
}

// Generator draws uniform indices from a Source. A Generator is not safe
// for concurrent use.
type Generator struct {
	source Source
}

// NewGenerator wraps source in a Generator.
func NewGenerator(source Source) *Generator {
	return &Generator{source: source}
}

// IntN returns a uniformly distributed integer in [0, n). Panics if
// n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("permute: IntN called with non-positive bound %d", n))
	}
	bound := uint64(n)
	// 2^64 mod bound: the number of words at the top of the range that
	// would make some residues more likely than others.
	excess := (math.MaxUint64%bound + 1) % bound
	for {
		word := g.source.Uint64()
		if word <= math.MaxUint64-excess {
			return int(word % bound)
		}
	}
}

// Shuffle permutes items in place with Fisher-Yates: for i from the last
// index down to 1, swap items[i] with items[j] for j uniform in [0, i].
// Sequences of length 0 or 1 are left untouched and consume no words.
func Shuffle[T any](items []T, generator *Generator) {
	for i := len(items) - 1; i > 0; i-- {
		j := generator.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// ParseSeed parses a decimal unsigned 64-bit seed.
func ParseSeed(text string) (uint64, error) {
	seed, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned 64-bit integer", ErrInvalidSeed, text)
	}
	return seed, nil
}
