// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package permute

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/zeebo/blake3"
)

// seedContext is the BLAKE3 key-derivation context for seeded streams.
// It is a format constant: changing it changes every seeded permutation.
const seedContext = "juggl 2026-01-01 seeded permutation stream v1"

// streamSource reads little-endian words from an io.Reader, buffering
// reads so each word does not cost a Read call.
type streamSource struct {
	reader io.Reader
	buffer [256]byte
	offset int
}

func newStreamSource(reader io.Reader) *streamSource {
	source := &streamSource{reader: reader}
	source.offset = len(source.buffer)
	return source
}

func (s *streamSource) Uint64() uint64 {
	if s.offset == len(s.buffer) {
		if _, err := io.ReadFull(s.reader, s.buffer[:]); err != nil {
			// BLAKE3 output streams do not end or fail.
			panic(fmt.Sprintf("permute: reading generator stream: %v", err))
		}
		s.offset = 0
	}
	word := binary.LittleEndian.Uint64(s.buffer[s.offset:])
	s.offset += 8
	return word
}

// Deterministic returns a Generator whose output is fully determined by
// seed. Two generators built from the same seed produce the same index
// sequence, so shuffling equal-length sequences yields the same
// permutation.
func Deterministic(seed uint64) *Generator {
	hasher := blake3.NewDeriveKey(seedContext)
	var material [8]byte
	binary.LittleEndian.PutUint64(material[:], seed)
	hasher.Write(material[:])
	return NewGenerator(newStreamSource(hasher.Digest()))
}

// Entropy returns a Generator seeded from the operating system's
// entropy source.
func Entropy() (*Generator, error) {
	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("reading entropy for generator seed: %w", err)
	}
	return NewGenerator(rand.NewChaCha8(key)), nil
}
