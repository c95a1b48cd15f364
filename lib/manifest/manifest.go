// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest records the order in which a shuffle emitted its
// chunks, so the original file can be rebuilt from the shuffled output.
//
// A manifest is a single CBOR item in Core Deterministic Encoding
// (RFC 8949 §4.2): the same shuffle always produces byte-identical
// manifest files. Struct fields use integer keys to keep manifests small
// for inputs with millions of chunks.
//
// Chunks are listed in output order. Each entry names the chunk's
// offset and length in the original input, which identifies it
// uniquely: chunk offsets strictly increase in input order because
// every chunk after the first starts right after a delimiter.
package manifest

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/fxamacker/cbor/v2"

	"github.com/juggl-project/juggl/lib/digest"
)

// FormatVersion is the manifest layout written by this package.
const FormatVersion = 1

// ErrInvalidManifest wraps decode failures and internally inconsistent
// manifests.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest describes one shuffle.
type Manifest struct {
	// Version is the manifest layout; see FormatVersion.
	Version int `cbor:"1,keyasint"`

	// Delimiter is the decoded delimiter bytes.
	Delimiter []byte `cbor:"2,keyasint"`

	// Seed is the seed used, or nil for an entropy-seeded shuffle.
	Seed *uint64 `cbor:"3,keyasint,omitempty"`

	// InputSize is the length of the original input in bytes.
	InputSize int64 `cbor:"4,keyasint"`

	// InputDigest is the content digest of the original input.
	InputDigest digest.Hash `cbor:"5,keyasint"`

	// Chunks lists the emitted chunks in output order.
	Chunks []Chunk `cbor:"6,keyasint"`
}

// Chunk locates one chunk in the original input.
type Chunk struct {
	Offset int64 `cbor:"1,keyasint"`
	Length int64 `cbor:"2,keyasint"`
}

// OutputSize returns the length of the shuffled output the manifest
// describes: all chunk bytes plus one delimiter between each pair.
func (m *Manifest) OutputSize() int64 {
	if len(m.Chunks) == 0 {
		return 0
	}
	size := int64(len(m.Delimiter)) * int64(len(m.Chunks)-1)
	for _, chunk := range m.Chunks {
		size += chunk.Length
	}
	return size
}

// InputOrder returns indices into Chunks sorted by original offset,
// that is, the order in which the chunks appeared in the input.
func (m *Manifest) InputOrder() []int {
	order := make([]int, len(m.Chunks))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(m.Chunks[a].Offset, m.Chunks[b].Offset)
	})
	return order
}

// Validate checks the invariants that do not need the shuffled file: a
// known version, a non-empty delimiter, at least one chunk, and chunks
// that tile the input exactly, one delimiter apart.
func (m *Manifest) Validate() error {
	if m.Version != FormatVersion {
		return fmt.Errorf("%w: version %d, want %d", ErrInvalidManifest, m.Version, FormatVersion)
	}
	if len(m.Delimiter) == 0 {
		return fmt.Errorf("%w: empty delimiter", ErrInvalidManifest)
	}
	if len(m.Chunks) == 0 {
		return fmt.Errorf("%w: no chunks", ErrInvalidManifest)
	}
	for index, chunk := range m.Chunks {
		if chunk.Offset < 0 || chunk.Length < 0 || chunk.Offset+chunk.Length > m.InputSize {
			return fmt.Errorf("%w: chunk %d (offset %d, length %d) outside input of %d bytes",
				ErrInvalidManifest, index, chunk.Offset, chunk.Length, m.InputSize)
		}
	}
	if output := m.OutputSize(); output != m.InputSize {
		return fmt.Errorf("%w: chunks and delimiters cover %d bytes, input was %d",
			ErrInvalidManifest, output, m.InputSize)
	}

	var expected int64
	for _, index := range m.InputOrder() {
		chunk := m.Chunks[index]
		if chunk.Offset != expected {
			return fmt.Errorf("%w: chunk %d starts at offset %d, want %d",
				ErrInvalidManifest, index, chunk.Offset, expected)
		}
		expected = chunk.Offset + chunk.Length + int64(len(m.Delimiter))
	}
	return nil
}

// encMode writes Core Deterministic Encoding: sorted map keys, smallest
// integer encodings, no indefinite-length items.
var encMode cbor.EncMode

// decMode rejects trailing garbage and duplicate keys. Unknown fields
// are ignored so that later versions can add optional fields.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("manifest: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("manifest: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes m.
func Marshal(m *Manifest) ([]byte, error) {
	return encMode.Marshal(m)
}

// Unmarshal decodes and validates a manifest.
func Unmarshal(data []byte) (*Manifest, error) {
	var m Manifest
	if err := decMode.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// WriteFile encodes m into a new file at path, replacing any existing
// file.
func WriteFile(path string, m *Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadFile reads and validates the manifest at path.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Unmarshal(data)
}
