// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest computes content digests for shuffle manifests and
// inspection output.
//
// Digests are BLAKE3 keyed hashes under a fixed domain key, so a juggl
// content digest never collides with a plain BLAKE3 hash of the same
// bytes computed by another tool.
package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// contentDomainKey is the ASCII domain name zero-padded to 32 bytes.
// It is a format constant: changing it invalidates every recorded
// manifest digest.
var contentDomainKey = [32]byte{
	'j', 'u', 'g', 'g', 'l', '.', 'c', 'o', 'n', 't', 'e', 'n', 't',
}

// Sum returns the content digest of data.
func Sum(data []byte) Hash {
	hasher := New()
	hasher.Write(data)
	return hasher.Sum()
}

// Hasher computes a content digest incrementally. Writing the pieces of
// a buffer in order gives the same digest as Sum over the whole buffer.
type Hasher struct {
	hasher *blake3.Hasher
}

// New returns an empty Hasher.
func New() *Hasher {
	hasher, err := blake3.NewKeyed(contentDomainKey[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	return &Hasher{hasher: hasher}
}

// Write adds p to the digest. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.hasher.Write(p)
}

// Sum returns the digest of everything written so far.
func (h *Hasher) Sum() Hash {
	var result Hash
	copy(result[:], h.hasher.Sum(nil))
	return result
}

// String returns the lowercase hex encoding of the digest.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Parse decodes a 64-character hex digest.
func Parse(text string) (Hash, error) {
	var result Hash
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return result, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(result) {
		return result, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(result))
	}
	copy(result[:], decoded)
	return result, nil
}

// MarshalText encodes the digest as hex, so JSON and YAML output show
// the same form as String.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a hex digest.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
