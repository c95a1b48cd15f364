// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package delimiter

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidDelimiter is returned by [Parse] for an empty argument or a
// malformed \x escape.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// Delimiter is a non-empty byte sequence separating chunks. Treat it as
// immutable once parsed: the scanner and emitter share the same slice.
type Delimiter []byte

// Parse decodes text into a Delimiter. See the package documentation for
// the escape syntax.
func Parse(text string) (Delimiter, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: delimiter must not be empty", ErrInvalidDelimiter)
	}

	result := make([]byte, 0, len(text))
	for index := 0; index < len(text); index++ {
		current := text[index]
		if current != '\\' || index+1 == len(text) {
			result = append(result, current)
			continue
		}

		next := text[index+1]
		switch next {
		case 'n':
			result = append(result, '\n')
		case 'r':
			result = append(result, '\r')
		case 't':
			result = append(result, '\t')
		case '0':
			result = append(result, 0)
		case '\\':
			result = append(result, '\\')
		case 'x':
			value, ok := decodeHexPair(text, index+2)
			if !ok {
				return nil, fmt.Errorf("%w: \\x at offset %d in %q must be followed by two hex digits",
					ErrInvalidDelimiter, index, text)
			}
			result = append(result, value)
			index += 2
		default:
			// Unknown escape: keep both characters. The follower is
			// appended on the next iteration so multi-byte runes are
			// copied unchanged.
			result = append(result, current)
			continue
		}
		index++
	}

	return Delimiter(result), nil
}

// decodeHexPair decodes the two hex digits starting at offset.
func decodeHexPair(text string, offset int) (byte, bool) {
	if offset+2 > len(text) {
		return 0, false
	}
	high, ok := hexValue(text[offset])
	if !ok {
		return 0, false
	}
	low, ok := hexValue(text[offset+1])
	if !ok {
		return 0, false
	}
	return high<<4 | low, true
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Len returns the number of bytes in the delimiter.
func (d Delimiter) Len() int {
	return len(d)
}

// String returns a Go-quoted rendering of the delimiter, suitable for
// log output where control bytes would otherwise be invisible.
func (d Delimiter) String() string {
	return strconv.Quote(string(d))
}

// Hex returns the lowercase hex encoding of the delimiter bytes.
func (d Delimiter) Hex() string {
	return hex.EncodeToString(d)
}
