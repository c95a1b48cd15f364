// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package delimiter decodes the user-supplied delimiter argument into
// the concrete byte sequence that separates chunks.
//
// The argument syntax is a small escape language so that control bytes
// can be typed on a shell command line:
//
//	\n \r \t \0 \\   newline, carriage return, tab, NUL, backslash
//	\xHH             the byte with hex value HH (exactly two digits)
//
// Any other backslash sequence is kept literally (both characters), so
// "\q" decodes to the two bytes '\\' and 'q'. Everything else passes
// through as its UTF-8 encoding.
//
// [Parse] fails with [ErrInvalidDelimiter] when the argument is empty
// or a \x escape is not followed by two hex digits. A successfully
// parsed [Delimiter] is never empty.
package delimiter
