// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package mapfile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how an input file is encoded on disk.
type Compression uint8

const (
	// CompressionNone uses the file bytes unchanged.
	CompressionNone Compression = iota

	// CompressionAuto sniffs the leading magic bytes and decodes zstd,
	// gzip, or LZ4 frames. Content without a recognized magic is used
	// unchanged.
	CompressionAuto

	// CompressionZstd decodes a zstd stream.
	CompressionZstd

	// CompressionGzip decodes a gzip stream.
	CompressionGzip

	// CompressionLZ4 decodes an LZ4 frame stream.
	CompressionLZ4
)

// Magic numbers at the start of each compressed format.
var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// String returns the flag spelling of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionAuto:
		return "auto"
	case CompressionZstd:
		return "zstd"
	case CompressionGzip:
		return "gzip"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// ParseCompression parses a flag value produced by String.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "", "none":
		return CompressionNone, nil
	case "auto":
		return CompressionAuto, nil
	case "zstd":
		return CompressionZstd, nil
	case "gzip":
		return CompressionGzip, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return CompressionNone, fmt.Errorf("unknown compression %q (want none, auto, zstd, gzip, or lz4)", name)
	}
}

// Detect returns the compression whose magic number prefixes data, or
// CompressionNone.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// decompress decodes raw according to compression and reports the
// format actually applied. For CompressionNone (including an auto
// sniff that found nothing) raw is returned as is.
func decompress(raw []byte, compression Compression) ([]byte, Compression, error) {
	if compression == CompressionAuto {
		compression = Detect(raw)
	}

	switch compression {
	case CompressionNone:
		return raw, CompressionNone, nil

	case CompressionZstd:
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, compression, fmt.Errorf("zstd decoder initialization: %w", err)
		}
		defer decoder.Close()
		decoded, err := decoder.DecodeAll(raw, nil)
		if err != nil {
			return nil, compression, fmt.Errorf("zstd: %w", err)
		}
		return decoded, compression, nil

	case CompressionGzip:
		reader, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, compression, fmt.Errorf("gzip: %w", err)
		}
		defer reader.Close()
		decoded, err := io.ReadAll(reader)
		if err != nil {
			return nil, compression, fmt.Errorf("gzip: %w", err)
		}
		return decoded, compression, nil

	case CompressionLZ4:
		decoded, err := io.ReadAll(lz4.NewReader(bytes.NewReader(raw)))
		if err != nil {
			return nil, compression, fmt.Errorf("lz4: %w", err)
		}
		return decoded, compression, nil

	default:
		return nil, compression, fmt.Errorf("unsupported compression %s", compression)
	}
}
