// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package mapfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// ErrOpenFailed wraps every error returned by [Open].
var ErrOpenFailed = errors.New("cannot open input")

// Options controls how [Open] produces the byte view.
type Options struct {
	// Decompress selects a decoder applied to the raw file content.
	// The zero value (CompressionNone) uses the bytes as they are.
	Decompress Compression
}

// Buffer is a read-only view of a file's entire content. The slice
// returned by Bytes must not be modified and must not be used after
// Close.
type Buffer struct {
	path    string
	data    []byte
	mapped  bool
	release func([]byte) error
}

// Open returns a Buffer over the content of the file at path.
func Open(path string, options Options) (*Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	// A mapping stays valid after its descriptor is closed.
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrOpenFailed, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrOpenFailed, path)
	}

	buffer := &Buffer{path: path}
	switch {
	case !info.Mode().IsRegular():
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", ErrOpenFailed, path, err)
		}
		buffer.data = data
	case info.Size() == 0:
		// mmap rejects zero-length mappings.
	case info.Size() > math.MaxInt:
		return nil, fmt.Errorf("%w: %s is %d bytes, larger than addressable memory", ErrOpenFailed, path, info.Size())
	default:
		data, release, err := mapReadOnly(file, int(info.Size()))
		if err != nil {
			return nil, fmt.Errorf("%w: mapping %s: %w", ErrOpenFailed, path, err)
		}
		buffer.data = data
		buffer.mapped = release != nil
		buffer.release = release
	}

	if options.Decompress == CompressionNone {
		return buffer, nil
	}

	decoded, compression, err := decompress(buffer.data, options.Decompress)
	if err == nil && compression != CompressionNone {
		err = buffer.Close()
		buffer = &Buffer{path: path, data: decoded}
	}
	if err != nil {
		buffer.Close()
		return nil, fmt.Errorf("%w: decompressing %s as %s: %w", ErrOpenFailed, path, options.Decompress, err)
	}
	return buffer, nil
}

// Bytes returns the file content.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Path returns the path the buffer was opened from.
func (b *Buffer) Path() string {
	return b.path
}

// Mapped reports whether the content is served from a memory map rather
// than the heap.
func (b *Buffer) Mapped() bool {
	return b.mapped
}

// Close releases the mapping, if any. It is safe to call more than once.
func (b *Buffer) Close() error {
	release := b.release
	data := b.data
	b.release = nil
	b.data = nil
	b.mapped = false
	if release == nil {
		return nil
	}
	if err := release(data); err != nil {
		return fmt.Errorf("unmapping %s: %w", b.path, err)
	}
	return nil
}
