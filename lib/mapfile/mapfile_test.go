// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package mapfile

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/juggl-project/juggl/lib/testutil"
)

func TestOpenRegularFile(t *testing.T) {
	content := []byte("apple,banana,cherry,date")
	path := testutil.WriteFile(t, "input.txt", content)

	buffer, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer buffer.Close()

	if !bytes.Equal(buffer.Bytes(), content) {
		t.Errorf("Bytes() = %q, want %q", buffer.Bytes(), content)
	}
	if buffer.Len() != len(content) {
		t.Errorf("Len() = %d, want %d", buffer.Len(), len(content))
	}
	if buffer.Path() != path {
		t.Errorf("Path() = %q, want %q", buffer.Path(), path)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	path := testutil.WriteFile(t, "empty.txt", nil)

	buffer, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer buffer.Close()

	if buffer.Len() != 0 {
		t.Errorf("Len() = %d, want 0", buffer.Len())
	}
	if buffer.Mapped() {
		t.Error("empty file reported as mapped")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(t.TempDir()+"/does-not-exist", Options{})
	if !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("Open error = %v, want ErrOpenFailed", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open error = %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestOpenDirectory(t *testing.T) {
	_, err := Open(t.TempDir(), Options{})
	if !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("Open error = %v, want ErrOpenFailed", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	path := testutil.WriteFile(t, "input.txt", []byte("a,b"))
	buffer, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if buffer.Bytes() != nil {
		t.Error("Bytes() not nil after Close")
	}
}

func compressZstd(t *testing.T, data []byte) []byte {
	t.Helper()
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil)
}

func compressGzip(t *testing.T, data []byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buffer.Bytes()
}

func compressLZ4(t *testing.T, data []byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := lz4.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("lz4 write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("lz4 close: %v", err)
	}
	return buffer.Bytes()
}

func TestOpenDecompress(t *testing.T) {
	content := bytes.Repeat([]byte("line one\nline two\nline three\n"), 100)
	tests := []struct {
		name        string
		compressed  []byte
		compression Compression
	}{
		{name: "zstd explicit", compressed: compressZstd(t, content), compression: CompressionZstd},
		{name: "zstd auto", compressed: compressZstd(t, content), compression: CompressionAuto},
		{name: "gzip explicit", compressed: compressGzip(t, content), compression: CompressionGzip},
		{name: "gzip auto", compressed: compressGzip(t, content), compression: CompressionAuto},
		{name: "lz4 explicit", compressed: compressLZ4(t, content), compression: CompressionLZ4},
		{name: "lz4 auto", compressed: compressLZ4(t, content), compression: CompressionAuto},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := testutil.WriteFile(t, "input.bin", test.compressed)
			buffer, err := Open(path, Options{Decompress: test.compression})
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer buffer.Close()

			if !bytes.Equal(buffer.Bytes(), content) {
				t.Errorf("decompressed %d bytes, want %d", buffer.Len(), len(content))
			}
			if buffer.Mapped() {
				t.Error("decompressed buffer reported as mapped")
			}
		})
	}
}

func TestOpenAutoLeavesPlainContent(t *testing.T) {
	content := []byte("plain,text,input")
	path := testutil.WriteFile(t, "plain.txt", content)

	buffer, err := Open(path, Options{Decompress: CompressionAuto})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer buffer.Close()

	if !bytes.Equal(buffer.Bytes(), content) {
		t.Errorf("Bytes() = %q, want %q", buffer.Bytes(), content)
	}
}

func TestOpenDecompressCorrupt(t *testing.T) {
	path := testutil.WriteFile(t, "broken.zst", append([]byte{0x28, 0xb5, 0x2f, 0xfd}, []byte("not really zstd")...))

	_, err := Open(path, Options{Decompress: CompressionZstd})
	if !errors.Is(err, ErrOpenFailed) {
		t.Fatalf("Open error = %v, want ErrOpenFailed", err)
	}
}

func TestParseCompression(t *testing.T) {
	for _, compression := range []Compression{CompressionNone, CompressionAuto, CompressionZstd, CompressionGzip, CompressionLZ4} {
		parsed, err := ParseCompression(compression.String())
		if err != nil {
			t.Errorf("ParseCompression(%q): %v", compression, err)
			continue
		}
		if parsed != compression {
			t.Errorf("ParseCompression(%q) = %v", compression, parsed)
		}
	}
	if _, err := ParseCompression("bzip2"); err == nil {
		t.Error("ParseCompression(bzip2) succeeded, want error")
	}
}

func TestGuardPassesThroughErrors(t *testing.T) {
	sentinel := errors.New("scan failed")
	if err := Guard(func() error { return sentinel }); !errors.Is(err, sentinel) {
		t.Errorf("Guard error = %v, want %v", err, sentinel)
	}
	if err := Guard(func() error { return nil }); err != nil {
		t.Errorf("Guard error = %v, want nil", err)
	}
}

func TestGuardRepanicsOrdinaryPanics(t *testing.T) {
	defer func() {
		if recovered := recover(); recovered != "boom" {
			t.Errorf("recovered %v, want boom", recovered)
		}
	}()
	_ = Guard(func() error { panic("boom") })
}
