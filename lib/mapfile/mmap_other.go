// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !(darwin || linux)

package mapfile

import (
	"io"
	"os"
)

// mapReadOnly reads the file into memory on platforms without a
// supported mmap. A nil release function marks the data as heap-owned.
func mapReadOnly(file *os.File, size int) ([]byte, func([]byte) error, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}
