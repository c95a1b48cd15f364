// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package mapfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapReadOnly maps size bytes of file read-only. The returned release
// function unmaps the region.
func mapReadOnly(file *os.File, size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(int(file.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	// Scanning reads the whole file front to back once. The hint only
	// affects readahead, so a failure is not worth reporting.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return data, unix.Munmap, nil
}
