// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package mapfile

import (
	"fmt"
	"runtime/debug"
)

// Guard runs fn with memory faults turned into panics and recovers
// them as errors. Use it around any code that reads a mapped Buffer:
// without it, a file truncated by another process while mapped kills
// the process with SIGBUS.
//
// Only faults on the calling goroutine are covered. Other panics are
// re-raised unchanged.
func Guard(fn func() error) (err error) {
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		if recovered := recover(); recovered != nil {
			fault, ok := recovered.(interface{ Addr() uintptr })
			if !ok {
				panic(recovered)
			}
			err = fmt.Errorf("memory fault reading mapped input at address %#x: %v", fault.Addr(), recovered)
		}
	}()
	return fn()
}
