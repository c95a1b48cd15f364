// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// exitCoder is implemented by errors that choose their own exit status.
type exitCoder interface {
	ExitCode() int
}

// silencer is implemented by errors whose command already reported the
// failure, so no message should be printed.
type silencer interface {
	Silent() bool
}

// Report writes "juggl: error: err" to w and returns the exit status
// for err: the ExitCode of the first error in the chain that has one,
// or 1. Errors that report themselves as silent are not printed.
func Report(w io.Writer, err error) int {
	code := 1
	var coder exitCoder
	if errors.As(err, &coder) {
		code = coder.ExitCode()
	}
	var quiet silencer
	if errors.As(err, &quiet) && quiet.Silent() {
		return code
	}
	fmt.Fprintf(w, "juggl: error: %v\n", err)
	return code
}

// Fatal reports err on stderr and exits with its status. Use it in
// main() for errors from run().
func Fatal(err error) {
	os.Exit(Report(os.Stderr, err))
}
