// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/juggl-project/juggl/cmd/juggl/cli"
	"github.com/juggl-project/juggl/cmd/juggl/commands"
	"github.com/juggl-project/juggl/lib/process"
)

func main() {
	if err := run(); err != nil {
		process.Fatal(err)
	}
}

func run() error {
	return cli.Classify(commands.Root().Execute(os.Args[1:]))
}
