// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"strings"
	"testing"

	"github.com/juggl-project/juggl/cmd/juggl/cli"
	"github.com/juggl-project/juggl/cmd/juggl/commands"
)

// TestCommandTreeHelp walks the production command tree and checks
// that every subcommand has a summary for the parent's listing and
// that every command's help renders, which binds its parameter struct.
func TestCommandTreeHelp(t *testing.T) {
	walkCommands(commands.Root(), nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if len(path) > 1 && command.Summary == "" {
			t.Errorf("%s: missing Summary", name)
		}
		func() {
			defer func() {
				if recovered := recover(); recovered != nil {
					t.Errorf("%s: help panicked: %v", name, recovered)
				}
			}()
			command.PrintHelp(io.Discard)
		}()
	})
}

// walkCommands recursively visits every command in the tree,
// calling visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
