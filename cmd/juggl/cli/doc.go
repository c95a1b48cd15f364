// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the juggl CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], flag binding from a tagged
// parameter struct ([FlagsFromParams]), and a Run function. Commands are
// assembled into a tree in cmd/juggl/commands and dispatched via
// [Command.Execute], which handles flag parsing, subcommand routing, and
// structured help output with examples. A command with both Run and
// Subcommands runs itself when the first argument is not a subcommand
// name, which is how "juggl FILE -d D" reaches the shuffle command.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Errors are categorized with [ToolError]. [Classify] maps the library
// sentinel errors onto categories, and each category carries its exit
// status: 2 for validation errors, 1 otherwise.
package cli
