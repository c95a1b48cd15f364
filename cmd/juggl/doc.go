// Copyright 2026 The Juggl Authors
// SPDX-License-Identifier: Apache-2.0

// Juggl shuffles the delimited chunks of a file. "juggl FILE -d D"
// splits FILE at every occurrence of D and writes the chunks to stdout
// in random order, optionally reproducible with --seed. The restore
// and inspect subcommands undo a recorded shuffle and report chunk
// statistics.
package main
