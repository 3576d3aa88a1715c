// Package main provides the CLI entrypoint for mappy.
//
// mappy edits mapping files that tie numeric target and source entries
// to layers:
//   - Opens a file into a persistent editing session
//   - Adds, renames, reorders and removes layers
//   - Shows entries with their offsets
//   - Previews and applies batch transforms with conflict detection
//   - Exports the result with the original line endings
package main

import (
	"log"

	"mappy/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
