// =============================================================================
// CSV Schedule Quoter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the CSV Schedule Quoter CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   csvquoter process       - Quote the schedule column of every CSV in the input directory
//   csvquoter validate      - Check files parse and carry the schedule column, without writing
//   csvquoter version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/csv-schedule-quoter/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
