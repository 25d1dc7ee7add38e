// =============================================================================
// CSV Schedule Quoter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (csvquoter)
//   ├── processCmd (csvquoter process)
//   ├── validateCmd (csvquoter validate)
//   └── versionCmd (csvquoter version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	// Use is the one-line usage message.
	Use: "csvquoter",

	// Short is a short description shown in the 'help' output.
	Short: "CSV Schedule Quoter - Protect list-like schedule values in CSV exports",

	// Long is a longer description shown in the 'help <command>' output.
	Long: `CSV Schedule Quoter is a CLI tool that scans a directory for tabular
files and wraps every schedule-column value containing a '[' character in
literal double quotes, overwriting each file in place.

The quoting protects list-like textual content (such as "[1,2,3]") from being
misparsed by downstream consumers of the delimited format.

Key Features:
  - Zero-config operation: scans the working directory for *.csv files
  - Optional YAML configuration for directory, glob, column and trigger
  - Excel workbook (.xlsx) support alongside CSV
  - Preflight validation without touching any file
  - Optional plain-text run reports

Example Usage:
  csvquoter process                    # Quote all *.csv files in the working directory
  csvquoter process --config ./my.yaml # Use a custom configuration file
  csvquoter validate                   # Check files without writing anything

Note: processing is destructive. Files are overwritten in place and no backup
of the pre-transformation content is retained. Re-running the tool on already
processed files wraps the quoted values again.`,

	// Run is the function that will be executed when the root command is
	// called without any subcommands. In this case, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Execute the root command. If there's an error, print it and exit.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	// The file is optional; defaults reproduce the zero-config behavior.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional, default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging on stderr.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
