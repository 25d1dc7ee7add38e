// =============================================================================
// CSV Schedule Quoter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which runs the same discovery and
// loading as 'process' but only reports problems; nothing is written. It is
// the safe way to check a directory before an in-place, destructive run.
//
// COMMAND USAGE:
//   csvquoter validate [flags]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-schedule-quoter/internal/config"
	"github.com/ginjaninja78/csv-schedule-quoter/internal/csvfile"
	"github.com/ginjaninja78/csv-schedule-quoter/internal/types"
	"github.com/ginjaninja78/csv-schedule-quoter/internal/validation"
	"github.com/ginjaninja78/csv-schedule-quoter/internal/xlsxfile"
	"github.com/ginjaninja78/csv-schedule-quoter/pkg/utils"
)

// validateDir overrides the configured input directory when non-empty.
var validateDir string

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that matching files parse and carry the schedule column",
	Long: `The validate command discovers the same files 'process' would and loads
each one, reporting files that fail to parse or lack the target column. No file
is modified.

A fatal finding on any file makes the command exit non-zero, mirroring how the
same file would halt a processing run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(
		&validateDir,
		"dir",
		"",
		"Input directory to scan (overrides the configuration)",
	)
}

// runValidate checks every discovered file and prints a verdict per file.
func runValidate() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if validateDir != "" {
		if err := cfg.OverrideInputDir(validateDir); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	fm := utils.NewFileManager(cfg.InputDir, "")
	inputFiles, err := fm.DiscoverInputFiles(cfg.FilePattern)
	if err != nil {
		return fmt.Errorf("failed to discover input files: %w", err)
	}

	if len(inputFiles) == 0 {
		fmt.Println("No matching files found.")
		return nil
	}

	fatal := 0
	for _, file := range inputFiles {
		table, err := loadTable(file)
		if err != nil {
			fatal++
			fmt.Printf("  ✗ %s: %v\n", file, err)
			continue
		}

		findings := validation.Inspect(table, cfg.Column)
		if len(findings) == 0 {
			fmt.Printf("  ✓ %s (%d rows)\n", file, table.RowCount())
			continue
		}

		for _, f := range findings {
			if f.Fatal {
				fatal++
				fmt.Printf("  ✗ %s\n", f.Error())
			} else {
				fmt.Printf("  ! %s\n", f.Error())
			}
		}
	}

	if fatal > 0 {
		return fmt.Errorf("validation failed for %d file(s)", fatal)
	}
	return nil
}

// loadTable loads a file with the codec matching its extension.
func loadTable(path string) (*types.Table, error) {
	if utils.HasExtension(path, ".xlsx") {
		return xlsxfile.Parse(path)
	}
	return csvfile.Parse(path)
}
