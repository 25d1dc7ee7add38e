// =============================================================================
// CSV Schedule Quoter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which is the main command for
// quoting the schedule column in place. It orchestrates the whole batch.
//
// COMMAND USAGE:
//   csvquoter process [flags]
//
// FLAGS:
//   --dir         : Override the input directory from the configuration
//   --dry-run     : Run the transformation without writing any file
//   --single      : Process only a single file (specify with --file)
//   --file        : Path to a specific file to process (used with --single)
//
// PROCESSING PIPELINE:
//   1. Load configuration (optional file, full defaults otherwise)
//   2. Discover matching files in the input directory
//   3. For each file (bounded concurrency, default sequential):
//      a. Load the file
//      b. Preflight (schedule column present)
//      c. Apply the quoting rule
//      d. Overwrite the file in place
//      e. Print the progress notice
//   4. Print the batch summary
//   5. Optionally write a run report
//
// =============================================================================

package cmd

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-schedule-quoter/internal/config"
	"github.com/ginjaninja78/csv-schedule-quoter/internal/quoter"
	"github.com/ginjaninja78/csv-schedule-quoter/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputDir overrides the configured input directory when non-empty.
var inputDir string

// dryRun runs the transformation without writing output files.
var dryRun bool

// singleFile indicates whether to process only a single file.
var singleFile bool

// filePath is the path to a specific file to process (used with --single).
var filePath string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Quote the schedule column of every matching file, in place",
	Long: `The process command scans the input directory for files matching the
configured glob pattern (default *.csv) and rewrites each one in place, wrapping
every schedule-column value that contains a '[' character in literal double
quotes. Other cells, the header row and the row shapes are preserved exactly.

One notice of the form

  Quoted <file path>

is printed to stdout per successfully written file.

Processing is destructive: the original file content is overwritten and no
backup is retained. The quoting rule is not idempotent, so re-running the
command on already processed files wraps the values again.

By default the batch halts at the first failing file; files processed before
the failure keep their new content, later files are left untouched. Set
continue_on_error in the configuration to process past failures instead.`,

	// RunE is like Run but returns an error. This is preferred for commands
	// that can fail, as it allows Cobra to handle the error gracefully.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	// ==========================================================================
	// LOCAL FLAGS
	// ==========================================================================

	// --dir flag: Override the input directory.
	processCmd.Flags().StringVar(
		&inputDir,
		"dir",
		"",
		"Input directory to scan (overrides the configuration)",
	)

	// --dry-run flag: Run the transformation without writing any file.
	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the transformation without writing any file",
	)

	// --single flag: Process only a single file.
	processCmd.Flags().BoolVar(
		&singleFile,
		"single",
		false,
		"Process only a single file (use with --file)",
	)

	// --file flag: Path to a specific file to process.
	processCmd.Flags().StringVar(
		&filePath,
		"file",
		"",
		"Path to a specific file to process (used with --single)",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess is the main function that orchestrates the batch.
func runProcess() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if inputDir != "" {
		if err := cfg.OverrideInputDir(inputDir); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	rule := quoter.Rule{Column: cfg.Column, Trigger: cfg.Trigger}
	fm := utils.NewFileManager(cfg.InputDir, cfg.ReportDir)

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	var inputFiles []string
	if singleFile {
		if filePath == "" {
			return fmt.Errorf("--single requires --file")
		}
		inputFiles = []string{filePath}
	} else {
		inputFiles, err = fm.DiscoverInputFiles(cfg.FilePattern)
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
	}

	// Zero matching files is a successful no-op: no notices, no error.
	// An empty run still gets a report when reporting is enabled, so that
	// scheduled runs leave a trace even when there was nothing to do.
	if len(inputFiles) == 0 {
		emptySummary := utils.RunSummary{StartTime: startTime, EndTime: time.Now()}
		if _, err := fm.WriteRunReport(emptySummary); err != nil {
			fmt.Printf("Warning: failed to write run report: %v\n", err)
		}
		return nil
	}

	// =========================================================================
	// STEP 3: PROCESS FILES
	// =========================================================================
	// Files are independent, so they can be processed concurrently. The
	// semaphore bounds the fan-out; the default of 1 keeps the batch fully
	// sequential. When the batch is configured to halt on error, the first
	// failure stops further files from being scheduled: files already
	// written stay written, there is no rollback.

	var wg sync.WaitGroup
	var halted atomic.Bool
	sem := make(chan struct{}, cfg.MaxConcurrency)
	results := make(chan quoter.Result, len(inputFiles))

	for _, file := range inputFiles {
		wg.Add(1)

		go func(path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if halted.Load() {
				return
			}

			q := quoter.New(path, rule)
			q.SetDryRun(dryRun)
			if verbose {
				q.SetLogger(&quoter.VerboseLogger{})
			}

			result := q.Run()
			if !result.Success && !cfg.ContinueOnError {
				halted.Store(true)
			}
			results <- result
		}(file)
	}

	// Close the results channel when all goroutines are done.
	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS
	// =========================================================================

	summary := utils.RunSummary{StartTime: startTime}
	var firstErr error

	for result := range results {
		outcome := utils.FileOutcome{
			File:        result.FilePath,
			Success:     result.Success,
			Rows:        result.Stats.RowsProcessed,
			CellsQuoted: result.Stats.CellsQuoted,
		}

		if result.Success {
			summary.SuccessfulFiles++
			summary.TotalRows += result.Stats.RowsProcessed
			summary.TotalCellsQuoted += result.Stats.CellsQuoted
			fmt.Printf("Quoted %s\n", result.FilePath)
		} else {
			summary.FailedFiles++
			outcome.Error = result.Error.Error()
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", result.FilePath, result.Error)
			}
		}

		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	summary.TotalFiles = len(inputFiles)
	summary.EndTime = time.Now()

	// =========================================================================
	// STEP 5: REPORT
	// =========================================================================

	if reportPath, err := fm.WriteRunReport(summary); err != nil {
		fmt.Printf("Warning: failed to write run report: %v\n", err)
	} else if reportPath != "" && verbose {
		fmt.Printf("Run report written to %s\n", reportPath)
	}

	if verbose {
		fmt.Printf("Processed %d file(s), %d failed, in %s\n",
			summary.SuccessfulFiles+summary.FailedFiles,
			summary.FailedFiles,
			summary.EndTime.Sub(summary.StartTime))
	}

	// The batch fails if any file failed; with continue_on_error unset the
	// failure also halted the remaining files above.
	if firstErr != nil {
		return firstErr
	}

	return nil
}
