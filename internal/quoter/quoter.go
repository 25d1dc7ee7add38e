// =============================================================================
// CSV Schedule Quoter - Quoter Module
// =============================================================================
//
// This module contains the core processing logic. It orchestrates the
// pipeline for a single file, from loading to in-place persistence.
//
// PROCESSING PIPELINE:
//   1. Load the file into a Table (CSV or XLSX, by extension)
//   2. Run the preflight validation (target column present)
//   3. Apply the quoting rule to the target column
//   4. Overwrite the source file with the mutated table
//
// CONCURRENCY:
//   Each file is processed in its own goroutine when the batch runs with
//   max_concurrency > 1. The quoter holds no shared state and is safe to
//   run concurrently against distinct files.
//
// =============================================================================

package quoter

import (
	"fmt"
	"os"
	"time"

	"github.com/ginjaninja78/csv-schedule-quoter/internal/csvfile"
	"github.com/ginjaninja78/csv-schedule-quoter/internal/types"
	"github.com/ginjaninja78/csv-schedule-quoter/internal/validation"
	"github.com/ginjaninja78/csv-schedule-quoter/internal/xlsxfile"
	"github.com/ginjaninja78/csv-schedule-quoter/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the file that was processed.
	FilePath string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	// This is nil if processing was successful.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsProcessed is the number of data rows in the file.
	RowsProcessed int

	// CellsQuoted is the number of cells the rule actually changed.
	CellsQuoted int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// QUOTER STRUCTURE
// =============================================================================

// Quoter handles the in-place quoting of a single tabular file.
type Quoter struct {
	// filePath is the path to the input file.
	filePath string

	// rule is the column quoting rule to apply.
	rule Rule

	// dryRun runs the full pipeline but skips the overwrite.
	dryRun bool

	// logger is used for diagnostics.
	logger Logger
}

// Logger is an interface for logging.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Quoter instance.
//
// PARAMETERS:
//   - filePath: The path to the input file.
//   - rule: The column quoting rule to apply.
//
// RETURNS:
//   - A new Quoter instance.
func New(filePath string, rule Rule) *Quoter {
	return &Quoter{
		filePath: filePath,
		rule:     rule,
		logger:   &defaultLogger{},
	}
}

// SetDryRun toggles dry-run mode: the pipeline runs but nothing is written.
func (q *Quoter) SetDryRun(dryRun bool) {
	q.dryRun = dryRun
}

// SetLogger replaces the quoter's logger.
func (q *Quoter) SetLogger(logger Logger) {
	if logger != nil {
		q.logger = logger
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the quoting pipeline for the file.
//
// RETURNS:
//   - A Result struct containing the outcome of the processing.
//
// PROCESSING STEPS:
//   1. Load the file into a Table
//   2. Preflight the table
//   3. Apply the quoting rule
//   4. Overwrite the source file
func (q *Quoter) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: q.filePath,
		Success:  false,
	}

	// =========================================================================
	// STEP 1: LOAD FILE
	// =========================================================================
	// The file format is chosen by extension; everything downstream works on
	// the same Table type either way.

	q.logger.Debug("Processing file: %s", q.filePath)

	table, err := q.load()
	if err != nil {
		result.Error = fmt.Errorf("failed to load file: %w", err)
		return result
	}

	result.Stats.RowsProcessed = table.RowCount()
	q.logger.Debug("Loaded %d rows", table.RowCount())

	// =========================================================================
	// STEP 2: PREFLIGHT
	// =========================================================================
	// A file without the target column is an error for that file, never a
	// silent skip.

	if err := validation.CheckTable(table, q.rule.Column); err != nil {
		result.Error = err
		return result
	}

	// =========================================================================
	// STEP 3: APPLY QUOTING RULE
	// =========================================================================

	changed, err := q.rule.ApplyToTable(table)
	if err != nil {
		result.Error = fmt.Errorf("failed to apply quoting rule: %w", err)
		return result
	}

	result.Stats.CellsQuoted = changed
	q.logger.Debug("Quoted %d cell(s)", changed)

	// =========================================================================
	// STEP 4: PERSIST IN PLACE
	// =========================================================================
	// Full overwrite of the source path. Destructive by design; there is no
	// backup of the pre-transformation file.

	if q.dryRun {
		q.logger.Info("Dry run: skipping write of %s", q.filePath)
	} else {
		if err := q.save(table); err != nil {
			result.Error = fmt.Errorf("failed to write file: %w", err)
			return result
		}
	}

	// =========================================================================
	// COMPLETE
	// =========================================================================

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// load reads the file into a Table, picking the codec by extension.
func (q *Quoter) load() (*types.Table, error) {
	if isWorkbook(q.filePath) {
		return xlsxfile.Parse(q.filePath)
	}
	return csvfile.Parse(q.filePath)
}

// save overwrites the source file with the mutated table.
func (q *Quoter) save(table *types.Table) error {
	if isWorkbook(q.filePath) {
		return xlsxfile.Save(table, q.filePath)
	}
	return csvfile.Save(table, q.filePath)
}

// isWorkbook reports whether the path names an Excel workbook.
func isWorkbook(path string) bool {
	return utils.HasExtension(path, ".xlsx")
}

// =============================================================================
// DEFAULT LOGGER
// =============================================================================

// defaultLogger is a simple logger that prints diagnostics to stderr,
// keeping stdout free for the per-file progress notices.
type defaultLogger struct{}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+msg+"\n", args...)
}

// VerboseLogger prints everything, including debug lines, to stderr.
type VerboseLogger struct{}

func (l *VerboseLogger) Debug(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[DEBUG] "+msg+"\n", args...)
}

func (l *VerboseLogger) Info(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[INFO] "+msg+"\n", args...)
}

func (l *VerboseLogger) Warn(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[WARN] "+msg+"\n", args...)
}

func (l *VerboseLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+msg+"\n", args...)
}
