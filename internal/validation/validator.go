// =============================================================================
// CSV Schedule Quoter - Validation Module
// =============================================================================
//
// This module provides the preflight checks run against a loaded table
// before the quoting rule touches it. The same checks back the standalone
// 'validate' command, which reports findings without writing anything.
//
// CHECKS:
//   - The table has at least a header row (enforced upstream by the codecs,
//     re-checked here for tables built by other callers)
//   - The target column exists in the header
//   - Duplicate target columns are flagged: the rule would only ever see the
//     first one, which is almost certainly not what the file author intended
//
// =============================================================================

package validation

import (
	"fmt"

	"github.com/ginjaninja78/csv-schedule-quoter/internal/types"
)

// Finding describes a single validation problem in a file.
type Finding struct {
	// File is the path of the file the finding applies to.
	File string

	// Message is a human-readable description of the problem.
	Message string

	// Fatal findings stop the file from being processed; non-fatal ones
	// are warnings only.
	Fatal bool
}

// Error formats the finding as an error string.
func (f Finding) Error() string {
	return fmt.Sprintf("%s: %s", f.File, f.Message)
}

// Inspect runs all checks against a table and returns every finding.
//
// PARAMETERS:
//   - table: The loaded table.
//   - column: The name of the column the quoting rule targets.
//
// RETURNS:
//   - All findings, fatal and non-fatal. Empty means the table is clean.
func Inspect(table *types.Table, column string) []Finding {
	var findings []Finding

	if table.ColumnCount() == 0 {
		findings = append(findings, Finding{
			File:    table.SourceFile,
			Message: "file has no header row",
			Fatal:   true,
		})
		return findings
	}

	seen := 0
	for _, h := range table.Headers {
		if h == column {
			seen++
		}
	}

	switch {
	case seen == 0:
		findings = append(findings, Finding{
			File:    table.SourceFile,
			Message: fmt.Sprintf("required column %q not found", column),
			Fatal:   true,
		})
	case seen > 1:
		findings = append(findings, Finding{
			File:    table.SourceFile,
			Message: fmt.Sprintf("column %q appears %d times; only the first occurrence is transformed", column, seen),
			Fatal:   false,
		})
	}

	return findings
}

// CheckTable runs the preflight checks and returns an error if any fatal
// finding is present. Non-fatal findings are ignored here; the 'validate'
// command surfaces them via Inspect.
func CheckTable(table *types.Table, column string) error {
	for _, f := range Inspect(table, column) {
		if f.Fatal {
			return f
		}
	}
	return nil
}
