// =============================================================================
// CSV Schedule Quoter - Quoting Rule
// =============================================================================
//
// This module holds the cell-level transformation at the heart of the tool:
// wrap a cell value in literal double quotes when it contains the trigger
// substring, leave it alone otherwise.
//
// The rule exists to protect list-like textual content (for example
// "[1,2,3]" in a schedule column) from being misparsed by downstream
// consumers of the delimited format.
//
// =============================================================================

package quoter

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/csv-schedule-quoter/internal/types"
)

// =============================================================================
// RULE
// =============================================================================

// Rule describes the conditional quoting applied to one column.
type Rule struct {
	// Column is the name of the column whose cells are transformed.
	Column string

	// Trigger is the substring that marks a cell for wrapping.
	Trigger string
}

// Apply transforms a single cell value.
//
// If the value contains the trigger substring, the result is the value
// wrapped in literal double-quote characters; otherwise the value is
// returned unchanged. Empty values never contain the trigger and so always
// pass through.
//
// Apply is a pure, total function and it is deliberately NOT idempotent:
// a wrapped value still contains the trigger, so applying the rule again
// wraps it again. That matches the behavior this tool replaces; callers
// that re-process a file get nested quotes, by contract.
func (r Rule) Apply(value string) string {
	if strings.Contains(value, r.Trigger) {
		return "\"" + value + "\""
	}
	return value
}

// ApplyToTable applies the rule to every row's cell in the rule's column.
//
// PARAMETERS:
//   - table: The table to mutate in place.
//
// RETURNS:
//   - The number of cells that were changed.
//   - An error if the table has no column with the rule's name.
//
// Rows shorter than the column index have no cell there and pass through
// unchanged; no cell is materialized for them.
func (r Rule) ApplyToTable(table *types.Table) (int, error) {
	col := table.ColumnIndex(r.Column)
	if col < 0 {
		return 0, fmt.Errorf("column %q not found in %s", r.Column, table.SourceFile)
	}

	changed := 0
	for _, row := range table.Rows {
		if col >= len(row) {
			continue
		}
		if quoted := r.Apply(row[col]); quoted != row[col] {
			row[col] = quoted
			changed++
		}
	}

	return changed, nil
}
