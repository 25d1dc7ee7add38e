// =============================================================================
// CSV Schedule Quoter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvfile
//   - xlsxfile
//   - quoter
//   - validation
//
// =============================================================================

package types

// =============================================================================
// TABLE TYPE
// =============================================================================

// Table is the in-memory representation of one tabular file.
// Header order and row shapes are preserved exactly as read so that the
// save path round-trips the file without inventing columns or cells.
type Table struct {
	// Headers contains the column headers in file order.
	Headers []string

	// Rows contains the data rows in file order.
	// A row may be shorter than Headers; missing trailing cells are
	// never materialized.
	Rows [][]string

	// SourceFile is the path the table was loaded from.
	SourceFile string
}

// ColumnIndex returns the index of the named column in the header row,
// or -1 if the table has no such column.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// RowCount returns the number of data rows (excluding the header).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of declared columns.
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}
