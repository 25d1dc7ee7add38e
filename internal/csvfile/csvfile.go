// =============================================================================
// CSV Schedule Quoter - CSV File Module
// =============================================================================
//
// This module loads and saves CSV files as Tables. It is the read/write half
// of the in-place pipeline: Parse pulls a file into memory, Save overwrites
// the same path with the (possibly mutated) table.
//
// ROUND-TRIP RULES:
//   - Header order and row order are preserved exactly.
//   - Rows shorter than the header stay short; no cells are invented.
//   - No synthetic row-index column is added on output.
//   - Standard CSV escaping applies on write: a stored value that contains
//     quote characters or the delimiter is escaped by the writer, so a cell
//     holding `"[1,2,3]"` lands on disk as `"""[1,2,3]"""`.
//
// =============================================================================

package csvfile

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ginjaninja78/csv-schedule-quoter/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns it as a Table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - A pointer to the Table containing the parsed data.
//   - An error if the file cannot be read or parsed.
//
// The first row is taken as the header; every following row is data.
// Fields are kept verbatim, with no whitespace trimming, so that cells the
// transformation does not touch round-trip byte for byte.
func Parse(filePath string) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(bufio.NewReader(file))
	configureReader(csvReader)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	return &types.Table{
		Headers:    allRows[0],
		Rows:       allRows[1:],
		SourceFile: filePath,
	}, nil
}

// configureReader configures the CSV reader.
func configureReader(reader *csv.Reader) {
	// Allow variable number of fields per row. Short rows are legitimate
	// input and must survive the round trip at their original width.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	// Legacy exports are not always well formed.
	reader.LazyQuotes = true
}

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// Save writes a Table to the given path, fully overwriting any existing file.
//
// PARAMETERS:
//   - table: The table to write.
//   - filePath: The destination path (normally table.SourceFile).
//
// RETURNS:
//   - An error if the file cannot be created or written.
func Save(table *types.Table, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(table.Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return file.Sync()
}
