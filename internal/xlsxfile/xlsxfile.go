// =============================================================================
// CSV Schedule Quoter - XLSX File Module
// =============================================================================
//
// This module gives the quoting rule a second input format: Excel workbooks.
// The first sheet is treated exactly like a CSV file: row 1 is the header,
// every following row is data. The target column's cells are rewritten
// in place before the workbook is saved back to its path.
//
// Only the first sheet is touched. Formatting, formulas in other columns and
// all other sheets are left as they are.
//
// =============================================================================

package xlsxfile

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/csv-schedule-quoter/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads the first sheet of a workbook and returns it as a Table.
//
// PARAMETERS:
//   - filePath: The path to the .xlsx file.
//
// RETURNS:
//   - A pointer to the Table containing the sheet data.
//   - An error if the workbook cannot be opened or read.
func Parse(filePath string) (*types.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	return &types.Table{
		Headers:    rows[0],
		Rows:       rows[1:],
		SourceFile: filePath,
	}, nil
}

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// Save writes a Table back into the first sheet of the workbook at the
// given path, then saves the workbook in place.
//
// PARAMETERS:
//   - table: The table holding the (mutated) cell values.
//   - filePath: The destination workbook path.
//
// RETURNS:
//   - An error if the workbook cannot be opened, updated or saved.
//
// The workbook is re-opened rather than rebuilt so that sheets and cells
// outside the table keep their existing content.
func Save(table *types.Table, filePath string) error {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return fmt.Errorf("workbook has no sheets")
	}

	if err := writeRow(f, sheetName, 1, table.Headers); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := writeRow(f, sheetName, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// writeRow writes one row of string cells at the given 1-indexed sheet row.
func writeRow(f *excelize.File, sheetName string, rowNum int, cells []string) error {
	for col, value := range cells {
		cellName, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates (%d,%d): %w", col+1, rowNum, err)
		}
		if err := f.SetCellValue(sheetName, cellName, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cellName, err)
		}
	}
	return nil
}
