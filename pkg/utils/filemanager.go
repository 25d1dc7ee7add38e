// =============================================================================
// CSV Schedule Quoter - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the quoter, including:
//   - File discovery and scanning
//   - Run report generation
//   - Small file utilities
//
// There is deliberately NO archival here: the tool overwrites its inputs in
// place and retains no backup of the pre-transformation file.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for the quoter.
type FileManager struct {
	// InputDir is the directory scanned for input files.
	InputDir string

	// ReportDir is the directory where run reports are written.
	// Empty disables report files.
	ReportDir string
}

// NewFileManager creates a new FileManager for the given directories.
func NewFileManager(inputDir, reportDir string) *FileManager {
	return &FileManager{
		InputDir:  inputDir,
		ReportDir: reportDir,
	}
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles scans the input directory for files matching the pattern.
//
// PARAMETERS:
//   - pattern: A glob pattern to match files (e.g., "*.csv").
//              If empty, defaults to "*.csv".
//
// RETURNS:
//   - A slice of file paths. Zero matches is not an error.
//   - An error if the pattern is malformed.
func (fm *FileManager) DiscoverInputFiles(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.csv"
	}

	fullPattern := filepath.Join(fm.InputDir, pattern)

	files, err := filepath.Glob(fullPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	// Filter out directories.
	var result []string
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			result = append(result, file)
		}
	}

	return result, nil
}

// =============================================================================
// RUN REPORTS
// =============================================================================

// RunSummary contains summary information about a batch run.
type RunSummary struct {
	StartTime        time.Time
	EndTime          time.Time
	TotalFiles       int
	SuccessfulFiles  int
	FailedFiles      int
	TotalRows        int
	TotalCellsQuoted int
	Outcomes         []FileOutcome
}

// FileOutcome records the result of one file within a run.
type FileOutcome struct {
	File        string
	Success     bool
	Rows        int
	CellsQuoted int
	Error       string
}

// WriteRunReport writes a plain-text report for a batch run.
//
// PARAMETERS:
//   - summary: The run summary.
//
// RETURNS:
//   - The path to the report file, or "" when reporting is disabled.
//   - An error if writing fails.
//
// The report name carries a timestamp and a UUID so that runs never
// clobber each other's reports.
func (fm *FileManager) WriteRunReport(summary RunSummary) (string, error) {
	if fm.ReportDir == "" {
		return "", nil
	}

	if err := os.MkdirAll(fm.ReportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	reportName := fmt.Sprintf("run_report_%s_%s.txt",
		summary.StartTime.Format("20060102_150405"),
		uuid.New().String())
	reportPath := filepath.Join(fm.ReportDir, reportName)

	file, err := os.Create(reportPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	header := fmt.Sprintf("CSV Schedule Quoter - Run Report\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Start Time:    %s\n"+
		"  End Time:      %s\n"+
		"  Duration:      %s\n\n"+
		"Statistics:\n"+
		"  Total Files:   %d\n"+
		"  Successful:    %d\n"+
		"  Failed:        %d\n"+
		"  Total Rows:    %d\n"+
		"  Cells Quoted:  %d\n\n",
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.TotalFiles,
		summary.SuccessfulFiles,
		summary.FailedFiles,
		summary.TotalRows,
		summary.TotalCellsQuoted)
	writer.WriteString(header)

	if len(summary.Outcomes) > 0 {
		writer.WriteString("Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, o := range summary.Outcomes {
			status := "OK"
			if !o.Success {
				status = "FAILED"
			}
			writer.WriteString(fmt.Sprintf("  File:          %s\n", o.File))
			writer.WriteString(fmt.Sprintf("  Status:        %s\n", status))
			writer.WriteString(fmt.Sprintf("  Rows:          %d\n", o.Rows))
			writer.WriteString(fmt.Sprintf("  Cells Quoted:  %d\n", o.CellsQuoted))
			if o.Error != "" {
				writer.WriteString(fmt.Sprintf("  Error:         %s\n", o.Error))
			}
			writer.WriteString("\n")
		}
	}

	footer := "================================================================================\n" +
		"End of Report\n"
	writer.WriteString(footer)

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush report file: %w", err)
	}

	return reportPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// HasExtension reports whether the path has the given extension,
// compared case-insensitively.
func HasExtension(path, extension string) bool {
	return strings.EqualFold(filepath.Ext(path), extension)
}
