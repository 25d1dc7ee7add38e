package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDiscoverInputFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// A directory whose name matches the glob must be filtered out.
	if err := os.MkdirAll(filepath.Join(dir, "archive.csv"), 0755); err != nil {
		t.Fatal(err)
	}

	fm := NewFileManager(dir, "")
	files, err := fm.DiscoverInputFiles("*.csv")
	if err != nil {
		t.Fatalf("DiscoverInputFiles: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".csv" {
			t.Errorf("unexpected file %s", f)
		}
	}
}

func TestDiscoverInputFilesEmptyDirectory(t *testing.T) {
	fm := NewFileManager(t.TempDir(), "")

	files, err := fm.DiscoverInputFiles("*.csv")
	if err != nil {
		t.Fatalf("DiscoverInputFiles: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscoverInputFilesDefaultPattern(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "only.csv"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	fm := NewFileManager(dir, "")
	files, err := fm.DiscoverInputFiles("")
	if err != nil {
		t.Fatalf("DiscoverInputFiles: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1", len(files))
	}
}

func TestWriteRunReport(t *testing.T) {
	reportDir := filepath.Join(t.TempDir(), "reports")
	fm := NewFileManager(".", reportDir)

	start := time.Now().Add(-2 * time.Second)
	summary := RunSummary{
		StartTime:        start,
		EndTime:          time.Now(),
		TotalFiles:       2,
		SuccessfulFiles:  1,
		FailedFiles:      1,
		TotalRows:        10,
		TotalCellsQuoted: 3,
		Outcomes: []FileOutcome{
			{File: "a.csv", Success: true, Rows: 10, CellsQuoted: 3},
			{File: "b.csv", Success: false, Error: `column "schedule" not found in b.csv`},
		},
	}

	path, err := fm.WriteRunReport(summary)
	if err != nil {
		t.Fatalf("WriteRunReport: %v", err)
	}
	if path == "" {
		t.Fatal("expected a report path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	report := string(data)

	for _, want := range []string{
		"Total Files:   2",
		"Cells Quoted:  3",
		"a.csv",
		"b.csv",
		"FAILED",
		`column "schedule" not found`,
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestWriteRunReportDisabled(t *testing.T) {
	fm := NewFileManager(".", "")

	path, err := fm.WriteRunReport(RunSummary{StartTime: time.Now(), EndTime: time.Now()})
	if err != nil {
		t.Fatalf("WriteRunReport: %v", err)
	}
	if path != "" {
		t.Errorf("expected no report, got %s", path)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exists.csv")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("FileExists returned false for an existing file")
	}
	if FileExists(filepath.Join(dir, "absent.csv")) {
		t.Error("FileExists returned true for a missing file")
	}
}

func TestHasExtension(t *testing.T) {
	if !HasExtension("Book1.XLSX", ".xlsx") {
		t.Error("HasExtension should compare case-insensitively")
	}
	if HasExtension("data.csv", ".xlsx") {
		t.Error("HasExtension matched the wrong extension")
	}
}
