package quoter

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

var testRule = Rule{Column: "schedule", Trigger: "["}

func TestRunQuotesScheduleInPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "shifts.csv",
		"id,schedule,location\n"+
			"1,\"[1,2,3]\",NYC\n"+
			"2,Monday,LA\n"+
			"3,,SF\n")

	result := New(path, testRule).Run()
	if !result.Success {
		t.Fatalf("Run failed: %v", result.Error)
	}
	if result.Stats.RowsProcessed != 3 {
		t.Errorf("RowsProcessed = %d, want 3", result.Stats.RowsProcessed)
	}
	if result.Stats.CellsQuoted != 1 {
		t.Errorf("CellsQuoted = %d, want 1", result.Stats.CellsQuoted)
	}

	// The stored cell value is "[1,2,3]" including the literal quotes; the
	// CSV writer escapes those on disk per the standard convention.
	want := "id,schedule,location\n" +
		"1,\"\"\"[1,2,3]\"\"\",NYC\n" +
		"2,Monday,LA\n" +
		"3,,SF\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file content:\n%q\nwant:\n%q", got, want)
	}
}

func TestRunLeavesUntriggeredFileIdentical(t *testing.T) {
	dir := t.TempDir()
	content := "id,schedule\n1,Monday\n2,Tuesday\n"
	path := writeFile(t, dir, "plain.csv", content)

	result := New(path, testRule).Run()
	if !result.Success {
		t.Fatalf("Run failed: %v", result.Error)
	}
	if result.Stats.CellsQuoted != 0 {
		t.Errorf("CellsQuoted = %d, want 0", result.Stats.CellsQuoted)
	}
	if got := readFile(t, path); got != content {
		t.Errorf("file changed:\n%q\nwant:\n%q", got, content)
	}
}

func TestRunMissingColumnFails(t *testing.T) {
	dir := t.TempDir()
	content := "id,location\n1,NYC\n"
	path := writeFile(t, dir, "no-schedule.csv", content)

	result := New(path, testRule).Run()
	if result.Success {
		t.Fatal("expected failure for a file without the schedule column")
	}
	if result.Error == nil {
		t.Fatal("expected a non-nil error")
	}

	// The failing file must be left untouched.
	if got := readFile(t, path); got != content {
		t.Errorf("failing file was modified:\n%q", got)
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	content := "id,schedule\n1,\"[1,2]\"\n"
	path := writeFile(t, dir, "dry.csv", content)

	q := New(path, testRule)
	q.SetDryRun(true)
	result := q.Run()
	if !result.Success {
		t.Fatalf("Run failed: %v", result.Error)
	}
	if result.Stats.CellsQuoted != 1 {
		t.Errorf("CellsQuoted = %d, want 1", result.Stats.CellsQuoted)
	}
	if got := readFile(t, path); got != content {
		t.Errorf("dry run modified the file:\n%q", got)
	}
}

func TestRunMissingFileFails(t *testing.T) {
	result := New(filepath.Join(t.TempDir(), "absent.csv"), testRule).Run()
	if result.Success {
		t.Fatal("expected failure for a missing file")
	}
}

// Re-processing a file is not idempotent: the quoted cell still contains the
// trigger, so a second run wraps it again. This matches the tool's contract.
func TestRunReprocessingDoubleWraps(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "twice.csv", "id,schedule\n1,\"[1]\"\n")

	for i := 0; i < 2; i++ {
		if result := New(path, testRule).Run(); !result.Success {
			t.Fatalf("run %d failed: %v", i+1, result.Error)
		}
	}

	want := "id,schedule\n1,\"\"\"\"\"[1]\"\"\"\"\"\n"
	if got := readFile(t, path); got != want {
		t.Errorf("after two runs:\n%q\nwant:\n%q", got, want)
	}
}

func TestRunPreservesShape(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "shape.csv",
		"a,schedule,b\n"+
			"1,\"[x]\",2\n"+
			"3\n"+ // short row survives at its original width
			"4,y,5\n")

	result := New(path, testRule).Run()
	if !result.Success {
		t.Fatalf("Run failed: %v", result.Error)
	}

	want := "a,schedule,b\n" +
		"1,\"\"\"[x]\"\"\",2\n" +
		"3\n" +
		"4,y,5\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file content:\n%q\nwant:\n%q", got, want)
	}
}
