package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// saveFlags snapshots the package-level flag variables and restores them
// when the test finishes, so tests cannot leak state into each other.
func saveFlags(t *testing.T) {
	t.Helper()
	origCfg, origDir, origValidateDir := cfgFile, inputDir, validateDir
	origSingle, origFile, origDry := singleFile, filePath, dryRun
	t.Cleanup(func() {
		cfgFile, inputDir, validateDir = origCfg, origDir, origValidateDir
		singleFile, filePath, dryRun = origSingle, origFile, origDry
	})
}

func TestRunProcessRejectsNonexistentDirOverride(t *testing.T) {
	saveFlags(t)
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	inputDir = filepath.Join(t.TempDir(), "nope")

	err := runProcess()
	if err == nil {
		t.Fatal("expected an error for a nonexistent --dir override")
	}
	if !strings.Contains(err.Error(), "input directory") {
		t.Errorf("error %q does not name the input directory", err)
	}
}

func TestRunValidateRejectsNonexistentDirOverride(t *testing.T) {
	saveFlags(t)
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	validateDir = filepath.Join(t.TempDir(), "nope")

	if err := runValidate(); err == nil {
		t.Fatal("expected an error for a nonexistent --dir override")
	}
}

func TestRunProcessQuotesDirOverride(t *testing.T) {
	saveFlags(t)
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "shifts.csv")
	if err := os.WriteFile(csvPath, []byte("id,schedule\n1,\"[1,2]\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	inputDir = dir

	if err := runProcess(); err != nil {
		t.Fatalf("runProcess: %v", err)
	}

	got, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "id,schedule\n1,\"\"\"[1,2]\"\"\"\n"
	if string(got) != want {
		t.Errorf("file content:\n%q\nwant:\n%q", got, want)
	}
}

func TestRunProcessEmptyBatchStillWritesReport(t *testing.T) {
	saveFlags(t)
	dir := t.TempDir()
	emptyInput := filepath.Join(dir, "in")
	reportDir := filepath.Join(dir, "reports")
	if err := os.MkdirAll(emptyInput, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(dir, "config.yaml")
	content := "input_dir: " + emptyInput + "\n" +
		"report_dir: " + reportDir + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfgFile = configPath

	if err := runProcess(); err != nil {
		t.Fatalf("runProcess: %v", err)
	}

	entries, err := os.ReadDir(reportDir)
	if err != nil {
		t.Fatalf("reading report directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d report files, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "run_report_") {
		t.Errorf("unexpected report name %s", entries[0].Name())
	}
}
