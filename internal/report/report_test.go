package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadReportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	if err := os.WriteFile(path, []byte("# Findings\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	content, err := readReport(path)
	if err != nil {
		t.Fatalf("readReport() error = %v", err)
	}
	if !strings.Contains(content, "Findings") {
		t.Errorf("content = %q, want report text", content)
	}
}

func TestReadReportMissingFile(t *testing.T) {
	_, err := readReport(filepath.Join(t.TempDir(), "absent.md"))
	if err == nil {
		t.Error("expected an error for a missing report file")
	}
}
