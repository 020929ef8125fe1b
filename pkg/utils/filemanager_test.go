package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		prefix string
		want   string
	}{
		{"/tmp/exports/umsatz.csv", "converted_", "converted_umsatz.csv"},
		{"umsatz.csv", "converted_", "converted_umsatz.csv"},
		{"data/visa.csv", "hb_", "hb_visa.csv"},
	}

	for _, tt := range tests {
		if got := DefaultOutputPath(tt.input, tt.prefix); got != tt.want {
			t.Errorf("DefaultOutputPath(%q, %q) = %q, want %q", tt.input, tt.prefix, got, tt.want)
		}
	}
}

func TestTempPathStaysInDestinationDirectory(t *testing.T) {
	dest := filepath.Join("some", "dir", "out.csv")
	a := TempPath(dest)
	b := TempPath(dest)

	if filepath.Dir(a) != filepath.Dir(dest) {
		t.Errorf("temp path %q not in %q", a, filepath.Dir(dest))
	}
	if !strings.HasPrefix(filepath.Base(a), ".out.csv.") {
		t.Errorf("unexpected temp name %q", filepath.Base(a))
	}
	if a == b {
		t.Error("expected unique temp paths")
	}
}

func TestCommitFileReplacesDestination(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.csv")
	tmp := TempPath(dest)

	if err := os.WriteFile(dest, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tmp, []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CommitFile(tmp, dest); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("expected new content, got %q", data)
	}
	if FileExists(tmp) {
		t.Error("temp file still exists")
	}
}
