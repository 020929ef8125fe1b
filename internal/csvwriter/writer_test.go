package csvwriter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/types"
)

func TestWriteAllProducesHomebankFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	records := []types.CanonicalRecord{
		{Date: "04-01-2021", Paymode: "8", Payee: "Bäckerei Müller", Memo: "Brötchen", Amount: "-3,20"},
		{Date: "05-01-2021", Paymode: "8", Payee: "ACME", Memo: "Lohn; Januar", Amount: "1.250,00"},
	}
	if err := WriteAll(out, config.HomebankDialect(), records); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	// ä = 0xE4, ü = 0xFC, ö = 0xF6 in ISO-8859-1.
	want := []byte("04-01-2021;8;;B\xe4ckerei M\xfcller;Br\xf6tchen;-3,20;;\r\n" +
		"05-01-2021;8;;ACME;\"Lohn; Januar\";1.250,00;;\r\n")
	if !bytes.Equal(got, want) {
		t.Errorf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestQuotingRules(t *testing.T) {
	tests := []struct {
		name string
		memo string
		want string
	}{
		{"plain", "Miete", "Miete"},
		{"inner space", "Miete Januar", "Miete Januar"},
		{"delimiter", "Miete; Januar", `"Miete; Januar"`},
		{"quote", `Kauf "Sofa"`, `"Kauf ""Sofa"""`},
		// encoding/csv quotes a leading space.
		{"leading space", " Miete", `" Miete"`},
		{"trailing space", "Miete ", "Miete "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.csv")
			rec := types.CanonicalRecord{Date: "01-01-2021", Paymode: "8", Memo: tt.memo, Amount: "-1,00"}
			if err := WriteAll(out, config.HomebankDialect(), []types.CanonicalRecord{rec}); err != nil {
				t.Fatal(err)
			}

			got, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			want := "01-01-2021;8;;;" + tt.want + ";-1,00;;\r\n"
			if string(got) != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestWriteAllWithoutRecordsCreatesEmptyFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteAll(out, config.HomebankDialect(), nil); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}
}

func TestAbortLeavesNothingBehind(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	w, err := Create(out, config.HomebankDialect())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(types.CanonicalRecord{Date: "01-01-2021"}); err != nil {
		t.Fatal(err)
	}
	if err := w.Abort(); err != nil {
		t.Fatal(err)
	}
	if err := w.Abort(); err != nil {
		t.Errorf("second abort should be a no-op, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty directory, found %d entries", len(entries))
	}
}

func TestUnencodableCharacterIsIOError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	err := WriteAll(out, config.HomebankDialect(), []types.CanonicalRecord{
		{Date: "01-01-2021", Payee: "Café ☕"},
	})
	if err == nil {
		t.Fatal("expected an error for a character outside latin-1")
	}
	var ioErr *types.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *types.IOError, got %T", err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no files after failed write, found %d", len(entries))
	}
}

func TestCreateInMissingDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "out.csv")
	_, err := Create(out, config.HomebankDialect())
	var ioErr *types.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *types.IOError, got %v", err)
	}
	if ioErr.Op != "create" {
		t.Errorf("expected op create, got %q", ioErr.Op)
	}
}

func TestWriteAfterCommitFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.csv")
	w, err := Create(out, config.HomebankDialect())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Commit(); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(types.CanonicalRecord{}); err == nil {
		t.Error("expected error writing to a committed file")
	}
	if w.Rows() != 0 {
		t.Errorf("expected 0 rows, got %d", w.Rows())
	}
}
