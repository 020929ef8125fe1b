// =============================================================================
// HomeBank Converter - CSV Writer
// =============================================================================
//
// This module serializes Canonical Records into the HomeBank import format:
// eight columns in fixed order, no header row, ISO-8859-1 bytes, and the
// dialect passed in by the caller (HomebankDialect: ';', minimal quoting,
// CRLF).
//
// FILE HANDLING:
//   Rows go to a hidden temp file next to the destination. Commit flushes,
//   closes and renames it into place; Abort closes and removes it. A failed
//   run therefore never leaves a half-written destination behind.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/types"
	"github.com/ginjaninja78/homebank-converter/pkg/utils"
)

// Writer writes one HomeBank file.
type Writer struct {
	path    string
	tmpPath string
	file    *os.File
	encoder io.WriteCloser
	csv     *csv.Writer
	rows    int
	done    bool
}

// Create opens a temp file for path and prepares the encoder chain:
// csv.Writer -> latin-1 encoder -> file.
func Create(path string, dialect config.Dialect) (*Writer, error) {
	tmpPath := utils.TempPath(path)

	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, &types.IOError{Op: "create", Path: path, Err: err}
	}

	encoder := transform.NewWriter(file, charmap.ISO8859_1.NewEncoder())

	w := csv.NewWriter(encoder)
	w.Comma = dialect.Comma()
	w.UseCRLF = dialect.UseCRLF()

	return &Writer{
		path:    path,
		tmpPath: tmpPath,
		file:    file,
		encoder: encoder,
		csv:     w,
	}, nil
}

// Write appends one record.
func (w *Writer) Write(record types.CanonicalRecord) error {
	if w.done {
		return &types.IOError{Op: "write", Path: w.path, Err: os.ErrClosed}
	}
	if err := w.csv.Write(record.Values()); err != nil {
		return &types.IOError{Op: "write", Path: w.path, Err: err}
	}
	w.rows++
	return nil
}

// Rows returns the number of records written.
func (w *Writer) Rows() int {
	return w.rows
}

// Commit flushes everything and moves the temp file onto the destination.
// On error the temp file is removed.
func (w *Writer) Commit() error {
	if w.done {
		return &types.IOError{Op: "commit", Path: w.path, Err: os.ErrClosed}
	}

	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.Abort()
		return &types.IOError{Op: "encode", Path: w.path, Err: err}
	}
	if err := w.encoder.Close(); err != nil {
		w.Abort()
		return &types.IOError{Op: "encode", Path: w.path, Err: err}
	}
	if err := w.file.Sync(); err != nil {
		w.Abort()
		return &types.IOError{Op: "sync", Path: w.path, Err: err}
	}

	w.done = true
	if err := w.file.Close(); err != nil {
		os.Remove(w.tmpPath)
		return &types.IOError{Op: "close", Path: w.path, Err: err}
	}
	if err := utils.CommitFile(w.tmpPath, w.path); err != nil {
		os.Remove(w.tmpPath)
		return &types.IOError{Op: "rename", Path: w.path, Err: err}
	}
	return nil
}

// Abort closes and removes the temp file. It is safe to call after Commit
// and more than once.
func (w *Writer) Abort() error {
	if w.done {
		return nil
	}
	w.done = true

	closeErr := w.file.Close()
	if err := os.Remove(w.tmpPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return closeErr
}

// WriteAll writes records to path in one go.
func WriteAll(path string, dialect config.Dialect, records []types.CanonicalRecord) error {
	w, err := Create(path, dialect)
	if err != nil {
		return err
	}
	defer w.Abort()

	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Commit()
}
