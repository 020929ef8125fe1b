// =============================================================================
// HomeBank Converter - File Manager Utility
// =============================================================================
//
// This module provides the small file helpers the converter needs:
//   - Default output naming (prefix + input base name)
//   - Temp-file naming beside a destination
//   - Committing a finished temp file onto its destination
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// DefaultOutputPath derives the output file name from the input file name.
// The result lives in the working directory, not next to the input.
//
// EXAMPLE:
//
//	DefaultOutputPath("/tmp/exports/umsatz.csv", "converted_") => "converted_umsatz.csv"
func DefaultOutputPath(inputPath, prefix string) string {
	return prefix + filepath.Base(inputPath)
}

// TempPath returns a unique hidden file name in the destination's directory,
// so the final rename never crosses a file system.
func TempPath(destination string) string {
	dir := filepath.Dir(destination)
	base := filepath.Base(destination)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.New().String()))
}

// =============================================================================
// COMMIT
// =============================================================================

// CommitFile moves a finished temp file onto its destination, replacing any
// existing file.
func CommitFile(tmpPath, destination string) error {
	if err := os.Rename(tmpPath, destination); err != nil {
		// If rename fails (e.g., cross-device), try copy and delete.
		if err := copyFile(tmpPath, destination); err != nil {
			return fmt.Errorf("failed to copy file to destination: %w", err)
		}
		if err := os.Remove(tmpPath); err != nil {
			return fmt.Errorf("failed to remove temp file: %w", err)
		}
	}
	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return err
	}

	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
