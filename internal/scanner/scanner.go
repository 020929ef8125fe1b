// =============================================================================
// HomeBank Converter - Line Scanner
// =============================================================================
//
// Bank exports start with a preamble of account metadata (IBAN, date range,
// balance) before the real column header. The scanner locates that header
// with a simple heuristic: the first line that contains both marker
// substrings. Everything after it is the transaction block.
//
// =============================================================================

package scanner

import (
	"bufio"
	"errors"
	"strings"
)

// ErrMarkerNotFound is returned when no line contains both markers.
var ErrMarkerNotFound = errors.New("no header line containing both markers")

// FindTransactionLines returns the lines following the first line that
// contains both first and second. The returned slice shares the backing
// array of lines.
func FindTransactionLines(lines []string, first, second string) ([]string, error) {
	idx := HeaderIndex(lines, first, second)
	if idx < 0 {
		return nil, ErrMarkerNotFound
	}
	return lines[idx+1:], nil
}

// HeaderIndex returns the index of the marker line, or -1.
func HeaderIndex(lines []string, first, second string) int {
	for i, line := range lines {
		if strings.Contains(line, first) && strings.Contains(line, second) {
			return i
		}
	}
	return -1
}

// SplitLines splits decoded file content into lines, dropping CR/LF
// terminators. A trailing newline does not produce an empty last line.
func SplitLines(content string) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines
}
