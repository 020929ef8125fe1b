// =============================================================================
// HomeBank Converter - Dialect-Aware Reader
// =============================================================================
//
// This module parses the transaction block found by the scanner into Source
// Records. The header row has already been stripped, so field names come
// from the Format Descriptor and are assigned by position.
//
// FEATURES:
//   - Explicit dialect (delimiter, quoting, initial-space skipping)
//   - Dialect sniffing from a raw sample (sniff.go)
//   - Single-pass iteration: Next / Record / Err
//   - Short rows leave trailing fields absent, long rows are cut
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/types"
)

// ErrUnsupportedQuote is returned for dialects quoting with anything but '"'.
var ErrUnsupportedQuote = errors.New("unsupported quote character")

// =============================================================================
// READER
// =============================================================================

// Reader yields one Source Record per transaction line.
//
// USAGE:
//
//	r, err := NewReader(lines, dialect, fieldNames)
//	if err != nil {
//	    return err
//	}
//	for r.Next() {
//	    rec := r.Record()
//	    // ...
//	}
//	if err := r.Err(); err != nil {
//	    return err
//	}
type Reader struct {
	reader     *csv.Reader
	fieldNames []string
	current    types.SourceRecord
	line       int
	count      int
	err        error
}

// NewReader creates a reader over the scanned lines.
func NewReader(lines []string, dialect config.Dialect, fieldNames []string) (*Reader, error) {
	if len(fieldNames) == 0 {
		return nil, fmt.Errorf("no field names given")
	}
	if dialect.QuoteChar != "" && dialect.QuoteChar != `"` {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedQuote, dialect.QuoteChar)
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	if err := configureReader(reader, dialect); err != nil {
		return nil, err
	}

	return &Reader{
		reader:     reader,
		fieldNames: fieldNames,
	}, nil
}

// configureReader applies the dialect to an encoding/csv reader.
func configureReader(reader *csv.Reader, dialect config.Dialect) error {
	reader.Comma = dialect.Comma()
	if reader.Comma == '"' || reader.Comma == '\r' || reader.Comma == '\n' {
		return fmt.Errorf("invalid delimiter %q", reader.Comma)
	}

	// Bank exports often end rows with a trailing delimiter, and the
	// preamble-stripped block may vary in width.
	reader.FieldsPerRecord = -1

	// Some exports carry unescaped quotes inside free-text columns.
	reader.LazyQuotes = true

	reader.TrimLeadingSpace = dialect.SkipInitialSpace
	return nil
}

// Next advances to the next row. Returns false when there are no more rows
// or an error occurred.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}

	for {
		row, err := r.reader.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			r.err = fmt.Errorf("error reading row %d: %w", r.count+1, err)
			return false
		}

		// Rows of bare delimiters carry no transaction.
		if isRowEmpty(row) {
			continue
		}

		r.line, _ = r.reader.FieldPos(0)
		r.count++
		r.current = toRecord(row, r.fieldNames)
		return true
	}
}

// Record returns the current row.
func (r *Reader) Record() types.SourceRecord {
	return r.current
}

// Line returns the 1-based line of the current row within the block.
func (r *Reader) Line() int {
	return r.line
}

// Count returns the number of records yielded so far.
func (r *Reader) Count() int {
	return r.count
}

// Err returns any error that occurred during parsing.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll drains the reader.
func (r *Reader) ReadAll() ([]types.SourceRecord, error) {
	var records []types.SourceRecord
	for r.Next() {
		records = append(records, r.Record())
	}
	return records, r.Err()
}

// =============================================================================
// HELPERS
// =============================================================================

// toRecord assigns field names by position. Duplicate names keep the last
// column.
func toRecord(row []string, fieldNames []string) types.SourceRecord {
	record := make(types.SourceRecord, len(fieldNames))
	for i, name := range fieldNames {
		if i >= len(row) {
			break
		}
		record[name] = row[i]
	}
	return record
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
