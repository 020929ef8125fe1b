// =============================================================================
// HomeBank Converter - XLSX Review Report
// =============================================================================
//
// This module writes the converted records to a spreadsheet so a run can be
// reviewed before importing into HomeBank, and reads such a report back.
//
// REPORT STRUCTURE:
//
//   | date       | paymode | info | payee | memo      | amount | category | tags |
//   |------------|---------|------|-------|-----------|--------|----------|------|
//   | 04-01-2021 | 8       |      | REWE  | Einkauf   | -12,50 |          |      |
//
//   A second sheet, "Run", holds the input file, format and run id.
//
// =============================================================================

package xlsxreport

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/homebank-converter/internal/types"
)

// Sheet names.
const (
	RecordsSheet = "Records"
	RunSheet     = "Run"
)

// RunInfo is written to the Run sheet.
type RunInfo struct {
	RunID     string
	InputFile string
	Format    string
	Total     string
}

// =============================================================================
// WRITING
// =============================================================================

// Write creates the report at path, replacing an existing file.
func Write(path string, info RunInfo, records []types.CanonicalRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RecordsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	// Header row
	for i, field := range types.CanonicalFields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(RecordsSheet, cell, field); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(types.CanonicalFields), 1)
		f.SetCellStyle(RecordsSheet, "A1", last, style)
	}

	// Amounts stay strings; they carry the bank's locale formatting.
	for rowIdx, record := range records {
		for colIdx, value := range record.Values() {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellStr(RecordsSheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", rowIdx+1, err)
			}
		}
	}

	for i, field := range types.CanonicalFields {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(field) + 4)
		if width < 12 {
			width = 12
		}
		if field == "memo" || field == "payee" {
			width = 40
		}
		f.SetColWidth(RecordsSheet, colName, colName, width)
	}

	if _, err := f.NewSheet(RunSheet); err != nil {
		return fmt.Errorf("failed to create run sheet: %w", err)
	}
	rows := [][]string{
		{"run_id", info.RunID},
		{"input_file", info.InputFile},
		{"format", info.Format},
		{"rows", fmt.Sprintf("%d", len(records))},
		{"total", info.Total},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(RunSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write run info: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// =============================================================================
// READING
// =============================================================================

// Read loads the records of a report written by Write.
func Read(path string) ([]types.CanonicalRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(RecordsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("report has no header row")
	}

	header := rows[0]
	for i, field := range types.CanonicalFields {
		if i >= len(header) || header[i] != field {
			return nil, fmt.Errorf("unexpected header column %d, expected '%s'", i+1, field)
		}
	}

	var records []types.CanonicalRecord
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		var rec types.CanonicalRecord
		// GetRows trims trailing empty cells.
		for i, field := range types.CanonicalFields {
			if i < len(row) {
				rec.Set(field, row[i])
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
