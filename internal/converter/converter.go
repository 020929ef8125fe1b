// =============================================================================
// HomeBank Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It runs the pipeline for a
// single export file, from the raw text to the HomeBank import file.
//
// CONVERSION PIPELINE:
//   1. Scanning : split the content into lines and strip the preamble up to
//                 and including the marker line
//   2. Reading  : pick the dialect (sniffed or fixed) and open the reader
//   3. Mapping  : turn every Source Record into a Canonical Record
//   4. Writing  : write the records, optionally the XLSX review report,
//                 then commit the output file
//   5. Closed   : done
//
// Any failure moves the run to Failed. The output is written to a temp file
// first, so a failed run leaves no destination file behind.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/csvparser"
	"github.com/ginjaninja78/homebank-converter/internal/csvwriter"
	"github.com/ginjaninja78/homebank-converter/internal/scanner"
	"github.com/ginjaninja78/homebank-converter/internal/types"
	"github.com/ginjaninja78/homebank-converter/internal/validation"
	"github.com/ginjaninja78/homebank-converter/internal/xlsxreport"
)

// =============================================================================
// PIPELINE STATE
// =============================================================================

// State is the stage a conversion run is in.
type State int

const (
	StateUnopened State = iota
	StateScanning
	StateReading
	StateMapping
	StateWriting
	StateClosed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateScanning:
		return "scanning"
	case StateReading:
		return "reading"
	case StateMapping:
		return "mapping"
	case StateWriting:
		return "writing"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// InputFile is the path of the export file, empty for Convert.
	InputFile string

	// OutputFile is the path of the HomeBank file.
	// This is empty if the conversion failed.
	OutputFile string

	// Format is the name of the Format Descriptor used.
	Format string

	// RunID identifies the run in logs and in the XLSX report.
	RunID string

	// State is StateClosed on success and StateFailed otherwise.
	State State

	// Success indicates whether the conversion was successful.
	Success bool

	// Error is one of *types.InputFormatError, *types.DataError or
	// *types.IOError when the conversion failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// RowsProcessed is the number of records written.
	RowsProcessed int

	// Total is the sum of all amounts that could be parsed.
	Total decimal.Decimal

	// AmountWarnings counts amounts that could not be parsed for the total.
	// They are still written verbatim.
	AmountWarnings int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts export files of one format. It holds no per-run state
// and may be reused.
type Converter struct {
	format     config.FormatDescriptor
	logger     zerolog.Logger
	reportPath string
}

// New creates a Converter for format.
func New(format config.FormatDescriptor, logger zerolog.Logger) *Converter {
	return &Converter{
		format: format,
		logger: logger.With().Str("format", format.Name).Logger(),
	}
}

// WithReport makes every successful run also write an XLSX review report
// to path.
func (c *Converter) WithReport(path string) *Converter {
	c.reportPath = path
	return c
}

// =============================================================================
// MAIN PROCESSING FUNCTIONS
// =============================================================================

// ConvertFile reads inputPath as ISO-8859-1 and converts it to outputPath.
func (c *Converter) ConvertFile(inputPath, outputPath string) Result {
	content, err := ReadInput(inputPath)
	if err != nil {
		run := c.newRun(inputPath, outputPath)
		return run.fail(err)
	}
	return c.convert(inputPath, content, outputPath)
}

// Convert converts already decoded content to outputPath.
func (c *Converter) Convert(content, outputPath string) Result {
	return c.convert("", content, outputPath)
}

func (c *Converter) convert(inputPath, content, outputPath string) Result {
	run := c.newRun(inputPath, outputPath)

	// =========================================================================
	// STEP 1: SCANNING
	// =========================================================================

	run.enter(StateScanning)

	if len(c.format.Markers) != 2 {
		return run.fail(&types.InputFormatError{
			Reason: fmt.Sprintf("format '%s' needs exactly two header markers", c.format.Name),
		})
	}

	lines := scanner.SplitLines(content)
	block, err := scanner.FindTransactionLines(lines, c.format.Markers[0], c.format.Markers[1])
	if err != nil {
		return run.fail(&types.InputFormatError{
			Reason: fmt.Sprintf("can't convert CSV file without header line containing '%s' and '%s'",
				c.format.Markers[0], c.format.Markers[1]),
			Err: err,
		})
	}
	// Number of lines up to and including the marker line.
	offset := len(lines) - len(block)

	run.logger.Debug().
		Int("header_line", offset).
		Int("data_lines", len(block)).
		Msg("Found transaction block")

	// =========================================================================
	// STEP 2: READING
	// =========================================================================

	run.enter(StateReading)

	dialect, err := c.dialect(content, run.logger)
	if err != nil {
		return run.fail(err)
	}

	reader, err := csvparser.NewReader(block, dialect, c.format.FieldNames)
	if err != nil {
		return run.fail(&types.InputFormatError{Reason: "invalid dialect", Err: err})
	}

	// =========================================================================
	// STEP 3: MAPPING
	// =========================================================================

	run.enter(StateMapping)

	var records []types.CanonicalRecord
	for reader.Next() {
		rec, err := MapRecord(reader.Record(), c.format)
		if err != nil {
			var dataErr *types.DataError
			if errors.As(err, &dataErr) {
				dataErr.Line = offset + reader.Line()
			}
			return run.fail(err)
		}
		run.addAmount(rec.Amount, offset+reader.Line())
		records = append(records, rec)
	}
	if err := reader.Err(); err != nil {
		return run.fail(&types.InputFormatError{Reason: "malformed transaction block", Err: err})
	}

	// =========================================================================
	// STEP 4: WRITING
	// =========================================================================

	run.enter(StateWriting)

	w, err := csvwriter.Create(outputPath, config.HomebankDialect())
	if err != nil {
		return run.fail(err)
	}
	defer w.Abort()

	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return run.fail(err)
		}
	}
	run.result.Stats.RowsProcessed = w.Rows()

	// Commit last: a failed report must not leave a destination file.
	if c.reportPath != "" {
		info := xlsxreport.RunInfo{
			RunID:     run.result.RunID,
			InputFile: inputPath,
			Format:    c.format.Name,
			Total:     run.result.Stats.Total.String(),
		}
		if err := xlsxreport.Write(c.reportPath, info, records); err != nil {
			return run.fail(&types.IOError{Op: "report", Path: c.reportPath, Err: err})
		}
		run.logger.Debug().Str("report", c.reportPath).Msg("Wrote XLSX report")
	}

	if err := w.Commit(); err != nil {
		if c.reportPath != "" {
			os.Remove(c.reportPath)
		}
		return run.fail(err)
	}

	run.enter(StateClosed)
	return run.succeed()
}

// dialect returns the fixed dialect or sniffs one from the raw content.
func (c *Converter) dialect(content string, logger zerolog.Logger) (config.Dialect, error) {
	if c.format.DialectMode == config.DialectFixed {
		return c.format.Dialect, nil
	}

	dialect, err := csvparser.Sniff(csvparser.Sample(content, c.format.SniffBytes))
	if err != nil {
		return config.Dialect{}, &types.InputFormatError{Reason: "could not determine CSV dialect", Err: err}
	}

	logger.Debug().
		Str("delimiter", dialect.Delimiter).
		Bool("skip_initial_space", dialect.SkipInitialSpace).
		Msg("Sniffed dialect")
	return dialect, nil
}

// =============================================================================
// RUN BOOKKEEPING
// =============================================================================

type conversion struct {
	result Result
	start  time.Time
	logger zerolog.Logger
	format config.FormatDescriptor
}

func (c *Converter) newRun(inputPath, outputPath string) *conversion {
	id := uuid.New().String()
	return &conversion{
		result: Result{
			InputFile:  inputPath,
			OutputFile: outputPath,
			Format:     c.format.Name,
			RunID:      id,
			State:      StateUnopened,
			Stats:      ProcessingStats{Total: decimal.Zero},
		},
		start:  time.Now(),
		logger: c.logger.With().Str("run_id", id).Logger(),
		format: c.format,
	}
}

func (r *conversion) enter(state State) {
	r.result.State = state
	r.logger.Debug().Str("state", state.String()).Msg("Entering stage")
}

func (r *conversion) addAmount(amount string, line int) {
	value, err := validation.ParseAmount(amount, r.format.DecimalSeparator, r.format.GroupSeparator)
	if err != nil {
		r.result.Stats.AmountWarnings++
		r.logger.Warn().Int("line", line).Str("amount", amount).Msg("Amount not numeric, left out of total")
		return
	}
	r.result.Stats.Total = r.result.Stats.Total.Add(value)
}

func (r *conversion) fail(err error) Result {
	r.logger.Debug().
		Err(err).
		Str("state", r.result.State.String()).
		Msg("Conversion failed")

	r.result.State = StateFailed
	r.result.Success = false
	r.result.Error = err
	r.result.OutputFile = ""
	r.result.Stats.ProcessingTime = time.Since(r.start)
	return r.result
}

func (r *conversion) succeed() Result {
	r.result.Success = true
	r.result.Stats.ProcessingTime = time.Since(r.start)

	r.logger.Info().
		Str("output", r.result.OutputFile).
		Int("rows", r.result.Stats.RowsProcessed).
		Str("total", r.result.Stats.Total.StringFixed(2)).
		Int("amount_warnings", r.result.Stats.AmountWarnings).
		Dur("duration", r.result.Stats.ProcessingTime).
		Msg("Conversion complete")
	return r.result
}
