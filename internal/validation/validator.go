// =============================================================================
// HomeBank Converter - Validation Engine
// =============================================================================
//
// This module validates Format Descriptors before they are used. Built-in
// descriptors always pass; the checks exist for descriptors loaded from the
// YAML configuration, where a typo in a field name would otherwise only show
// up as a DataError on the first transaction line.
//
// VALIDATION LEVELS:
//   - Descriptor-level: name, field list, markers, dialect, date layout
//   - Rule-level: every mapping key is a canonical field, every rule kind is
//     known and every source field is part of the field list
//
// Errors are collected, not returned on first failure.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/types"
)

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation finding.
type ValidationError struct {
	// Severity is SeverityError (descriptor unusable) or SeverityWarning.
	Severity string

	// Format is the descriptor name.
	Format string

	// Field is the descriptor attribute or canonical field concerned.
	Field string

	// Value is the offending value.
	Value string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("[%s] format '%s', %s: %s",
		strings.ToUpper(e.Severity),
		e.Format,
		e.Field,
		e.Message,
	)
	if e.Value != "" {
		msg += fmt.Sprintf(" (value: '%s')", e.Value)
	}
	return msg
}

// =============================================================================
// DESCRIPTOR VALIDATION
// =============================================================================

// ValidateFormat checks a single descriptor and returns all findings.
func ValidateFormat(f config.FormatDescriptor) []*ValidationError {
	var errs []*ValidationError
	add := func(severity, field, value, msg string) {
		errs = append(errs, &ValidationError{
			Severity: severity,
			Format:   f.Name,
			Field:    field,
			Value:    value,
			Message:  msg,
		})
	}

	if strings.TrimSpace(f.Name) == "" {
		add(SeverityError, "name", "", "name is required")
	}

	if len(f.FieldNames) == 0 {
		add(SeverityError, "field_names", "", "at least one field name is required")
	}
	known := make(map[string]bool, len(f.FieldNames))
	for _, name := range f.FieldNames {
		if name == "" {
			add(SeverityError, "field_names", "", "field names must not be empty")
		}
		known[name] = true
	}

	if len(f.Markers) != 2 {
		add(SeverityError, "markers", strings.Join(f.Markers, ","), "exactly two header markers are required")
	} else {
		for _, m := range f.Markers {
			if m == "" {
				add(SeverityError, "markers", "", "markers must not be empty")
			}
		}
	}

	switch f.DialectMode {
	case config.DialectSniff:
		if f.SniffBytes < 0 {
			add(SeverityError, "sniff_bytes", fmt.Sprint(f.SniffBytes), "sample size must not be negative")
		}
	case config.DialectFixed:
		if msg := validateDialect(f.Dialect); msg != "" {
			add(SeverityError, "dialect", f.Dialect.Delimiter, msg)
		}
	default:
		add(SeverityError, "dialect_mode", f.DialectMode, "must be 'sniff' or 'fixed'")
	}

	if msg := validateDateLayout(f.DateLayout); msg != "" {
		add(SeverityError, "date_layout", f.DateLayout, msg)
	}

	if f.DecimalSeparator == f.GroupSeparator {
		add(SeverityWarning, "decimal_separator", f.DecimalSeparator, "decimal and group separator are identical; amount totals will be skipped")
	}

	if _, ok := f.Mapping["date"]; !ok {
		add(SeverityError, "mapping.date", "", "a date rule is required")
	}
	for target, rule := range f.Mapping {
		field := "mapping." + target
		if !types.IsCanonicalField(target) {
			add(SeverityError, field, target, "not a HomeBank column")
			continue
		}
		for _, msg := range validateRule(rule, known) {
			add(SeverityError, field, rule.Kind, msg)
		}
	}

	return errs
}

// ValidateFormats validates every descriptor and joins the fatal findings
// into one error. Warnings are returned separately.
func ValidateFormats(formats []config.FormatDescriptor) ([]*ValidationError, error) {
	var warnings []*ValidationError
	var fatal []error
	seen := make(map[string]bool)

	for _, f := range formats {
		if seen[f.Name] {
			fatal = append(fatal, &ValidationError{
				Severity: SeverityError,
				Format:   f.Name,
				Field:    "name",
				Message:  "duplicate format name",
			})
		}
		seen[f.Name] = true

		for _, ve := range ValidateFormat(f) {
			if ve.Severity == SeverityWarning {
				warnings = append(warnings, ve)
				continue
			}
			fatal = append(fatal, ve)
		}
	}

	return warnings, errors.Join(fatal...)
}

// validateRule checks a rule against the descriptor's field list.
func validateRule(rule config.Rule, known map[string]bool) []string {
	var msgs []string
	needSource := func(name, attr string) {
		if name == "" {
			msgs = append(msgs, fmt.Sprintf("%s is required for kind '%s'", attr, rule.Kind))
			return
		}
		if !known[name] {
			msgs = append(msgs, fmt.Sprintf("%s '%s' is not in field_names", attr, name))
		}
	}

	switch rule.Kind {
	case config.RuleDate, config.RuleCopy:
		needSource(rule.Source, "source")
	case config.RuleFallback:
		needSource(rule.Source, "source")
		needSource(rule.Fallback, "fallback")
	case config.RuleConst, config.RuleEmpty:
	default:
		msgs = append(msgs, fmt.Sprintf("unknown rule kind '%s'", rule.Kind))
	}
	return msgs
}

// validateDialect checks a fixed dialect can be handled by encoding/csv.
func validateDialect(d config.Dialect) string {
	if utf8.RuneCountInString(d.Delimiter) != 1 && d.Delimiter != "\\t" {
		return "delimiter must be a single character"
	}
	if r := d.Comma(); r == '"' || r == '\r' || r == '\n' {
		return "delimiter must not be a quote or line break"
	}
	if d.QuoteChar != "" && d.QuoteChar != `"` {
		return "only '\"' is supported as quote character"
	}
	if d.Quoting != "" && d.Quoting != config.QuoteMinimal {
		return "only minimal quoting is supported"
	}
	if d.LineTerminator != "" && d.LineTerminator != "\r\n" && d.LineTerminator != "\n" {
		return "line terminator must be CRLF or LF"
	}
	return ""
}

// validateDateLayout makes sure a layout round-trips a known date.
func validateDateLayout(layout string) string {
	if layout == "" {
		return "date layout is required"
	}
	ref := time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(layout, ref.Format(layout))
	if err != nil {
		return fmt.Sprintf("layout does not parse its own output: %v", err)
	}
	if parsed.Year() != ref.Year() || parsed.Month() != ref.Month() || parsed.Day() != ref.Day() {
		return "layout must contain day, month and year"
	}
	return ""
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors renders findings one per line.
func FormatErrors(errs []*ValidationError) string {
	var b strings.Builder
	for _, e := range errs {
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return b.String()
}
