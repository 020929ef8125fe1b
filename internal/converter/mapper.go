// =============================================================================
// HomeBank Converter - Field Mapper
// =============================================================================
//
// This module turns one Source Record into one Canonical Record by applying
// the descriptor's mapping rules, one rule per HomeBank column.
//
// RULE KINDS:
//   - date     : parse the source column with the descriptor's layout and
//                print it as DD-MM-YYYY
//   - copy     : the source column verbatim; the column must exist
//   - fallback : the source column, or the fallback column if it is empty
//   - const    : a literal, e.g. the paymode code
//   - empty    : always ""
//
// Amounts go through "copy" and are never reformatted: HomeBank reads the
// bank's own locale formatting.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"time"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/types"
)

// ErrFieldMissing is wrapped by DataErrors for rows lacking a source column.
var ErrFieldMissing = errors.New("required source field missing")

// MapRecord applies the descriptor's mapping to one source record.
// The returned error is always a *types.DataError; its Line is left zero
// for the caller to fill in.
func MapRecord(src types.SourceRecord, format config.FormatDescriptor) (types.CanonicalRecord, error) {
	var out types.CanonicalRecord

	for _, target := range types.CanonicalFields {
		rule, ok := format.Mapping[target]
		if !ok {
			continue
		}

		value, err := applyRule(src, rule, format.DateLayout)
		if err != nil {
			return types.CanonicalRecord{}, err
		}
		out.Set(target, value)
	}

	return out, nil
}

// applyRule produces a single canonical value.
func applyRule(src types.SourceRecord, rule config.Rule, dateLayout string) (string, error) {
	switch rule.Kind {
	case config.RuleDate:
		raw, err := required(src, rule.Source)
		if err != nil {
			return "", err
		}
		converted, err := ConvertDate(raw, dateLayout)
		if err != nil {
			return "", &types.DataError{Field: rule.Source, Value: raw, Err: err}
		}
		return converted, nil

	case config.RuleCopy:
		return required(src, rule.Source)

	case config.RuleFallback:
		// Memo fallback: a non-empty primary column wins.
		primary, err := required(src, rule.Source)
		if err != nil {
			return "", err
		}
		if primary != "" {
			return primary, nil
		}
		return required(src, rule.Fallback)

	case config.RuleConst:
		return rule.Value, nil

	case config.RuleEmpty:
		return "", nil

	default:
		return "", &types.DataError{Field: rule.Source, Err: fmt.Errorf("unknown rule kind '%s'", rule.Kind)}
	}
}

// required returns a source column or a DataError when the row lacks it.
func required(src types.SourceRecord, field string) (string, error) {
	v, ok := src.Get(field)
	if !ok {
		return "", &types.DataError{Field: field, Err: ErrFieldMissing}
	}
	return v, nil
}

// ConvertDate parses value strictly against layout and formats it as
// DD-MM-YYYY.
//
// EXAMPLE:
//
//	ConvertDate("04.01.2021", "2.1.2006") => "04-01-2021"
//	ConvertDate("31-13-2021", "2.1.2006") => error
func ConvertDate(value, layout string) (string, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return "", fmt.Errorf("date does not match layout %q: %w", layout, err)
	}
	return t.Format(config.HomebankDateLayout), nil
}
