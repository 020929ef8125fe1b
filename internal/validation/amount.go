package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a locale-formatted amount such as "-1.234,56" into a
// decimal. It is only used for run summaries; output amounts are never
// rewritten.
func ParseAmount(value, decimalSep, groupSep string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if decimalSep == groupSep {
		return decimal.Zero, fmt.Errorf("ambiguous separators %q", decimalSep)
	}

	// Some exports add a currency suffix or a trailing sign marker.
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(s, "EUR"), "€"))

	if groupSep != "" {
		s = strings.ReplaceAll(s, groupSep, "")
	}
	if decimalSep != "" && decimalSep != "." {
		s = strings.ReplaceAll(s, decimalSep, ".")
	}
	s = strings.ReplaceAll(s, " ", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", value, err)
	}
	return d, nil
}
