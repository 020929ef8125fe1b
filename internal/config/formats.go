package config

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// FORMAT DESCRIPTOR
// =============================================================================

// Date layouts. GermanDateLayout accepts both "01.02.2021" and "1.2.2021".
const (
	GermanDateLayout   = "2.1.2006"
	HomebankDateLayout = "02-01-2006"
)

// Dialect modes for reading the transaction block.
const (
	// DialectSniff infers the dialect from a sample of the raw file.
	DialectSniff = "sniff"
	// DialectFixed uses FormatDescriptor.Dialect as is.
	DialectFixed = "fixed"
)

// Rule kinds for mapping a source record onto a canonical field.
const (
	RuleDate     = "date"     // parse Source with DateLayout, emit HomebankDateLayout
	RuleCopy     = "copy"     // Source verbatim; the field must exist
	RuleFallback = "fallback" // Source if non-empty, otherwise Fallback
	RuleConst    = "const"    // Value verbatim
	RuleEmpty    = "empty"    // always ""
)

// Rule describes how one canonical field is produced.
type Rule struct {
	Kind     string `yaml:"kind"`
	Source   string `yaml:"source,omitempty"`
	Fallback string `yaml:"fallback,omitempty"`
	Value    string `yaml:"value,omitempty"`
}

// FormatDescriptor is the static configuration of one bank/account-type
// export. Descriptors are plain values; Lookup hands out copies.
type FormatDescriptor struct {
	// Name is the key used on the command line (--format).
	Name        string `yaml:"name"`
	Bank        string `yaml:"bank"`
	Account     string `yaml:"account"`
	Description string `yaml:"description"`

	// FieldNames are assigned positionally to the parsed columns.
	FieldNames []string `yaml:"field_names"`

	// Markers are the two substrings that must both appear in the header
	// line. Data starts on the line after it.
	Markers []string `yaml:"markers"`

	// DialectMode is DialectSniff or DialectFixed.
	DialectMode string `yaml:"dialect_mode"`

	// SniffBytes is the sample size for sniffing. Zero samples the first
	// line of the file only.
	SniffBytes int `yaml:"sniff_bytes"`

	// Dialect is used when DialectMode is DialectFixed.
	Dialect Dialect `yaml:"dialect"`

	// DateLayout is the Go layout of the source date column.
	DateLayout string `yaml:"date_layout"`

	// DecimalSeparator and GroupSeparator describe the amount locale. They
	// are only used for the run summary; amounts are written verbatim.
	DecimalSeparator string `yaml:"decimal_separator"`
	GroupSeparator   string `yaml:"group_separator"`

	// DetectPrefix identifies this account type from the first line of the
	// file, for banks that export several account types.
	DetectPrefix string `yaml:"detect_prefix,omitempty"`

	// Mapping is keyed by canonical field name. Absent keys map to "".
	Mapping map[string]Rule `yaml:"mapping"`
}

// String implements fmt.Stringer.
func (f FormatDescriptor) String() string {
	return fmt.Sprintf("%s (%s %s)", f.Name, f.Bank, f.Account)
}

// =============================================================================
// BUILT-IN DESCRIPTORS
// =============================================================================

// Built-in format names.
const (
	FormatINGCash = "ing-cash"
	FormatDKBCash = "dkb-cash"
	FormatDKBVisa = "dkb-visa"
)

func ingCash() FormatDescriptor {
	return FormatDescriptor{
		Name:        FormatINGCash,
		Bank:        "ING",
		Account:     "cash",
		Description: "ING checking account export",
		FieldNames: []string{
			"buchung",
			"valuta",
			"auftraggeber/empfaenger",
			"buchungstext",
			"verwendungszweck",
			"saldo",
			"waehrung",
			"betrag",
			"waehrung",
		},
		Markers:          []string{"Buchung", "Betrag"},
		DialectMode:      DialectSniff,
		DateLayout:       GermanDateLayout,
		DecimalSeparator: ",",
		GroupSeparator:   ".",
		Mapping: map[string]Rule{
			"date":    {Kind: RuleDate, Source: "buchung"},
			"paymode": {Kind: RuleConst, Value: "8"},
			"payee":   {Kind: RuleCopy, Source: "auftraggeber/empfaenger"},
			"memo":    {Kind: RuleFallback, Source: "verwendungszweck", Fallback: "buchungstext"},
			"amount":  {Kind: RuleCopy, Source: "betrag"},
		},
	}
}

func dkbCash() FormatDescriptor {
	return FormatDescriptor{
		Name:        FormatDKBCash,
		Bank:        "DKB",
		Account:     "cash",
		Description: "DKB checking account export",
		FieldNames: []string{
			"buchungstag",
			"wertstellung",
			"buchungstext",
			"beguenstigter",
			"verwendungszweck",
			"kontonummer",
			"blz",
			"betrag",
			"glaeubigerID",
			"mandatsreferenz",
			"kundenreferenz",
		},
		Markers:          []string{"Betrag", "Wertstellung"},
		DialectMode:      DialectSniff,
		SniffBytes:       1024,
		DateLayout:       GermanDateLayout,
		DecimalSeparator: ",",
		GroupSeparator:   ".",
		DetectPrefix:     `"Kontonummer:";"`,
		Mapping: map[string]Rule{
			"date":    {Kind: RuleDate, Source: "buchungstag"},
			"paymode": {Kind: RuleConst, Value: "8"},
			"payee":   {Kind: RuleCopy, Source: "beguenstigter"},
			"memo":    {Kind: RuleFallback, Source: "verwendungszweck", Fallback: "buchungstext"},
			"amount":  {Kind: RuleCopy, Source: "betrag"},
		},
	}
}

func dkbVisa() FormatDescriptor {
	return FormatDescriptor{
		Name:        FormatDKBVisa,
		Bank:        "DKB",
		Account:     "visa",
		Description: "DKB Visa credit card export",
		FieldNames: []string{
			"abgerechnet",
			"wertstellung",
			"belegdatum",
			"umsatzbeschreibung",
			"betrag",
			"urspruenglicherBetrag",
		},
		Markers:          []string{"Betrag", "Wertstellung"},
		DialectMode:      DialectSniff,
		SniffBytes:       1024,
		DateLayout:       GermanDateLayout,
		DecimalSeparator: ",",
		GroupSeparator:   ".",
		DetectPrefix:     `"Kreditkarte:";"`,
		Mapping: map[string]Rule{
			"date":    {Kind: RuleDate, Source: "wertstellung"},
			"paymode": {Kind: RuleConst, Value: "1"},
			"payee":   {Kind: RuleEmpty},
			"memo":    {Kind: RuleCopy, Source: "umsatzbeschreibung"},
			"amount":  {Kind: RuleCopy, Source: "betrag"},
		},
	}
}

// Builtins returns fresh copies of the built-in descriptors.
func Builtins() []FormatDescriptor {
	return []FormatDescriptor{ingCash(), dkbCash(), dkbVisa()}
}

// =============================================================================
// REGISTRY
// =============================================================================

// AllFormats returns the built-in descriptors merged with the configured ones,
// sorted by name. Configured descriptors replace built-ins of the same name.
func (c *MainConfig) AllFormats() []FormatDescriptor {
	byName := make(map[string]FormatDescriptor)
	for _, f := range Builtins() {
		byName[f.Name] = f
	}
	for _, f := range c.Formats {
		byName[f.Name] = f
	}

	all := make([]FormatDescriptor, 0, len(byName))
	for _, f := range byName {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Lookup finds a descriptor by name (case-insensitive).
func (c *MainConfig) Lookup(name string) (FormatDescriptor, bool) {
	for _, f := range c.AllFormats() {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return FormatDescriptor{}, false
}

// BankFormats returns every descriptor of one bank, e.g. "DKB".
func (c *MainConfig) BankFormats(bank string) []FormatDescriptor {
	var out []FormatDescriptor
	for _, f := range c.AllFormats() {
		if strings.EqualFold(f.Bank, bank) {
			out = append(out, f)
		}
	}
	return out
}
