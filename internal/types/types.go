// =============================================================================
// HomeBank Converter - Shared Types
// =============================================================================
//
// This package contains the record types shared by the scanner, reader,
// mapper and writer packages. Keeping them here avoids import cycles between
// converter and csvwriter.
//
// =============================================================================

package types

// =============================================================================
// SOURCE RECORD
// =============================================================================

// SourceRecord is one parsed transaction row in a bank's native export shape.
// Keys are the positional field names of the Format Descriptor. A field that
// the row did not have a column for is absent from the map.
type SourceRecord map[string]string

// Get returns the value of a field and whether the row carried it.
func (r SourceRecord) Get(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}

// =============================================================================
// CANONICAL RECORD
// =============================================================================

// CanonicalFields is the fixed HomeBank import column order.
var CanonicalFields = []string{
	"date",
	"paymode",
	"info",
	"payee",
	"memo",
	"amount",
	"category",
	"tags",
}

// CanonicalRecord is one row of the HomeBank import file.
// Every field is always present; unused ones are empty strings.
type CanonicalRecord struct {
	Date     string
	Paymode  string
	Info     string
	Payee    string
	Memo     string
	Amount   string
	Category string
	Tags     string
}

// Values returns the record in CanonicalFields order.
func (c CanonicalRecord) Values() []string {
	return []string{
		c.Date,
		c.Paymode,
		c.Info,
		c.Payee,
		c.Memo,
		c.Amount,
		c.Category,
		c.Tags,
	}
}

// Set assigns a canonical field by name. It reports false for unknown names.
func (c *CanonicalRecord) Set(field, value string) bool {
	switch field {
	case "date":
		c.Date = value
	case "paymode":
		c.Paymode = value
	case "info":
		c.Info = value
	case "payee":
		c.Payee = value
	case "memo":
		c.Memo = value
	case "amount":
		c.Amount = value
	case "category":
		c.Category = value
	case "tags":
		c.Tags = value
	default:
		return false
	}
	return true
}

// IsCanonicalField reports whether name is one of the eight output columns.
func IsCanonicalField(name string) bool {
	for _, f := range CanonicalFields {
		if f == name {
			return true
		}
	}
	return false
}
