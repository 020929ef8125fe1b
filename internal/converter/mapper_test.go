package converter

import (
	"errors"
	"testing"
	"time"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/types"
)

func TestMapRecordCash(t *testing.T) {
	format, _ := config.Default().Lookup(config.FormatDKBCash)

	src := types.SourceRecord{
		"buchungstag":      "04.01.2021",
		"wertstellung":     "05.01.2021",
		"buchungstext":     "Lastschrift",
		"beguenstigter":    "REWE Markt",
		"verwendungszweck": "Einkauf",
		"betrag":           "-1.012,50",
	}

	got, err := MapRecord(src, format)
	if err != nil {
		t.Fatal(err)
	}
	want := types.CanonicalRecord{
		Date:    "04-01-2021",
		Paymode: "8",
		Payee:   "REWE Markt",
		Memo:    "Einkauf",
		Amount:  "-1.012,50",
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMapRecordVisa(t *testing.T) {
	format, _ := config.Default().Lookup(config.FormatDKBVisa)

	src := types.SourceRecord{
		"abgerechnet":        "Ja",
		"wertstellung":       "15.01.2021",
		"belegdatum":         "14.01.2021",
		"umsatzbeschreibung": "AMAZON.DE",
		"betrag":             "-42,99",
	}

	got, err := MapRecord(src, format)
	if err != nil {
		t.Fatal(err)
	}
	if got.Date != "15-01-2021" {
		t.Errorf("expected date from wertstellung, got %q", got.Date)
	}
	if got.Paymode != "1" || got.Payee != "" || got.Memo != "AMAZON.DE" {
		t.Errorf("unexpected record %+v", got)
	}
}

func TestMemoFallback(t *testing.T) {
	format, _ := config.Default().Lookup(config.FormatINGCash)

	tests := []struct {
		name             string
		verwendungszweck string
		buchungstext     string
		want             string
	}{
		{"primary wins", "Miete Januar", "Dauerauftrag", "Miete Januar"},
		{"fallback when empty", "", "Dauerauftrag", "Dauerauftrag"},
		{"both empty", "", "", ""},
		{"whitespace is not empty", " ", "Dauerauftrag", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := types.SourceRecord{
				"buchung":                 "01.01.2021",
				"auftraggeber/empfaenger": "Vermieter",
				"buchungstext":            tt.buchungstext,
				"verwendungszweck":        tt.verwendungszweck,
				"betrag":                  "-800,00",
			}
			got, err := MapRecord(src, format)
			if err != nil {
				t.Fatal(err)
			}
			if got.Memo != tt.want {
				t.Errorf("memo = %q, want %q", got.Memo, tt.want)
			}
		})
	}
}

func TestMapRecordMissingField(t *testing.T) {
	format, _ := config.Default().Lookup(config.FormatDKBCash)

	src := types.SourceRecord{
		"buchungstag":   "04.01.2021",
		"beguenstigter": "REWE",
	}

	_, err := MapRecord(src, format)
	var dataErr *types.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected *types.DataError, got %v", err)
	}
	if !errors.Is(err, ErrFieldMissing) {
		t.Errorf("expected ErrFieldMissing, got %v", err)
	}
}

func TestConvertDate(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{"04.01.2021", "04-01-2021", false},
		{"4.1.2021", "04-01-2021", false},
		{"29.02.2020", "29-02-2020", false},
		{"31.12.1999", "31-12-1999", false},
		{"31-13-2021", "", true},
		{"31.13.2021", "", true},
		{"29.02.2021", "", true},
		{"2021-01-04", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ConvertDate(tt.value, config.GermanDateLayout)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ConvertDate(%q) expected error, got %q", tt.value, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ConvertDate(%q) unexpected error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ConvertDate(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestConvertDateRoundTrip(t *testing.T) {
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		in := d.Format("02.01.2006")
		out, err := ConvertDate(in, config.GermanDateLayout)
		if err != nil {
			t.Fatalf("ConvertDate(%q): %v", in, err)
		}
		back, err := time.Parse(config.HomebankDateLayout, out)
		if err != nil {
			t.Fatalf("output %q not parseable: %v", out, err)
		}
		if !back.Equal(d) {
			t.Fatalf("round trip %q -> %q lost information", in, out)
		}
	}
}
