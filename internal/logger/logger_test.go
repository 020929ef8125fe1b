package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithOptionsDefaults(t *testing.T) {
	log := NewWithOptions(Options{})
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level, got %v", log.GetLevel())
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", buf.String())
	}
}

func TestNewWithOptionsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOptions(Options{Format: "json", Level: "debug", Out: buf})

	log.Debug().Str("stage", "scanning").Msg("stage")

	if !strings.Contains(buf.String(), `"stage":"scanning"`) {
		t.Errorf("Expected JSON field in output, got: %s", buf.String())
	}
}

func TestNewWithOptionsFiltersLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOptions(Options{Format: "console", Level: "warn", Out: buf})

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("Expected info message to be filtered, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("Expected warn message, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"bogus": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	logWithFields := WithFields(log, map[string]interface{}{
		"format": "dkb-visa",
		"rows":   4,
	})
	logWithFields.Info().Msg("converted")

	output := buf.String()
	if !strings.Contains(output, "dkb-visa") || !strings.Contains(output, `"rows":4`) {
		t.Errorf("Expected output to contain fields, got: %s", output)
	}
}
