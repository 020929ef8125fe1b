// =============================================================================
// HomeBank Converter - Configuration Module
// =============================================================================
//
// This module holds the application configuration and the Format Descriptors
// that describe each supported bank export.
//
// CONFIGURATION SOURCES:
//   1. Built-in descriptors (formats.go): ING cash, DKB cash, DKB Visa
//   2. An optional YAML file (homebank.yaml) with global settings and
//      additional descriptors under "formats:"
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is used when --config is not given. It may be absent.
const DefaultConfigFile = "homebank.yaml"

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// OutputPrefix is prepended to the input file name when no output path
	// is given on the command line.
	// Default: "converted_"
	OutputPrefix string `yaml:"output_prefix"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log encoder: "console" or "json".
	// Default: "console"
	LogFormat string `yaml:"log_format"`

	// Formats are additional Format Descriptors. A descriptor with the same
	// name as a built-in one replaces it.
	Formats []FormatDescriptor `yaml:"formats"`
}

// =============================================================================
// DIALECT
// =============================================================================

// Quoting modes. Only minimal quoting is written; the value is kept so YAML
// descriptors state it explicitly.
const (
	QuoteMinimal = "minimal"
)

// Dialect is an explicit CSV convention passed into readers and writers.
type Dialect struct {
	Delimiter        string `yaml:"delimiter"`
	QuoteChar        string `yaml:"quote_char"`
	Quoting          string `yaml:"quoting"`
	LineTerminator   string `yaml:"line_terminator"`
	SkipInitialSpace bool   `yaml:"skip_initial_space"`
}

// HomebankDialect is the output convention HomeBank imports: semicolon
// delimited, double-quote, minimal quoting, CRLF.
func HomebankDialect() Dialect {
	return Dialect{
		Delimiter:      ";",
		QuoteChar:      `"`,
		Quoting:        QuoteMinimal,
		LineTerminator: "\r\n",
	}
}

// Comma returns the delimiter rune, defaulting to ';'.
func (d Dialect) Comma() rune {
	switch d.Delimiter {
	case "\\t", "tab", "TAB":
		return '\t'
	case "":
		return ';'
	}
	return []rune(d.Delimiter)[0]
}

// UseCRLF reports whether rows end with "\r\n".
func (d Dialect) UseCRLF() bool {
	return d.LineTerminator == "" || d.LineTerminator == "\r\n"
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyMainConfigDefaults(cfg)
	return cfg
}

// LoadMainConfig loads the main configuration from a YAML file.
//
// When required is false a missing file yields the defaults; this is how the
// implicit homebank.yaml in the working directory is treated.
func LoadMainConfig(configPath string, required bool) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.OutputPrefix == "" {
		config.OutputPrefix = "converted_"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "console"
	}
	for i := range config.Formats {
		applyFormatDefaults(&config.Formats[i])
	}
}

// applyFormatDefaults fills the optional parts of a YAML descriptor.
func applyFormatDefaults(f *FormatDescriptor) {
	if f.DialectMode == "" {
		f.DialectMode = DialectSniff
	}
	if f.DialectMode == DialectFixed {
		d := HomebankDialect()
		if f.Dialect.Delimiter == "" {
			f.Dialect.Delimiter = d.Delimiter
		}
		if f.Dialect.QuoteChar == "" {
			f.Dialect.QuoteChar = d.QuoteChar
		}
		if f.Dialect.Quoting == "" {
			f.Dialect.Quoting = d.Quoting
		}
		if f.Dialect.LineTerminator == "" {
			f.Dialect.LineTerminator = d.LineTerminator
		}
	}
	if f.DateLayout == "" {
		f.DateLayout = GermanDateLayout
	}
	if f.DecimalSeparator == "" {
		f.DecimalSeparator = ","
	}
	if f.GroupSeparator == "" {
		f.GroupSeparator = "."
		if f.DecimalSeparator == "." {
			f.GroupSeparator = ","
		}
	}
}
