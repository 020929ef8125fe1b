// =============================================================================
// HomeBank Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (homebank)
//   ├── ingCmd     (homebank ing <file>)
//   ├── dkbCmd     (homebank dkb [--cash|--visa] <file>)
//   ├── convertCmd (homebank convert --format <name> <file>)
//   ├── formatsCmd (homebank formats)
//   └── versionCmd (homebank version)
//
// The root command loads the optional YAML configuration, validates custom
// Format Descriptors and sets up logging before any subcommand runs.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/logger"
	"github.com/ginjaninja78/homebank-converter/internal/validation"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file. When empty,
// homebank.yaml in the working directory is used if it exists.
var cfgFile string

// debug enables debug logging and the completion message on stderr.
var debug bool

// logFormat overrides the configured log format ("console" or "json").
var logFormat string

// cfg and log are set up by the root command before any subcommand runs.
var (
	cfg *config.MainConfig
	log zerolog.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "homebank",
	Short: "Convert bank CSV exports into HomeBank import files",
	Long: `homebank converts the CSV exports of German banks into the CSV format the
HomeBank personal finance application imports.

Supported exports:
  - ING checking account
  - DKB checking account
  - DKB Visa credit card
  - any format described in the configuration file

Example Usage:
  homebank ing Umsatzanzeige.csv
  homebank dkb --visa 1234________5678.csv -o visa.csv
  homebank convert --format my-bank export.csv --xlsx review.xlsx`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: setup,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. Errors are printed to stderr and the process
// exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and initializes logging.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadMainConfig(cfgFile, true)
	} else {
		cfg, err = config.LoadMainConfig(config.DefaultConfigFile, false)
	}
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	format := cfg.LogFormat
	if logFormat != "" {
		format = logFormat
	}
	log = logger.NewWithOptions(logger.Options{
		Format: format,
		Level:  level,
		Out:    cmd.ErrOrStderr(),
	})

	findings, err := validation.ValidateFormats(cfg.Formats)
	for _, f := range findings {
		if f.Severity == validation.SeverityWarning {
			log.Warn().Str("format", f.Format).Str("field", f.Field).Msg(f.Message)
		}
	}
	if err != nil {
		return fmt.Errorf("invalid format configuration:\n%w", err)
	}

	log.Debug().
		Int("custom_formats", len(cfg.Formats)).
		Str("output_prefix", cfg.OutputPrefix).
		Msg("Configuration loaded")
	return nil
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to the configuration file (default is ./homebank.yaml if present)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&debug,
		"debug",
		"d",
		false,
		"Enable debug logging and print a completion message",
	)

	rootCmd.PersistentFlags().StringVar(
		&logFormat,
		"log-format",
		"",
		"Log format: console or json (overrides the configuration file)",
	)
}
