// =============================================================================
// HomeBank Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which converts a file with any
// built-in or configured Format Descriptor, and the helpers shared by all
// conversion commands.
//
// COMMAND USAGE:
//   homebank convert --format <name> <file> [flags]
//
// FLAGS:
//   --format, -f  : Format Descriptor name (see 'homebank formats')
//   --output, -o  : Output file (default: <output_prefix><input file name>)
//   --xlsx        : Also write an XLSX review report to this path
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/converter"
	"github.com/ginjaninja78/homebank-converter/internal/logger"
	"github.com/ginjaninja78/homebank-converter/internal/types"
	"github.com/ginjaninja78/homebank-converter/pkg/utils"
)

// =============================================================================
// SHARED OUTPUT FLAGS
// =============================================================================

// outputOptions are the flags every conversion command has.
type outputOptions struct {
	output string
	xlsx   string
}

func addOutputFlags(cmd *cobra.Command, opts *outputOptions) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: <output_prefix><input file name>)")
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Also write an XLSX review report to this path")
}

// runConversion converts input with format and reports the outcome.
func runConversion(cmd *cobra.Command, format config.FormatDescriptor, input string, opts outputOptions) error {
	output := opts.output
	if output == "" {
		output = utils.DefaultOutputPath(input, cfg.OutputPrefix)
	}

	runLog := logger.WithFields(log, map[string]interface{}{
		"input":  input,
		"output": output,
	})
	runLog.Debug().Str("format", format.String()).Msg("Starting conversion")

	conv := converter.New(format, runLog)
	if opts.xlsx != "" {
		conv.WithReport(opts.xlsx)
	}

	result := conv.ConvertFile(input, output)
	if !result.Success {
		return result.Error
	}

	if debug {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s file converted. Output file: %s\n",
			format.Bank, displayAccount(format.Account), result.OutputFile)
		fmt.Fprintf(cmd.ErrOrStderr(), "%d transactions, total %s\n",
			result.Stats.RowsProcessed, result.Stats.Total.StringFixed(2))
	}
	return nil
}

// displayAccount turns "cash" into "Cash" and "visa" into "Visa".
func displayAccount(account string) string {
	if account == "" {
		return account
	}
	return strings.ToUpper(account[:1]) + account[1:]
}

// lookupFormat resolves a descriptor name against the configuration.
func lookupFormat(name string) (config.FormatDescriptor, error) {
	format, ok := cfg.Lookup(name)
	if !ok {
		return config.FormatDescriptor{}, &types.InputFormatError{
			Reason: fmt.Sprintf("unknown format '%s', see 'homebank formats'", name),
		}
	}
	return format, nil
}

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

var (
	convertFormat  string
	convertOptions outputOptions
)

var convertCmd = &cobra.Command{
	Use:   "convert --format <name> <file>",
	Short: "Convert a file using a named format",
	Long: `Convert a bank export using any built-in format or a format defined in the
configuration file. Run 'homebank formats' to list them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := lookupFormat(convertFormat)
		if err != nil {
			return err
		}
		return runConversion(cmd, format, args[0], convertOptions)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Format name (see 'homebank formats')")
	convertCmd.MarkFlagRequired("format")
	addOutputFlags(convertCmd, &convertOptions)

	rootCmd.AddCommand(convertCmd)
}
