package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/homebank-converter/internal/config"
	"github.com/ginjaninja78/homebank-converter/internal/converter"
)

var (
	dkbCash    bool
	dkbVisa    bool
	dkbOptions outputOptions
)

// dkbCmd converts DKB checking account and Visa exports. Without --cash or
// --visa the account type is detected from the first line of the file.
var dkbCmd = &cobra.Command{
	Use:   "dkb [--cash|--visa] <file>",
	Short: "Convert a DKB checking account or Visa export",
	Long: `Convert a CSV export of a DKB checking account or DKB Visa card into a
HomeBank import file.

The account type is read from the first line of the export unless --cash or
--visa is given.

Example Usage:
  homebank dkb 1234567890.csv
  homebank dkb --visa 1234________5678.csv -o visa.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		var name string
		switch {
		case dkbCash:
			name = config.FormatDKBCash
		case dkbVisa:
			name = config.FormatDKBVisa
		}

		if name == "" {
			content, err := converter.ReadInput(input)
			if err != nil {
				return err
			}
			format, err := converter.DetectFormat(content, cfg.BankFormats("DKB"))
			if err != nil {
				return err
			}
			log.Debug().Str("format", format.Name).Msg("Detected account type")
			return runConversion(cmd, format, input, dkbOptions)
		}

		format, err := lookupFormat(name)
		if err != nil {
			return err
		}
		return runConversion(cmd, format, input, dkbOptions)
	},
}

func init() {
	dkbCmd.Flags().BoolVarP(&dkbCash, "cash", "c", false, "Convert a DKB checking account export")
	dkbCmd.Flags().BoolVarP(&dkbVisa, "visa", "v", false, "Convert a DKB Visa credit card export")
	dkbCmd.MarkFlagsMutuallyExclusive("cash", "visa")
	addOutputFlags(dkbCmd, &dkbOptions)

	rootCmd.AddCommand(dkbCmd)
}
