package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/homebank-converter/internal/config"
)

var ingOptions outputOptions

// ingCmd converts ING checking account exports.
var ingCmd = &cobra.Command{
	Use:   "ing <file>",
	Short: "Convert an ING checking account export",
	Long: `Convert a CSV export of an ING checking account ("Umsatzanzeige") into a
HomeBank import file.

Example Usage:
  homebank ing Umsatzanzeige_DE12345678901234567890_20210125.csv
  homebank ing export.csv -o homebank.csv -d`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := lookupFormat(config.FormatINGCash)
		if err != nil {
			return err
		}
		return runConversion(cmd, format, args[0], ingOptions)
	},
}

func init() {
	addOutputFlags(ingCmd, &ingOptions)
	rootCmd.AddCommand(ingCmd)
}
