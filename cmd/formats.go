package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/homebank-converter/internal/config"
)

// formatsCmd lists the built-in and configured Format Descriptors.
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available export formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBANK\tACCOUNT\tMARKERS\tDESCRIPTION")
		for _, f := range cfg.AllFormats() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				f.Name, f.Bank, f.Account, strings.Join(f.Markers, " + "), describe(f))
		}
		w.Flush()
	},
}

// describe marks configured descriptors that replace a built-in one.
func describe(f config.FormatDescriptor) string {
	for _, b := range config.Builtins() {
		if b.Name == f.Name && b.Description != f.Description {
			return f.Description + " (overrides built-in)"
		}
	}
	return f.Description
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
