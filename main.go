// =============================================================================
// HomeBank Converter - Main Entry Point
// =============================================================================
//
// USAGE:
//   homebank ing <file>                 - Convert an ING checking account export
//   homebank dkb [--cash|--visa] <file> - Convert a DKB checking or Visa export
//   homebank convert -f <name> <file>   - Convert with any configured format
//   homebank formats                    - List the available formats
//   homebank version                    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : scanner, reader, mapper, writer and the conversion pipeline
//   - pkg/       : shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/homebank-converter/cmd"
)

func main() {
	cmd.Execute()
}
