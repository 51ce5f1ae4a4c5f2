package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

// OutputFormat represents the supported report formats.
type OutputFormat enumflag.Flag

const (
	// TextFormat prints human readable reports.
	TextFormat OutputFormat = iota
	// JSONFormat prints the reports as a JSON array.
	JSONFormat
)

// OutputFormatIds maps OutputFormat to their string representations.
var OutputFormatIds = map[OutputFormat][]string{
	TextFormat: {"text"},
	JSONFormat: {"json"},
}

// addFormatFlag adds the output format flag to a command
func addFormatFlag(cmd *cobra.Command, format *OutputFormat) {
	cmd.Flags().VarP(enumflag.New(format, "format", OutputFormatIds, enumflag.EnumCaseInsensitive), "format", "f", "Output format (text, json)")
}
