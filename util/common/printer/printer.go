// Package printer provides output formatting utilities for the CLI
package printer

import (
	"io"
	"os"

	"github.com/modwarden/modwarden/config"
)

// PrintOptions combines options for both JSON and table output
type PrintOptions struct {
	// Format specifies the output format ("json" or "table")
	Format string
	// Writer is the output destination (defaults to os.Stdout if nil)
	Writer io.Writer
	// JsonIndent specifies if JSON should be pretty-printed
	JsonIndent bool
	// ColumnMapping defines column ordering and display names for table format
	ColumnMapping ColumnMapping
	// Footer is shown under tables only
	Footer string
}

// DefaultPrintOptions returns standard print options using the global config
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Format:     config.Global.Format,
		Writer:     os.Stdout,
		JsonIndent: true,
	}
}

// PrintWithOptions formats and outputs data using the provided options
func PrintWithOptions(res any, options PrintOptions) error {
	if options.Format == "json" {
		jsonOpts := DefaultJsonOptions()
		jsonOpts.Writer = options.Writer
		jsonOpts.Indent = options.JsonIndent
		return PrintJsonWithOptions(res, jsonOpts)
	}

	return PrintTableWithOptions(res, TableOptions{
		Writer:        options.Writer,
		ColumnMapping: options.ColumnMapping,
		Footer:        options.Footer,
	})
}
