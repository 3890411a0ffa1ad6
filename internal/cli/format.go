package cli

import (
	"fmt"
	"strings"
)

// OutputFormat represents the supported output formats for listing portals.
type OutputFormat string

const (
	// OutputFormatText prints one decorated line per portal
	OutputFormatText OutputFormat = "text"
	// OutputFormatTable prints a bordered table
	OutputFormatTable OutputFormat = "table"
	// OutputFormatPlain prints a borderless table suited to grep and awk
	OutputFormatPlain OutputFormat = "plain"
	// OutputFormatJSON prints a JSON object mapping tag to path
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML prints a YAML mapping of tag to path
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatText,
	OutputFormatTable,
	OutputFormatPlain,
	OutputFormatJSON,
	OutputFormatYAML,
}

// ValidateOutputFormat validates that the given format string is a supported output format.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatText, OutputFormatTable, OutputFormatPlain, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		names := make([]string, len(ValidOutputFormats))
		for i, f := range ValidOutputFormats {
			names[i] = string(f)
		}
		return fmt.Errorf("unsupported output format %q (valid: %s)", format, strings.Join(names, ", "))
	}
}
