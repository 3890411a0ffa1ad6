package cli

import (
	"fmt"

	"github.com/fatih/color"
)

// FormatError formats an error message for CLI output
func FormatError(err error) string {
	return color.RedString("%v", err)
}

// FormatSuccess formats a success message for CLI output
func FormatSuccess(msg string) string {
	return fmt.Sprintf("%s %s", color.GreenString("✓"), msg)
}

// FormatWarning formats a warning message for CLI output
func FormatWarning(msg string) string {
	return color.YellowString("⚠ %s", msg)
}
