package app

import (
	"io"
	"os"

	"prtl/internal/shell"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Quiet suppresses the spinner and informational messages
	Quiet bool

	// ConfigPath is the directory holding config.yaml
	ConfigPath string

	// Output streams. Results go to Stdout, everything else to Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Interactive collaborators for ez-init. Nil values are replaced with
	// the terminal prompter and the home directory locator.
	Prompter shell.Prompter
	Searcher shell.ProfileSearcher
}

// NewConfig creates a new application configuration writing to the process
// standard streams.
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}
