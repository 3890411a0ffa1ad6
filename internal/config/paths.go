package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application identifier used as the directory name
	// under the platform config home.
	AppName = ".prtl"

	// ConfigDirEnvVar overrides the config directory when set.
	ConfigDirEnvVar = "PRTL_CONFIG_DIR"

	// LogLevelEnvVar sets the log level (debug, info, warn, error).
	// --debug takes precedence.
	LogLevelEnvVar = "PRTL_LOG_LEVEL"
)

// DefaultConfigDir resolves the directory holding the portal config file.
//
// Precedence:
//  1. PRTL_CONFIG_DIR (made absolute relative to the working directory)
//  2. <xdg config home>/.prtl
func DefaultConfigDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv(ConfigDirEnvVar)); override != "" {
		dir := filepath.Clean(override)
		if !filepath.IsAbs(dir) {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return "", fmt.Errorf("resolve %s %q: %w", ConfigDirEnvVar, override, err)
			}
			dir = abs
		}
		return dir, nil
	}

	if strings.TrimSpace(xdg.ConfigHome) == "" {
		return "", fmt.Errorf("could not determine user config directory")
	}
	return filepath.Join(xdg.ConfigHome, AppName), nil
}
