package portal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"prtl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the portal configuration file.
const ConfigFileName = "config.yaml"

// Storage reads and writes the portal configuration file.
//
// Writes overwrite the file in place. There is no locking and no
// temp-file-then-rename, so two processes storing at the same time race and
// the last writer wins.
type Storage struct {
	configPath string
}

// NewStorage creates a Storage rooted at the given config directory.
func NewStorage(configDir string) *Storage {
	return &Storage{
		configPath: configDir,
	}
}

// Path returns the full path to the config file.
func (s *Storage) Path() string {
	return filepath.Join(s.configPath, ConfigFileName)
}

// Load reads and parses the config file.
// If the file doesn't exist, a default PortalConfig is returned.
func (s *Storage) Load() (*PortalConfig, error) {
	defer logging.Timed("Portal", "load")()

	filePath := s.Path()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Portal", "No config found at %s, using defaults", filePath)
			return NewPortalConfig(), nil
		}
		return nil, &LoadError{Path: filePath, Reason: fmt.Errorf("failed to read config file: %w", err)}
	}

	var config PortalConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &LoadError{Path: filePath, Reason: fmt.Errorf("failed to parse config file: %w", err)}
	}
	config.normalize()

	logging.Debug("Portal", "Loaded %d portals from %s", config.Len(), filePath)
	return &config, nil
}

// Store writes the config to the file, creating the config directory if
// needed. The previous contents are overwritten.
func (s *Storage) Store(config *PortalConfig) error {
	defer logging.Timed("Portal", "store")()

	filePath := s.Path()

	if config == nil {
		return &StoreError{Path: filePath, Reason: errors.New("config is nil")}
	}

	if err := os.MkdirAll(s.configPath, 0755); err != nil {
		return &StoreError{Path: filePath, Reason: fmt.Errorf("failed to create config directory: %w", err)}
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return &StoreError{Path: filePath, Reason: fmt.Errorf("failed to marshal config: %w", err)}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &StoreError{Path: filePath, Reason: fmt.Errorf("failed to write config file: %w", err)}
	}

	logging.Debug("Portal", "Stored %d portals to %s", config.Len(), filePath)
	return nil
}
