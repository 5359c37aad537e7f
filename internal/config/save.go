package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveRequested writes cfg to the --save-config path when one was given
// and reports whether it did. Callers exit after a save.
func SaveRequested(cfg *Config) (bool, error) {
	path := SaveConfigPath()
	if path == "" {
		return false, nil
	}
	if err := cfg.SaveTo(path); err != nil {
		return true, fmt.Errorf("saving config to %s: %w", path, err)
	}
	return true, nil
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	// Create parent directory if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
