package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name probed when no path is given.
const DefaultConfigFile = "nfsetup.yaml"

// LoadFile reads and parses a run context from a YAML file.
// Defaults are applied and the result is validated before returning.
func LoadFile(path string) (*RunContext, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var rc RunContext
	if err := mapstructure.Decode(raw, &rc); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	rc.ApplyDefaults()

	if err := rc.Err(); err != nil {
		return nil, err
	}

	return &rc, nil
}

// FindConfigFile looks for the default config file in the current directory.
func FindConfigFile() (string, error) {
	if _, err := os.Stat(DefaultConfigFile); err != nil {
		return "", fmt.Errorf("config file %s not found", DefaultConfigFile)
	}
	return DefaultConfigFile, nil
}

// WriteFile persists a run context as YAML, for the wizard's output.
func WriteFile(rc *RunContext, path string) error {
	data, err := yaml.Marshal(rc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
