package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar names the environment variable that overrides the config
// file location.
const ConfigEnvVar = "BLOGSUM_CONFIG"

// Path returns the config file location: $BLOGSUM_CONFIG, or
// ~/.blogsum/config.yaml.
func Path() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.yaml")
}

// LoadFile loads configuration from path, layered over Default. Returns nil
// if the file doesn't exist (not an error). Returns error if the file exists
// but cannot be parsed.
func LoadFile(path string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys absent from the file keep their default values
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load builds the effective configuration. A .env file in the working
// directory is loaded first if present; it never overrides variables that
// are already set. Environment variables take precedence over the config
// file, which takes precedence over the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := LoadFile(Path())
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
