package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/gridsnap/internal/model"
)

// DefaultConfigDir is ~/.gridsnap, or ./.gridsnap when there is no home directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".gridsnap")
}

// DefaultConfigPath is config.json inside DefaultConfigDir.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig writes cfg to path as indented JSON, creating parent
// directories. A config with an unknown collision mode is not written.
func SaveAppConfig(path string, cfg model.AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the config at path on top of model.DefaultAppConfig.
// A missing file yields the defaults. Keys absent from the file, or set to
// an empty string, keep their default values; an unknown collision mode is
// an error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	defaults := model.DefaultAppConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return model.AppConfig{}, err
	}

	cfg := defaults
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DefaultCollision == "" {
		cfg.DefaultCollision = defaults.DefaultCollision
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return model.AppConfig{}, err
	}
	return cfg, nil
}
