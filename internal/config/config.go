// Package config layers environment overrides on top of the config file.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/kelseyhightower/envconfig"
	"github.com/piwi3910/gridsnap/internal/model"
	"github.com/piwi3910/gridsnap/internal/project"
)

// Prefix is prepended to every variable name, e.g. GRIDSNAP_MAX_COLS.
const Prefix = "gridsnap"

// ErrInvalidCollisionMode is model.ErrInvalidCollisionMode, for callers that
// only import this package.
var ErrInvalidCollisionMode = model.ErrInvalidCollisionMode

// Env lists the recognised variables. Fields not set in the environment
// keep the value they held before processing.
type Env struct {
	MaxCols       int    `envconfig:"MAX_COLS"`
	MaxRows       int    `envconfig:"MAX_ROWS"`
	CollisionMode string `envconfig:"COLLISION_MODE"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
}

// ApplyEnv overrides cfg with any GRIDSNAP_* variables set in the environment.
// cfg is left unchanged when an error is returned.
func ApplyEnv(cfg *model.AppConfig) error {
	env := Env{
		MaxCols:       cfg.DefaultMaxCols,
		MaxRows:       cfg.DefaultMaxRows,
		CollisionMode: string(cfg.DefaultCollision),
		LogLevel:      cfg.LogLevel,
	}
	if err := envconfig.Process(Prefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	mode := model.CollisionMode(env.CollisionMode)
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCollisionMode, env.CollisionMode)
	}
	if _, err := log.ParseLevel(env.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	cfg.DefaultMaxCols = env.MaxCols
	cfg.DefaultMaxRows = env.MaxRows
	cfg.DefaultCollision = mode
	cfg.LogLevel = env.LogLevel
	return nil
}

// Load reads the config file at path and applies environment overrides.
func Load(path string) (model.AppConfig, error) {
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := ApplyEnv(&cfg); err != nil {
		return model.AppConfig{}, err
	}
	return cfg, nil
}
