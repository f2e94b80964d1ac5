package model

import (
	"errors"
	"fmt"
)

// ErrInvalidCollisionMode is returned for a collision mode other than none,
// push or compress.
var ErrInvalidCollisionMode = errors.New("invalid collision mode")

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default grid limits applied when a command does not pass its own; 0 = unbounded
	DefaultMaxCols int `json:"default_max_cols"`
	DefaultMaxRows int `json:"default_max_rows"`

	DefaultCollision CollisionMode `json:"default_collision"`
	LogLevel         string        `json:"log_level"` // "debug", "info", "warn", "error"
}

// DefaultAppConfig returns an AppConfig populated with defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultMaxCols:   LimitFromBound(defaults.Bounds.MaxCols),
		DefaultMaxRows:   LimitFromBound(defaults.Bounds.MaxRows),
		DefaultCollision: defaults.Collision,
		LogLevel:         "info",
	}
}

// ApplyToSettings copies the default values from AppConfig into a GridSettings struct.
func (c AppConfig) ApplyToSettings(s *GridSettings) {
	s.Bounds.MaxCols = BoundFromLimit(c.DefaultMaxCols)
	s.Bounds.MaxRows = BoundFromLimit(c.DefaultMaxRows)
	if c.DefaultCollision.Valid() {
		s.Collision = c.DefaultCollision
	}
}

// Validate reports a collision mode that is not one of the known modes.
// Limits need no check: any value below 1 reads as unbounded.
func (c AppConfig) Validate() error {
	if !c.DefaultCollision.Valid() {
		return fmt.Errorf("default_collision: %w: %q", ErrInvalidCollisionMode, c.DefaultCollision)
	}
	return nil
}
