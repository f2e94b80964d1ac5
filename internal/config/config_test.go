package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/gridsnap/internal/model"
	"github.com/piwi3910/gridsnap/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv_NoVariablesKeepsConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.DefaultMaxCols = 12

	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, 12, cfg.DefaultMaxCols)
	assert.Equal(t, model.CollisionNone, cfg.DefaultCollision)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("GRIDSNAP_MAX_COLS", "6")
	t.Setenv("GRIDSNAP_MAX_ROWS", "4")
	t.Setenv("GRIDSNAP_COLLISION_MODE", "compress")
	t.Setenv("GRIDSNAP_LOG_LEVEL", "debug")

	cfg := model.DefaultAppConfig()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, 6, cfg.DefaultMaxCols)
	assert.Equal(t, 4, cfg.DefaultMaxRows)
	assert.Equal(t, model.CollisionCompress, cfg.DefaultCollision)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestApplyEnv_InvalidValuesLeaveConfigUntouched(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad integer", "GRIDSNAP_MAX_COLS", "wide"},
		{"bad mode", "GRIDSNAP_COLLISION_MODE", "swap"},
		{"bad level", "GRIDSNAP_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := model.DefaultAppConfig()
			assert.Error(t, ApplyEnv(&cfg))
			assert.Equal(t, model.DefaultAppConfig(), cfg)
		})
	}
}

func TestApplyEnv_InvalidModeIsSentinel(t *testing.T) {
	t.Setenv("GRIDSNAP_COLLISION_MODE", "swap")
	cfg := model.DefaultAppConfig()
	assert.ErrorIs(t, ApplyEnv(&cfg), ErrInvalidCollisionMode)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	fileCfg := model.DefaultAppConfig()
	fileCfg.DefaultMaxCols = 10
	fileCfg.DefaultCollision = model.CollisionPush
	require.NoError(t, project.SaveAppConfig(path, fileCfg))

	t.Setenv("GRIDSNAP_MAX_COLS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DefaultMaxCols, "environment wins over the file")
	assert.Equal(t, model.CollisionPush, cfg.DefaultCollision)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), cfg)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
