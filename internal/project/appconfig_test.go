package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/gridsnap/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultMaxCols = 12
	cfg.DefaultCollision = model.CollisionPush
	cfg.LogLevel = "debug"

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	if cfg != model.DefaultAppConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Only one key set; the rest should come from the defaults
	if err := os.WriteFile(path, []byte(`{"default_max_rows": 8}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.DefaultMaxRows != 8 {
		t.Errorf("expected DefaultMaxRows=8, got %d", cfg.DefaultMaxRows)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.DefaultCollision != model.CollisionNone {
		t.Errorf("expected default collision mode, got %q", cfg.DefaultCollision)
	}
}

func TestLoadAppConfigUnknownCollisionMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_collision": "swap"}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if !errors.Is(err, model.ErrInvalidCollisionMode) {
		t.Fatalf("expected ErrInvalidCollisionMode, got %v", err)
	}
}

func TestLoadAppConfigEmptyStringsKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_collision": "", "log_level": ""}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg != model.DefaultAppConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveAppConfigRejectsUnknownCollisionMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := model.DefaultAppConfig()
	cfg.DefaultCollision = "swap"

	if err := SaveAppConfig(path, cfg); !errors.Is(err, model.ErrInvalidCollisionMode) {
		t.Fatalf("expected ErrInvalidCollisionMode, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("config file should not have been written")
	}
}
