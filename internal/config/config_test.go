package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "sandbox" {
		t.Errorf("expected Name=sandbox, got %s", cfg.Name)
	}
	if !cfg.History.Enabled {
		t.Error("expected history enabled by default")
	}
	if cfg.Tutorial.WordWrap != 80 {
		t.Errorf("expected WordWrap=80, got %d", cfg.Tutorial.WordWrap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("SANDBOX_DB", "")
	t.Setenv("SANDBOX_LOG_LEVEL", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Logging.Format = "json"
	cfg.History.Limit = 5
	cfg.Tutorial.Style = "light"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Logging.Format != "json" {
		t.Errorf("expected Format=json, got %s", loaded.Logging.Format)
	}
	if loaded.History.Limit != 5 {
		t.Errorf("expected Limit=5, got %d", loaded.History.Limit)
	}
	if loaded.Tutorial.Style != "light" {
		t.Errorf("expected Style=light, got %s", loaded.Tutorial.Style)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("SANDBOX_DB", "")
	t.Setenv("SANDBOX_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.DatabasePath != DefaultConfig().History.DatabasePath {
		t.Errorf("expected default database path, got %s", cfg.History.DatabasePath)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SANDBOX_DB", "/tmp/elsewhere.db")
	t.Setenv("SANDBOX_LOG_LEVEL", "DEBUG")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.History.DatabasePath != "/tmp/elsewhere.db" {
		t.Errorf("expected overridden db path, got %s", cfg.History.DatabasePath)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level=debug, got %s", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}

	cfg = DefaultConfig()
	cfg.History.DatabasePath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty database path")
	}

	cfg.History.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled history should not need a path: %v", err)
	}
}

func TestResolveDatabasePath(t *testing.T) {
	cfg := DefaultConfig()
	got := cfg.ResolveDatabasePath("/work")
	want := filepath.Join("/work", ".sandbox", "history.db")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	cfg.History.DatabasePath = "/abs/h.db"
	if got := cfg.ResolveDatabasePath("/work"); got != "/abs/h.db" {
		t.Errorf("absolute path should be kept, got %s", got)
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := LoggingConfig{}
	if !lc.IsCategoryEnabled("sort") {
		t.Error("nil categories should enable everything")
	}

	lc.Categories = map[string]bool{"store": false}
	if lc.IsCategoryEnabled("store") {
		t.Error("store should be disabled")
	}
	if !lc.IsCategoryEnabled("calc") {
		t.Error("unlisted category should be enabled")
	}
}
