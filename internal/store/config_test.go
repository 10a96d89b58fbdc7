package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SALESHUB_CONFIG_DIR", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig (missing file): %v", err)
	}
	if cfg.DataDir != "" || cfg.TUI != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}

	cfg.DataDir = "/srv/saleshub"
	cfg.LogLevel = "debug"
	cfg.TUI = &TUIConfig{Theme: "Light"}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Fatalf("expected config.json: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.DataDir != "/srv/saleshub" || got.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", got)
	}
	if got.ThemeOrDefault() != "light" {
		t.Fatalf("ThemeOrDefault = %q", got.ThemeOrDefault())
	}
}

func TestConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SALESHUB_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}
