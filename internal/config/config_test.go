package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Data.Source != nil || cfg.Chart.Top != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[data]
source = "draws.csv"
invalid = "bucket"
timeout = "30s"

[chart]
top = 3
format = "svg"
color = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Data.Source == nil || *cfg.Data.Source != "draws.csv" {
		t.Fatalf("unexpected source: %v", cfg.Data.Source)
	}
	if cfg.Data.Invalid == nil || *cfg.Data.Invalid != "bucket" {
		t.Fatalf("unexpected invalid policy: %v", cfg.Data.Invalid)
	}
	if cfg.Chart.Top == nil || *cfg.Chart.Top != 3 {
		t.Fatalf("unexpected top: %v", cfg.Chart.Top)
	}
	if cfg.Chart.Width != nil {
		t.Fatalf("expected width unset")
	}
	if cfg.Chart.Color == nil || !*cfg.Chart.Color {
		t.Fatalf("expected color enabled")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[chart]\ntops = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/xdg", "drawfreq", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
}
