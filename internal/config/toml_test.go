package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Cipher.Shift != nil || cfg.Server.Port != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[cipher]
shift = 7

[server]
host = "0.0.0.0"
port = 8080

[history]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Cipher.Shift == nil || *cfg.Cipher.Shift != 7 {
		t.Fatalf("unexpected shift: %+v", cfg.Cipher.Shift)
	}
	if cfg.Server.Host == nil || *cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("unexpected host: %+v", cfg.Server.Host)
	}
	if cfg.Server.Port == nil || *cfg.Server.Port != 8080 {
		t.Fatalf("unexpected port: %+v", cfg.Server.Port)
	}
	if cfg.History.Enabled == nil || *cfg.History.Enabled {
		t.Fatalf("unexpected history.enabled: %+v", cfg.History.Enabled)
	}
}
