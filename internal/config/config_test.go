package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.BaseURL != "http://localhost:8080" {
		t.Errorf("expected default server base_url, got %s", cfg.Server.BaseURL)
	}
	if cfg.Server.DefaultRoomID != 1 {
		t.Errorf("expected default room id 1, got %d", cfg.Server.DefaultRoomID)
	}
	if cfg.Server.TimeoutSeconds != 10 {
		t.Errorf("expected timeout 10s, got %d", cfg.Server.TimeoutSeconds)
	}
	if cfg.Identity.PermissionIdx != 7 {
		t.Errorf("expected permission_idx 7, got %d", cfg.Identity.PermissionIdx)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Server.BaseURL != "http://localhost:8080" {
		t.Errorf("expected default base_url, got %s", cfg.Server.BaseURL)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[server]
base_url = "https://rooms.example.org"
default_room_id = 3
timeout_seconds = 5

[identity]
base_url = "https://id.example.org/api"
permission_idx = 2

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.BaseURL != "https://rooms.example.org" {
		t.Errorf("expected file base_url, got %s", cfg.Server.BaseURL)
	}
	if cfg.Server.DefaultRoomID != 3 {
		t.Errorf("expected room id 3, got %d", cfg.Server.DefaultRoomID)
	}
	if cfg.Server.TimeoutSeconds != 5 {
		t.Errorf("expected timeout 5s, got %d", cfg.Server.TimeoutSeconds)
	}
	if cfg.Identity.PermissionIdx != 2 {
		t.Errorf("expected permission_idx 2, got %d", cfg.Identity.PermissionIdx)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("ROOMGRID_SERVER_URL", "https://env.example.org")
	t.Setenv("ROOMGRID_ROOM_ID", "42")
	t.Setenv("ROOMGRID_PERMISSION_IDX", "9")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.BaseURL != "https://env.example.org" {
		t.Errorf("env override ignored, got %s", cfg.Server.BaseURL)
	}
	if cfg.Server.DefaultRoomID != 42 {
		t.Errorf("env override ignored, got room %d", cfg.Server.DefaultRoomID)
	}
	if cfg.Identity.PermissionIdx != 9 {
		t.Errorf("env override ignored, got permission %d", cfg.Identity.PermissionIdx)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty server url", func(c *Config) { c.Server.BaseURL = "" }, true},
		{"bad scheme", func(c *Config) { c.Server.BaseURL = "ftp://x" }, true},
		{"missing host", func(c *Config) { c.Identity.BaseURL = "https://" }, true},
		{"zero room id", func(c *Config) { c.Server.DefaultRoomID = 0 }, true},
		{"zero timeout", func(c *Config) { c.Server.TimeoutSeconds = 0 }, true},
		{"negative permission", func(c *Config) { c.Identity.PermissionIdx = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "config.toml")

	cfg := Default()
	cfg.Server.DefaultRoomID = 12
	cfg.UI.Theme = "mocha"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Server.DefaultRoomID != 12 {
		t.Errorf("round trip lost room id, got %d", loaded.Server.DefaultRoomID)
	}
	if loaded.UI.Theme != "mocha" {
		t.Errorf("round trip lost theme, got %s", loaded.UI.Theme)
	}
}
