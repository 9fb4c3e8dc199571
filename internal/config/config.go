// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Identity IdentityConfig `toml:"identity"`
	UI       UIConfig       `toml:"ui"`
}

// ServerConfig holds reservation backend settings.
type ServerConfig struct {
	BaseURL        string `toml:"base_url"`        // e.g., "https://rooms.example.org"
	DefaultRoomID  int64  `toml:"default_room_id"` // room opened when none is given
	TimeoutSeconds int    `toml:"timeout_seconds"` // per-request timeout
}

// IdentityConfig holds external identity service settings.
type IdentityConfig struct {
	BaseURL       string `toml:"base_url"`       // e.g., "https://id.example.org/api"
	PermissionIdx int    `toml:"permission_idx"` // permission requested at token issuance
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://localhost:8080",
			DefaultRoomID:  1,
			TimeoutSeconds: 10,
		},
		Identity: IdentityConfig{
			BaseURL:       "https://id.snucse.org/api",
			PermissionIdx: 7,
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "roomgrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROOMGRID_SERVER_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("ROOMGRID_ROOM_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Server.DefaultRoomID = id
		}
	}
	if v := os.Getenv("ROOMGRID_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.Server.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("ROOMGRID_IDENTITY_URL"); v != "" {
		cfg.Identity.BaseURL = v
	}
	if v := os.Getenv("ROOMGRID_PERMISSION_IDX"); v != "" {
		if idx, err := strconv.Atoi(v); err == nil {
			cfg.Identity.PermissionIdx = idx
		}
	}
	if v := os.Getenv("ROOMGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateBaseURL(c.Server.BaseURL, "server.base_url"); err != nil {
		return err
	}
	if err := validateBaseURL(c.Identity.BaseURL, "identity.base_url"); err != nil {
		return err
	}
	if c.Server.DefaultRoomID <= 0 {
		return errors.New("server.default_room_id must be positive")
	}
	if c.Server.TimeoutSeconds <= 0 {
		return errors.New("server.timeout_seconds must be positive")
	}
	if c.Identity.PermissionIdx < 0 {
		return errors.New("identity.permission_idx must not be negative")
	}
	return nil
}

// validateBaseURL checks that a base URL is absolute http(s).
func validateBaseURL(raw, field string) error {
	if raw == "" {
		return fmt.Errorf("%s must be set", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host", field)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
