// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for faqbot.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete faqbot configuration.
type Config struct {
	Version string `toml:"version"`

	// Server configuration (FAQ service)
	Server ServerConfig `toml:"server"`

	// Chat configuration
	Chat ChatConfig `toml:"chat"`

	// Call configuration (external voice provider)
	Call CallConfig `toml:"call"`

	// Admin configuration
	Admin AdminConfig `toml:"admin"`

	// Log configuration
	Log LogConfig `toml:"log"`
}

// ServerConfig contains the FAQ service connection settings.
type ServerConfig struct {
	// URL is the base origin of the FAQ service
	URL string `toml:"url"`
	// TimeoutSecs bounds every request; 0 falls back to the default (30)
	TimeoutSecs int `toml:"timeout_secs"`
}

// ChatConfig contains chat surface settings.
type ChatConfig struct {
	// Language is the locale active at session start (e.g., "en", "hi")
	Language string `toml:"language"`
}

// CallConfig contains the external voice provider settings.
// The provider is opaque to this client; the URL identifies the embedded
// call surface the user is handed to.
type CallConfig struct {
	ProviderURL string `toml:"provider_url"`
}

// AdminConfig contains the admin surface settings.
// The password gate is cosmetic (a local comparison), not a security
// boundary; it only keeps the authoring form out of casual reach.
type AdminConfig struct {
	Password string `toml:"password"`
}

// LogConfig contains diagnostics logging settings.
type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	// Path to the log file (empty = ~/.faqbot/faqbot.log)
	Path string `toml:"path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Server: ServerConfig{
			URL:         "http://localhost:8000",
			TimeoutSecs: 30,
		},
		Chat: ChatConfig{
			Language: "en",
		},
		Call: CallConfig{
			ProviderURL: "",
		},
		Admin: AdminConfig{
			Password: "admin123",
		},
		Log: LogConfig{
			Enabled: true,
			Path:    "",
		},
	}
}

// =============================================================================
// FILE LOCATIONS
// =============================================================================

// ConfigDir returns the faqbot configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".faqbot"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the effective diagnostics log path for the config.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "faqbot.log"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when the file is absent. Environment overrides are applied last, then the
// result is validated.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path.
// A missing file is not an error; defaults are used.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// fillDefaults fills in zero values left by a partial config file.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Server.URL == "" {
		c.Server.URL = def.Server.URL
	}
	if c.Server.TimeoutSecs == 0 {
		c.Server.TimeoutSecs = def.Server.TimeoutSecs
	}
	if c.Chat.Language == "" {
		c.Chat.Language = def.Chat.Language
	}
	if c.Admin.Password == "" {
		c.Admin.Password = def.Admin.Password
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies FAQBOT_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("FAQBOT_SERVER_URL"); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv("FAQBOT_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Server.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("FAQBOT_LANGUAGE"); v != "" {
		c.Chat.Language = v
	}
	if v := os.Getenv("FAQBOT_CALL_URL"); v != "" {
		c.Call.ProviderURL = v
	}
	if v := os.Getenv("FAQBOT_ADMIN_PASSWORD"); v != "" {
		c.Admin.Password = v
	}
	if v := os.Getenv("FAQBOT_LOG"); v != "" {
		c.Log.Enabled = v == "1" || v == "true"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.url %q is not a valid URL", c.Server.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url scheme %q is not http(s)", u.Scheme)
	}
	if c.Server.TimeoutSecs < 0 {
		return fmt.Errorf("server.timeout_secs must not be negative")
	}
	return nil
}

// ServerTimeout returns the request timeout as a duration.
func (c *Config) ServerTimeout() time.Duration {
	secs := c.Server.TimeoutSecs
	if secs <= 0 {
		secs = Default().Server.TimeoutSecs
	}
	return time.Duration(secs) * time.Second
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
