// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Server.URL != "http://localhost:8000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Chat.Language != "en" {
		t.Errorf("Chat.Language = %q, want en", cfg.Chat.Language)
	}
	if cfg.Admin.Password == "" {
		t.Error("Admin.Password should have a default")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != Default().Server.URL {
		t.Errorf("Server.URL = %q, want default", cfg.Server.URL)
	}
}

func TestLoadFromPath_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nurl = \"http://faq.example.com\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.URL != "http://faq.example.com" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("TimeoutSecs = %d, want filled default 30", cfg.Server.TimeoutSecs)
	}
	if cfg.Chat.Language != "en" {
		t.Errorf("Language = %q, want filled default en", cfg.Chat.Language)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FAQBOT_SERVER_URL", "http://override:9000")
	t.Setenv("FAQBOT_LANGUAGE", "hi")
	t.Setenv("FAQBOT_TIMEOUT_SECS", "5")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.URL != "http://override:9000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Chat.Language != "hi" {
		t.Errorf("Language = %q", cfg.Chat.Language)
	}
	if cfg.Server.TimeoutSecs != 5 {
		t.Errorf("TimeoutSecs = %d", cfg.Server.TimeoutSecs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"https ok", func(c *Config) { c.Server.URL = "https://faq.example.com" }, false},
		{"empty url", func(c *Config) { c.Server.URL = "" }, true},
		{"no scheme", func(c *Config) { c.Server.URL = "faq.example.com" }, true},
		{"bad scheme", func(c *Config) { c.Server.URL = "ftp://faq.example.com" }, true},
		{"negative timeout", func(c *Config) { c.Server.TimeoutSecs = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestGlobal_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
