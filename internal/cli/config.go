// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration command handler for the faqbot CLI.
//
// Handles "faqbot config" with show/set subcommands.
//
// Examples:
//   faqbot config                 Show current configuration
//   faqbot config show
//   faqbot config set server.url http://faq.internal:8000
//   faqbot config set chat.language hi
package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/faqbot-tui/internal/config"
	"github.com/jeranaias/faqbot-tui/internal/session"
)

// HandleConfig runs the config show/set subcommands.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return configShow()
	case "set":
		return configSet(args.ConfigKey, args.ConfigVal)
	default:
		return NewUsageError(
			fmt.Sprintf("unknown config subcommand %q", args.Subcommand),
			"use: faqbot config [show|set key value]")
	}
}

// configShow prints the effective configuration.
func configShow() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, _ := config.ConfigPath()
	fmt.Printf("Configuration (%s)\n\n", path)
	fmt.Printf("  server.url           %s\n", cfg.Server.URL)
	fmt.Printf("  server.timeout_secs  %d\n", cfg.Server.TimeoutSecs)
	fmt.Printf("  chat.language        %s\n", cfg.Chat.Language)
	fmt.Printf("  call.provider_url    %s\n", cfg.Call.ProviderURL)
	fmt.Printf("  log.enabled          %t\n", cfg.Log.Enabled)
	return nil
}

// configSet updates one key and saves the file.
func configSet(key, value string) error {
	if key == "" || value == "" {
		return NewUsageError("config set requires a key and a value",
			"use: faqbot config set server.url http://localhost:8000")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "server.url":
		cfg.Server.URL = value
	case "server.timeout_secs":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return NewUsageError(fmt.Sprintf("%q is not a number", value), "")
		}
		cfg.Server.TimeoutSecs = secs
	case "chat.language":
		if !session.Locale(value).IsSupported() {
			return NewUsageError(fmt.Sprintf("unsupported language %q", value), "supported: en, hi")
		}
		cfg.Chat.Language = value
	case "call.provider_url":
		cfg.Call.ProviderURL = value
	case "log.enabled":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return NewUsageError(fmt.Sprintf("%q is not a boolean", value), "")
		}
		cfg.Log.Enabled = enabled
	default:
		return NewUsageError(fmt.Sprintf("unknown config key %q", key),
			"keys: server.url, server.timeout_secs, chat.language, call.provider_url, log.enabled")
	}

	if err := cfg.Validate(); err != nil {
		return NewConfigError(err.Error())
	}
	if err := config.Save(cfg); err != nil {
		return NewConfigError(fmt.Sprintf("could not save config: %v", err))
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}

// loadConfig loads and validates the configuration for CLI handlers.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, NewConfigError(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewConfigError(err.Error())
	}
	return cfg, nil
}
