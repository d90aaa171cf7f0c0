// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for faqbot.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ServerConfig: FAQ service origin and request timeout
//   - ChatConfig: Default language for question submissions
//   - CallConfig: External voice provider settings
//   - AdminConfig: Admin surface password (cosmetic gate)
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (FAQBOT_*)
//   - ~/.faqbot/config.toml
//   - Built-in defaults
package config
