// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package admin provides the FAQ authoring surface: a password gate
// followed by a question/answer form that posts new entries to the
// server's admin endpoint.
package admin
