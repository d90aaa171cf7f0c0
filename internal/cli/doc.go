// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the command-line interface for faqbot: argument
// parsing and the one-shot command handlers (ask, add-faq, config). The
// interactive TUI lives in main and internal/ui.
package cli
