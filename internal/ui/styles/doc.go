// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the faqbot TUI.
//
// The Theme struct holds every lipgloss style used by the views. Colors use
// AdaptiveColor so light and dark terminals both read well, with the brand
// blue carried over from the product's web surface.
package styles
