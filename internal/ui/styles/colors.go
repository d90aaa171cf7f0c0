// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the faqbot TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// Blue - Brand color, bot messages, header accents
var Blue = lipgloss.AdaptiveColor{Light: "#0961E0", Dark: "#60A5FA"}

// BlueDeep - Darker blue for backgrounds
var BlueDeep = lipgloss.AdaptiveColor{Light: "#0748A8", Dark: "#1E3A8A"}

// Green - Call affordance, success states
var Green = lipgloss.AdaptiveColor{Light: "#4CAF50", Dark: "#4ADE80"}

// GreenDeep - Darker green for backgrounds
var GreenDeep = lipgloss.AdaptiveColor{Light: "#3E8E41", Dark: "#14532D"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, negative feedback
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, pending states
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main content text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}

// TextSecondary - Labels, metadata
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

// TextMuted - Placeholders, disabled controls
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

// =============================================================================
// BUBBLE COLORS
// =============================================================================

// UserBubbleBg - Background for user message bubbles (the web surface's
// light blue)
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#E3F2FD", Dark: "#1E3A5F"}

// BotBubbleBg - Background for bot message bubbles
var BotBubbleBg = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#27273A"}
