// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the faqbot TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderBrand lipgloss.Style
	HeaderMode  lipgloss.Style
	HeaderLang  lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble    lipgloss.Style
	BotBubble     lipgloss.Style
	BotBadge      lipgloss.Style
	FeedbackHint  lipgloss.Style
	FeedbackGood  lipgloss.Style
	FeedbackBad   lipgloss.Style
	FeedbackEmpty lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusNotice lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// CALL SURFACE STYLES
	// ==========================================================================

	CallPanel   lipgloss.Style
	CallButton  lipgloss.Style
	CallActive  lipgloss.Style
	CallCaption lipgloss.Style

	// ==========================================================================
	// ADMIN SURFACE STYLES
	// ==========================================================================

	AdminPanel  lipgloss.Style
	AdminTitle  lipgloss.Style
	AdminLabel  lipgloss.Style
	NoticeOK    lipgloss.Style
	NoticeError lipgloss.Style

	// ==========================================================================
	// MISC STYLES
	// ==========================================================================

	Spinner lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Surface).
		Background(Blue).
		Padding(0, 1)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Surface).
		Background(Blue)

	t.HeaderMode = lipgloss.NewStyle().
		Foreground(Blue).
		Background(Surface).
		Bold(true).
		Padding(0, 1)

	t.HeaderLang = lipgloss.NewStyle().
		Foreground(Surface).
		Background(BlueDeep).
		Padding(0, 1)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(0, 2).
		MarginLeft(4)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2).
		MarginRight(4)

	t.BotBadge = lipgloss.NewStyle().
		Foreground(Surface).
		Background(Blue).
		Padding(0, 1).
		Bold(true)

	// Feedback indicators
	t.FeedbackHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.FeedbackGood = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	t.FeedbackBad = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.FeedbackEmpty = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusNotice = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Call surface
	t.CallPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.CallButton = lipgloss.NewStyle().
		Foreground(Surface).
		Background(Green).
		Bold(true).
		Padding(1, 6)

	t.CallActive = lipgloss.NewStyle().
		Foreground(Surface).
		Background(GreenDeep).
		Bold(true).
		Padding(1, 4)

	t.CallCaption = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Admin surface
	t.AdminPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	t.AdminTitle = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true)

	t.AdminLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.NoticeOK = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	t.NoticeError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Misc
	t.Spinner = lipgloss.NewStyle().
		Foreground(Blue)
}
