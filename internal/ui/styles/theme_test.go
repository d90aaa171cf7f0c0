// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme_InitializesStyles(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Spot-check that the key styles render without panicking and carry
	// their configuration.
	if got := theme.Header.Render("FAQ Bot"); got == "" {
		t.Error("Header style should render content")
	}
	if got := theme.UserBubble.Render("hello"); got == "" {
		t.Error("UserBubble style should render content")
	}
	if !theme.BotBadge.GetBold() {
		t.Error("BotBadge should be bold")
	}
	if theme.UserBubble.GetMarginLeft() == 0 {
		t.Error("user bubbles should be pushed right")
	}
	if theme.BotBubble.GetMarginRight() == 0 {
		t.Error("bot bubbles should be pushed left")
	}
}
