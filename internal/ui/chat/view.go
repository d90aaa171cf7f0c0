// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/faqbot-tui/internal/model"
	"github.com/jeranaias/faqbot-tui/internal/util"
)

// Layout constants for the chat view.
const (
	// inputAreaHeight is the input line plus its border rows.
	inputAreaHeight = 3

	// statusBarHeight is the single-row shortcut/notice bar.
	statusBarHeight = 1

	// bubbleOverhead is horizontal space consumed by bubble padding,
	// border, and the alignment margin on the opposite side.
	bubbleOverhead = 10
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat view: transcript viewport, input area, status bar.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderInputArea())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

// renderInputArea draws the input field, swapping in the spinner while a
// submission is in flight.
func (m Model) renderInputArea() string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}

	content := m.input.View()
	if m.Waiting() {
		content = m.spinner.View() + " Thinking..."
	}

	return m.theme.InputContainer.Width(width).Render(content)
}

// renderStatusBar draws shortcuts, or the active notice when one is set.
func (m Model) renderStatusBar() string {
	if m.notice != "" {
		return m.theme.StatusNotice.Render(m.notice)
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"enter", "send"},
		{"ctrl+g/b", "rate answer"},
		{"ctrl+t", "call"},
		{"ctrl+l", "language"},
		{"ctrl+a", "admin"},
		{"ctrl+c", "quit"},
	}

	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		parts = append(parts,
			m.theme.ShortcutKey.Render(s.key)+" "+m.theme.ShortcutDesc.Render(s.desc))
	}

	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshTranscript rebuilds the viewport content from the session
// transcript. Called whenever a turn is appended, a rating lands, or the
// window is resized.
func (m *Model) refreshTranscript() {
	turns := m.session.Transcript().Turns()
	if len(turns) == 0 {
		m.viewport.SetContent(m.renderEmptyState())
		return
	}

	blocks := make([]string, 0, len(turns))
	for _, turn := range turns {
		if turn.IsBot() {
			blocks = append(blocks, m.renderBotBubble(turn))
		} else {
			blocks = append(blocks, m.renderUserBubble(turn))
		}
	}

	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

// renderEmptyState fills the viewport before the first question.
func (m Model) renderEmptyState() string {
	greeting := "Ask a question to get started."
	return m.theme.FeedbackEmpty.Render(greeting)
}

// renderUserBubble draws a right-aligned user bubble.
func (m Model) renderUserBubble(turn model.Turn) string {
	wrap := m.bubbleWrapWidth()
	text := strings.Join(util.WrapToWidth(turn.Text, wrap), "\n")

	bubble := m.theme.UserBubble.Render(text)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)
	}
	return bubble
}

// renderBotBubble draws a left-aligned bot bubble with the brand badge and
// feedback marker. Answers render through glamour when available.
func (m Model) renderBotBubble(turn model.Turn) string {
	body := turn.Text
	if m.markdown != nil {
		if rendered, err := m.markdown.Render(turn.Text); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	} else {
		body = strings.Join(util.WrapToWidth(body, m.bubbleWrapWidth()), "\n")
	}

	badge := m.theme.BotBadge.Render(turn.Sender.DisplayName())
	marker := m.feedbackMarker(turn.ID)

	header := badge
	if marker != "" {
		header = badge + " " + marker
	}

	return m.theme.BotBubble.Render(header + "\n" + body)
}

// feedbackMarker returns the rating indicator for a bot turn: the recorded
// rating, or a hint while the turn is still ratable.
func (m Model) feedbackMarker(turnID string) string {
	if turnID == "" {
		return ""
	}
	positive, rated := m.session.Feedback().Rating(turnID)
	if !rated {
		return m.theme.FeedbackHint.Render("[ctrl+g 👍 / ctrl+b 👎]")
	}
	if positive {
		return m.theme.FeedbackGood.Render("👍 rated helpful")
	}
	return m.theme.FeedbackBad.Render("👎 rated unhelpful")
}

// bubbleWrapWidth is the text wrap width inside a bubble.
func (m Model) bubbleWrapWidth() int {
	wrap := m.width - bubbleOverhead
	if wrap < 20 {
		wrap = 20
	}
	return wrap
}
