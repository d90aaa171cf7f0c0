// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/faqbot-tui/internal/faq"
	"github.com/jeranaias/faqbot-tui/internal/session"
	"github.com/jeranaias/faqbot-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Session state and controllers
	session *session.Session
	ctrl    *session.Controller
	client  *faq.Client

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keyMap KeyMap

	// Markdown rendering for bot answers; nil falls back to plain text
	markdown *glamour.TermRenderer

	// Transient status notice ("Thank you for your feedback!")
	notice   string
	noticeID int
}

// New creates a chat view bound to the given session and FAQ client.
func New(theme *styles.Theme, sess *session.Session, client *faq.Client) Model {
	input := textinput.New()
	input.Placeholder = "Type your question..."
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.PlaceholderStyle = theme.InputPlaceholder
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	vp := viewport.New(80, 20)

	return Model{
		theme:    theme,
		session:  sess,
		ctrl:     session.NewController(sess, client),
		client:   client,
		viewport: vp,
		input:    input,
		spinner:  sp,
		keyMap:   DefaultKeyMap(),
		markdown: newMarkdownRenderer(72),
	}
}

// newMarkdownRenderer builds a glamour renderer for the given wrap width.
// Returns nil on failure; callers fall back to plain text.
func newMarkdownRenderer(wrap int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Session exposes the underlying session for the root model.
func (m Model) Session() *session.Session {
	return m.session
}

// Waiting reports whether a submission is in flight.
func (m Model) Waiting() bool {
	return m.session.Submitting()
}

// SetSize updates the view dimensions and resizes the inner components.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Header and status are rendered by the root model; this view owns the
	// viewport, one input line with its border, and a status line.
	vpHeight := height - inputAreaHeight - statusBarHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.input.Width = width - 6

	wrap := width - bubbleOverhead
	if wrap < 20 {
		wrap = 20
	}
	m.markdown = newMarkdownRenderer(wrap)

	m.refreshTranscript()
}
