// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package call

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/faqbot-tui/internal/session"
	"github.com/jeranaias/faqbot-tui/internal/ui/styles"
)

// KeyMap defines keyboard bindings for the call view.
type KeyMap struct {
	Start key.Binding
}

// DefaultKeyMap returns the default key bindings for the call view.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("Enter", "start call"),
		),
	}
}

// =============================================================================
// CALL MODEL
// =============================================================================

// Model is the Bubble Tea model for the call support view. The view has
// exactly two states, both owned by the session: the landing panel, and
// the active call surface. There is no in-view way back; leaving call mode
// is the only exit.
type Model struct {
	theme  *styles.Theme
	width  int
	height int

	session     *session.Session
	providerURL string

	keyMap KeyMap
}

// New creates a call view bound to the given session. providerURL is the
// external call widget endpoint shown on the active surface.
func New(theme *styles.Theme, sess *session.Session, providerURL string) Model {
	return Model{
		theme:       theme,
		session:     sess,
		providerURL: providerURL,
		keyMap:      DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Active reports whether the live call surface is showing.
func (m Model) Active() bool {
	return m.session.CallWidgetActive()
}

// Update handles key input. The only action is starting the call; once the
// surface is active every key is ignored here.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keyMap.Start) && !m.session.CallWidgetActive() {
		m.session.ActivateCallWidget()
	}
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the landing panel or the active call surface.
func (m Model) View() string {
	var content string
	if m.session.CallWidgetActive() {
		content = m.renderActiveSurface()
	} else {
		content = m.renderLanding()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderLanding draws the pre-call panel with the start prompt.
func (m Model) renderLanding() string {
	var b strings.Builder
	b.WriteString(m.theme.CallCaption.Render("Talk to a support agent"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.CallButton.Render("📞 Start Call"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.ShortcutDesc.Render("Press Enter to start"))
	return m.theme.CallPanel.Render(b.String())
}

// renderActiveSurface draws the live call placeholder with the provider
// endpoint. The terminal cannot host the web widget itself, so the surface
// shows where the call is hosted.
func (m Model) renderActiveSurface() string {
	var b strings.Builder
	b.WriteString(m.theme.CallActive.Render("● Call in progress"))
	b.WriteString("\n\n")
	if m.providerURL != "" {
		b.WriteString(m.theme.CallCaption.Render("Connected via " + m.providerURL))
		b.WriteString("\n\n")
	}
	b.WriteString(m.theme.ShortcutDesc.Render("Press Ctrl+T to return to chat"))
	return m.theme.CallPanel.Render(b.String())
}
