// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/faqbot-tui/internal/diag"
	"github.com/jeranaias/faqbot-tui/internal/session"
	"github.com/jeranaias/faqbot-tui/internal/ui/styles"
)

// User-facing notices for the authoring flow.
const (
	noticeAdded      = "FAQ added successfully!"
	noticeAddFailed  = "Error adding FAQ"
	noticeBadPass    = "Invalid password"
	noticeIncomplete = "Both question and answer are required"
)

// noticeDuration is how long form notices stay visible.
const noticeDuration = 3 * time.Second

// field identifies which form input has focus.
type field int

const (
	fieldQuestion field = iota
	fieldAnswer
)

// Service is the slice of the FAQ client the admin form needs.
type Service interface {
	AddFAQ(ctx context.Context, question, answer string) error
}

// AddResultMsg reports the outcome of an add-FAQ submission.
type AddResultMsg struct {
	Err error
}

// noticeExpiredMsg clears a form notice.
type noticeExpiredMsg struct {
	ID int
}

// =============================================================================
// ADMIN MODEL
// =============================================================================

// Model is the Bubble Tea model for the FAQ authoring surface.
//
// The surface has two stages keyed off the session's admin gate: a
// password prompt, then the question/answer form. The gate stays open for
// the rest of the session once passed.
type Model struct {
	theme *styles.Theme

	width  int
	height int

	session  *session.Session
	client   Service
	password string

	passInput  textinput.Model
	question   textinput.Model
	answer     textinput.Model
	focus      field
	submitting bool

	notice   string
	noticeOK bool
	noticeID int
}

// New creates an admin view bound to the given session. password is the
// configured gate value; client posts accepted entries.
func New(theme *styles.Theme, sess *session.Session, client Service, password string) Model {
	pass := textinput.New()
	pass.Placeholder = "Admin password"
	pass.Prompt = "> "
	pass.EchoMode = textinput.EchoPassword
	pass.CharLimit = 128
	pass.Focus()

	question := textinput.New()
	question.Placeholder = "New question"
	question.Prompt = "> "
	question.CharLimit = 500

	answer := textinput.New()
	answer.Placeholder = "Answer"
	answer.Prompt = "> "
	answer.CharLimit = 2000

	return Model{
		theme:     theme,
		session:   sess,
		client:    client,
		password:  password,
		passInput: pass,
		question:  question,
		answer:    answer,
		focus:     fieldQuestion,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	inner := width - 8
	if inner < 20 {
		inner = 20
	}
	m.passInput.Width = inner
	m.question.Width = inner
	m.answer.Width = inner
}

// Unlocked reports whether the password gate has been passed.
func (m Model) Unlocked() bool {
	return m.session.AdminUnlocked()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles Bubble Tea messages for the admin surface.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.session.AdminUnlocked() {
			return m.updateGate(msg)
		}
		return m.updateForm(msg)

	case AddResultMsg:
		m.submitting = false
		if msg.Err != nil {
			diag.Error("admin", "add-faq failed", msg.Err)
			return m.showNotice(noticeAddFailed, false)
		}
		m.question.Reset()
		m.answer.Reset()
		m.setFocus(fieldQuestion)
		return m.showNotice(noticeAdded, true)

	case noticeExpiredMsg:
		if msg.ID == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	if !m.session.AdminUnlocked() {
		m.passInput, cmd = m.passInput.Update(msg)
	} else if m.focus == fieldQuestion {
		m.question, cmd = m.question.Update(msg)
	} else {
		m.answer, cmd = m.answer.Update(msg)
	}
	return m, cmd
}

// updateGate handles the password prompt.
func (m Model) updateGate(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		attempt := m.passInput.Value()
		m.passInput.Reset()
		if !m.session.UnlockAdmin(attempt, m.password) {
			return m.showNotice(noticeBadPass, false)
		}
		m.notice = ""
		m.setFocus(fieldQuestion)
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.passInput, cmd = m.passInput.Update(msg)
	return m, cmd
}

// updateForm handles the question/answer form.
func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		if m.focus == fieldQuestion {
			m.setFocus(fieldAnswer)
		} else {
			m.setFocus(fieldQuestion)
		}
		return m, textinput.Blink

	case tea.KeyEnter:
		// Enter advances from the question to the answer; from the answer
		// it submits. One request at a time.
		if m.focus == fieldQuestion {
			m.setFocus(fieldAnswer)
			return m, textinput.Blink
		}
		if m.submitting {
			return m, nil
		}
		question := strings.TrimSpace(m.question.Value())
		answer := strings.TrimSpace(m.answer.Value())
		if question == "" || answer == "" {
			return m.showNotice(noticeIncomplete, false)
		}
		m.submitting = true
		return m, addFAQCmd(m.client, question, answer)
	}

	var cmd tea.Cmd
	if m.focus == fieldQuestion {
		m.question, cmd = m.question.Update(msg)
	} else {
		m.answer, cmd = m.answer.Update(msg)
	}
	return m, cmd
}

// setFocus moves focus between the two form inputs.
func (m *Model) setFocus(f field) {
	m.focus = f
	if f == fieldQuestion {
		m.question.Focus()
		m.answer.Blur()
	} else {
		m.question.Blur()
		m.answer.Focus()
	}
}

// showNotice sets a transient notice and schedules its expiry.
func (m Model) showNotice(text string, ok bool) (Model, tea.Cmd) {
	m.notice = text
	m.noticeOK = ok
	m.noticeID++
	id := m.noticeID
	return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{ID: id}
	})
}

// addFAQCmd posts the new entry off the event loop.
func addFAQCmd(client Service, question, answer string) tea.Cmd {
	return func() tea.Msg {
		err := client.AddFAQ(context.Background(), question, answer)
		return AddResultMsg{Err: err}
	}
}
