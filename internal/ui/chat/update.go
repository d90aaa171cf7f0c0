// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/faqbot-tui/internal/faq"
	"github.com/jeranaias/faqbot-tui/internal/session"
)

// noticeDuration is how long transient notices stay on the status bar.
const noticeDuration = 3 * time.Second

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// askCmd performs the /ask call off the event loop. The session's
// submission gate is already armed by Begin; the result message closes the
// cycle in Update.
func askCmd(client *faq.Client, question, language string) tea.Cmd {
	return func() tea.Msg {
		answer, err := client.Ask(context.Background(), question, language)
		return AnswerResultMsg{Answer: answer, Err: err}
	}
}

// rateCmd runs the full feedback flow for one bot turn. The controller
// rejects repeats locally and writes the record only when the endpoint
// accepts, so this command is safe to fire optimistically.
func rateCmd(ctrl *session.Controller, turnID string, isPositive bool) tea.Cmd {
	return func() tea.Msg {
		outcome := ctrl.Rate(context.Background(), turnID, isPositive)
		return RateResultMsg{TurnID: turnID, IsPositive: isPositive, Outcome: outcome}
	}
}

// expireNoticeCmd clears the status notice after noticeDuration.
func expireNoticeCmd(id int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles Bubble Tea messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Submit):
			return m.handleSubmit()

		case key.Matches(msg, m.keyMap.RateGood):
			return m.handleRate(true)

		case key.Matches(msg, m.keyMap.RateBad):
			return m.handleRate(false)

		case key.Matches(msg, m.keyMap.Up):
			m.viewport.LineUp(1)
			return m, nil

		case key.Matches(msg, m.keyMap.Down):
			m.viewport.LineDown(1)
			return m, nil

		case key.Matches(msg, m.keyMap.PageUp):
			m.viewport.ViewUp()
			return m, nil

		case key.Matches(msg, m.keyMap.PageDown):
			m.viewport.ViewDown()
			return m, nil
		}

	case AnswerResultMsg:
		// Close the submission cycle: the controller appends the bot turn
		// (the answer or the fixed apology) and reopens the gate.
		m.ctrl.Complete(msg.Answer, msg.Err)
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, nil

	case RateResultMsg:
		return m.handleRateResult(msg)

	case NoticeExpiredMsg:
		if msg.ID == m.noticeID {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Everything else feeds the input field.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleSubmit starts a submission cycle if the controller accepts the
// input. Rejected input (blank, or a request already in flight) changes
// nothing and issues no request.
func (m Model) handleSubmit() (Model, tea.Cmd) {
	question, ok := m.ctrl.Begin(m.input.Value())
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.refreshTranscript()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		askCmd(m.client, question, m.session.Locale().Code()),
		m.spinner.Tick,
	)
}

// handleRate targets the most recent bot turn. Turns that already carry a
// rating are rejected by the controller before any network traffic.
func (m Model) handleRate(isPositive bool) (Model, tea.Cmd) {
	turn, ok := m.session.Transcript().LastBotTurn()
	if !ok || m.session.Feedback().Rated(turn.ID) {
		return m, nil
	}
	return m, rateCmd(m.ctrl, turn.ID, isPositive)
}

// handleRateResult surfaces the feedback outcome. Failures are silent: the
// rating controls simply stay live, so the user can try again.
func (m Model) handleRateResult(msg RateResultMsg) (Model, tea.Cmd) {
	switch msg.Outcome {
	case session.RateRecorded:
		m.refreshTranscript()
		m.notice = "Thank you for your feedback!"
		m.noticeID++
		return m, expireNoticeCmd(m.noticeID)
	case session.RateAlreadyRated:
		m.refreshTranscript()
	}
	return m, nil
}
