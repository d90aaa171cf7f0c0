// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/faqbot-tui/internal/faq"
	"github.com/jeranaias/faqbot-tui/internal/session"
	"github.com/jeranaias/faqbot-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	sess := session.New()
	m := New(styles.NewTheme(), sess, faq.NewClient())
	m.SetSize(80, 24)
	return m
}

func submitKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestSubmitAppendsUserTurnAndStartsCommand(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("What are your opening hours?")

	m, cmd := m.Update(submitKey())

	if cmd == nil {
		t.Fatal("expected a command to dispatch the question")
	}
	turns := m.Session().Transcript().Turns()
	if len(turns) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(turns))
	}
	if turns[0].IsBot() {
		t.Error("first turn should be the user turn")
	}
	if turns[0].Text != "What are your opening hours?" {
		t.Errorf("user turn text = %q", turns[0].Text)
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared after submit")
	}
	if !m.Waiting() {
		t.Error("submission should be in flight after submit")
	}
}

func TestSubmitBlankInputIsNoOp(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.input.SetValue(tt.input)

			m, cmd := m.Update(submitKey())

			if cmd != nil {
				t.Error("blank input should not dispatch a command")
			}
			if m.Session().Transcript().Len() != 0 {
				t.Error("blank input should not append a turn")
			}
		})
	}
}

func TestSubmitWhileWaitingIsRejected(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("first question")
	m, _ = m.Update(submitKey())

	m.input.SetValue("second question")
	m, cmd := m.Update(submitKey())

	if cmd != nil {
		t.Error("second submit should be gated while one is in flight")
	}
	if got := m.Session().Transcript().Len(); got != 1 {
		t.Errorf("transcript length = %d, want 1", got)
	}
}

func TestAnswerResultAppendsBotTurn(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hours?")
	m, _ = m.Update(submitKey())

	m, _ = m.Update(AnswerResultMsg{Answer: "We are open 9-5."})

	turns := m.Session().Transcript().Turns()
	if len(turns) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(turns))
	}
	bot := turns[1]
	if !bot.IsBot() {
		t.Fatal("second turn should be the bot turn")
	}
	if bot.Text != "We are open 9-5." {
		t.Errorf("bot turn text = %q", bot.Text)
	}
	if bot.ID == "" {
		t.Error("bot turn should carry an ID")
	}
	if m.Waiting() {
		t.Error("submission gate should reopen after the result")
	}
}

func TestAnswerResultErrorAppendsApology(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hours?")
	m, _ = m.Update(submitKey())

	m, _ = m.Update(AnswerResultMsg{Err: errors.New("connection refused")})

	bot, ok := m.Session().Transcript().LastBotTurn()
	if !ok {
		t.Fatal("expected an apology bot turn")
	}
	if bot.Text != session.ApologyText {
		t.Errorf("bot turn text = %q, want apology", bot.Text)
	}
	if bot.ID == "" {
		t.Error("apology turn should still be ratable")
	}
	if m.Waiting() {
		t.Error("failed submission should still reopen the gate")
	}
}

func TestRateResultShowsNoticeAndExpires(t *testing.T) {
	m := newTestModel(t)

	m, cmd := m.handleRateResult(RateResultMsg{
		TurnID:     "turn_x",
		IsPositive: true,
		Outcome:    session.RateRecorded,
	})

	if m.notice != "Thank you for your feedback!" {
		t.Errorf("notice = %q", m.notice)
	}
	if cmd == nil {
		t.Fatal("expected an expiry command")
	}
	if !strings.Contains(m.renderStatusBar(), "Thank you for your feedback!") {
		t.Error("status bar should show the notice")
	}

	m, _ = m.Update(NoticeExpiredMsg{ID: m.noticeID})
	if m.notice != "" {
		t.Error("notice should clear on expiry")
	}
}

func TestStaleNoticeExpiryIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m, _ = m.handleRateResult(RateResultMsg{Outcome: session.RateRecorded})
	stale := m.noticeID
	m, _ = m.handleRateResult(RateResultMsg{Outcome: session.RateRecorded})

	m, _ = m.Update(NoticeExpiredMsg{ID: stale})

	if m.notice == "" {
		t.Error("expiry of a superseded notice should not clear the new one")
	}
}

func TestRateResultFailureIsSilent(t *testing.T) {
	m := newTestModel(t)

	m, cmd := m.handleRateResult(RateResultMsg{Outcome: session.RateFailed})

	if m.notice != "" {
		t.Error("failed rating should not show a notice")
	}
	if cmd != nil {
		t.Error("failed rating should not schedule an expiry")
	}
}

func TestRateWithNoBotTurnIsNoOp(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})

	if cmd != nil {
		t.Error("rating with no bot turn should be a no-op")
	}
}

func TestRateAlreadyRatedTurnIsNoOp(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("q")
	m, _ = m.Update(submitKey())
	m, _ = m.Update(AnswerResultMsg{Answer: "a"})

	bot, _ := m.Session().Transcript().LastBotTurn()
	m.Session().Feedback().Record(bot.ID, true)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})

	if cmd != nil {
		t.Error("rating an already-rated turn should not dispatch a command")
	}
}

func TestViewRendersTranscript(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("Where is the clinic?")
	m, _ = m.Update(submitKey())
	m, _ = m.Update(AnswerResultMsg{Answer: "Main street."})

	view := m.View()
	if !strings.Contains(view, "Where is the clinic?") {
		t.Error("view should contain the user question")
	}
	if !strings.Contains(view, "FAQ Bot") {
		t.Error("view should contain the bot badge")
	}
}

func TestViewEmptyStateShowsGreeting(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), "Ask a question") {
		t.Error("empty transcript should show the greeting")
	}
}
