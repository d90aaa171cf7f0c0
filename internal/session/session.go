// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the per-session conversational state and the
// controllers that mutate it.
package session

import (
	"sync"

	"github.com/jeranaias/faqbot-tui/internal/model"
)

// =============================================================================
// MODE TYPE
// =============================================================================

// Mode is the top-level interaction surface selection.
type Mode string

const (
	ModeChat Mode = "chat"
	ModeCall Mode = "call"
)

// DisplayName returns a human-readable name for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeChat:
		return "Chat Support"
	case ModeCall:
		return "Call Support"
	default:
		return string(m)
	}
}

// =============================================================================
// SESSION STATE
// =============================================================================

// Session is the state object for one interactive session.
//
// It is constructed at program start and discarded at program end. The
// transcript and feedback tracker carry their own locks; the remaining
// fields are guarded here because Bubble Tea command goroutines and the
// event loop both touch them.
type Session struct {
	mu sync.RWMutex

	transcript *model.Transcript
	feedback   *model.FeedbackTracker

	mode             Mode
	callWidgetActive bool

	locale Locale

	submitting bool

	adminUnlocked bool
}

// New creates a session in chat mode with the default locale and an empty
// transcript.
func New() *Session {
	return &Session{
		transcript: model.NewTranscript(),
		feedback:   model.NewFeedbackTracker(),
		mode:       ModeChat,
		locale:     DefaultLocale,
	}
}

// Transcript returns the session transcript.
func (s *Session) Transcript() *model.Transcript {
	return s.transcript
}

// Feedback returns the session feedback tracker.
func (s *Session) Feedback() *model.FeedbackTracker {
	return s.feedback
}

// =============================================================================
// MODE CONTROL
// =============================================================================

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode switches the interaction surface. Any mode transition resets the
// call widget, whatever its prior state. The transcript is never touched:
// switching away from chat and back must preserve the conversation.
func (s *Session) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	s.callWidgetActive = false
}

// CallWidgetActive reports whether the live call surface is showing.
func (s *Session) CallWidgetActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.callWidgetActive
}

// ActivateCallWidget turns on the live call surface. Valid only in call
// mode; elsewhere it is a no-op. There is no deactivate: the only way back
// is a mode change.
func (s *Session) ActivateCallWidget() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeCall {
		return false
	}
	s.callWidgetActive = true
	return true
}

// =============================================================================
// LOCALE CONTROL
// =============================================================================

// Locale returns the active language code.
func (s *Session) Locale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale switches the active language. Unsupported codes are rejected
// and the current value is retained. Existing turns are never retranslated;
// the locale only affects future submissions.
func (s *Session) SetLocale(l Locale) bool {
	if !l.IsSupported() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = l
	return true
}

// =============================================================================
// SUBMISSION GATE
// =============================================================================

// Submitting reports whether a question submission is in flight.
func (s *Session) Submitting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.submitting
}

// beginSubmission atomically flips the in-flight flag. It returns false if
// a submission is already in flight.
func (s *Session) beginSubmission() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// endSubmission clears the in-flight flag.
func (s *Session) endSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// =============================================================================
// ADMIN GATE
// =============================================================================

// AdminUnlocked reports whether the admin surface has been unlocked this
// session. The gate is cosmetic: a local password comparison, not a
// security boundary.
func (s *Session) AdminUnlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminUnlocked
}

// UnlockAdmin compares the attempt against the configured password and
// unlocks the admin surface on a match.
func (s *Session) UnlockAdmin(attempt, password string) bool {
	if attempt != password {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminUnlocked = true
	return true
}
