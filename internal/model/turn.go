// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and turns.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who authored a turn.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "FAQ Bot"
	default:
		return string(s)
	}
}

// =============================================================================
// TURN TYPE
// =============================================================================

// Turn represents a single conversational entry in a transcript.
//
// A turn is immutable once appended. Bot turns always carry an ID, assigned
// at creation time, which serves as the key for attaching feedback. User
// turns have no ID because they are never rated.
type Turn struct {
	ID        string    `json:"id,omitempty"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserTurn creates a turn authored by the user.
func NewUserTurn(text string) Turn {
	return Turn{
		Sender:    SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewBotTurn creates a turn authored by the answering service.
// Every bot turn gets a fresh unique ID so it is always feedback-eligible,
// including synthesized error turns.
func NewBotTurn(text string) Turn {
	return Turn{
		ID:        generateTurnID(),
		Sender:    SenderBot,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// IsBot reports whether the turn was authored by the answering service.
func (t Turn) IsBot() bool {
	return t.Sender == SenderBot
}

// Preview returns a truncated preview of the turn text.
// Uses rune-based truncation to handle Unicode correctly.
func (t Turn) Preview(maxLen int) string {
	runes := []rune(t.Text)
	if len(runes) <= maxLen {
		return t.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty returns true if the turn has no visible content.
func (t Turn) IsEmpty() bool {
	return strings.TrimSpace(t.Text) == ""
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateTurnID creates a unique turn ID.
// Uniqueness within a session is the only contract; the value is opaque.
func generateTurnID() string {
	return "turn_" + uuid.NewString()
}
