// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat interface.
// All message types follow Bubble Tea conventions and are immutable.
package chat

import "github.com/jeranaias/faqbot-tui/internal/session"

// =============================================================================
// SUBMISSION MESSAGES
// =============================================================================

// AnswerResultMsg delivers the outcome of an /ask call. The error, if any,
// is absorbed by the submission controller on receipt; it never propagates
// past the Update loop.
type AnswerResultMsg struct {
	Answer string
	Err    error
}

// =============================================================================
// FEEDBACK MESSAGES
// =============================================================================

// RateResultMsg delivers the outcome of a feedback call for one bot turn.
type RateResultMsg struct {
	TurnID     string
	IsPositive bool
	Outcome    session.RateOutcome
}

// =============================================================================
// UI STATE MESSAGES
// =============================================================================

// NoticeExpiredMsg clears a transient status notice.
type NoticeExpiredMsg struct {
	ID int
}
