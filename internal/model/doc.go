// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and turns.
//
// This package defines the core domain types used throughout the application
// for representing the conversation with the FAQ service and the feedback
// attached to its answers.
//
// # Key Types
//
//   - Turn: Single conversational entry with sender, text, and (for bot
//     turns) a unique identifier used as the feedback key
//   - Transcript: Append-only ordered log of turns for one session
//   - FeedbackTracker: At-most-one rating per bot turn, immutable once set
//   - Sender: Turn author enumeration (user, bot)
//
// # Usage
//
// Build up a transcript:
//
//	tr := model.NewTranscript()
//	tr.Append(model.NewUserTurn("What is the warranty period?"))
//	tr.Append(model.NewBotTurn("Two years."))
//
// Record feedback on a bot turn:
//
//	fb := model.NewFeedbackTracker()
//	fb.Record(turn.ID, true)
package model
