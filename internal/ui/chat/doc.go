// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// The view renders the session transcript as message bubbles, takes free-text
// questions through a single-line input, and drives the submission
// controller: the user turn appears immediately, the network call runs as a
// Bubble Tea command, and the bot turn (answer or apology) lands when the
// command resolves. Feedback keys rate the most recent unrated bot turn.
package chat
