// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the per-session conversational state and the
// controllers that mutate it.
//
// A Session is created once at program start and discarded at exit. It holds
// the transcript, the feedback tracker, the current interaction mode
// (chat or call), the active locale, and the submission in-flight flag.
// Nothing in it survives a restart.
//
// # Key Types
//
//   - Session: The session-wide state object
//   - Controller: Orchestrates question submission and feedback against the
//     FAQ service, enforcing the one-in-flight and rate-once invariants
//   - Mode: Interaction surface enumeration (chat, call)
//   - Locale: Active language code from the supported set
//
// # Usage
//
// Wire a session to a FAQ client:
//
//	sess := session.New()
//	ctrl := session.NewController(sess, client)
//	if q, ok := ctrl.Begin(input); ok {
//	    answer, err := client.Ask(ctx, q, sess.Locale().Code())
//	    turn := ctrl.Complete(answer, err)
//	}
package session
