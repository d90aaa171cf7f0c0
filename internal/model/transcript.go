// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and turns.
package model

import (
	"sync"
	"time"
)

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the append-only ordered log of turns for one session.
//
// Insertion order is display order is conversational order. There is no
// edit or delete operation: once a turn is appended it stays for the
// lifetime of the session. The transcript is created empty at session start
// and discarded at session end; nothing is persisted.
//
// A mutex guards the slice because Bubble Tea commands complete on their
// own goroutines while the event loop reads for rendering.
type Transcript struct {
	mu        sync.RWMutex
	turns     []Turn
	createdAt time.Time
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		turns:     make([]Turn, 0),
		createdAt: time.Now(),
	}
}

// Append adds a turn at the end of the transcript. Append cannot fail;
// upstream validation prevents invalid turns from being constructed.
func (tr *Transcript) Append(t Turn) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.turns = append(tr.turns, t)
}

// Turns returns a snapshot copy of all turns in order, for display.
// Callers may not mutate transcript state through the returned slice.
func (tr *Transcript) Turns() []Turn {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	out := make([]Turn, len(tr.turns))
	copy(out, tr.turns)
	return out
}

// Len returns the number of turns.
func (tr *Transcript) Len() int {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	return len(tr.turns)
}

// IsEmpty returns true if there are no turns.
func (tr *Transcript) IsEmpty() bool {
	return tr.Len() == 0
}

// LastTurn returns the most recent turn, or a zero Turn and false if empty.
func (tr *Transcript) LastTurn() (Turn, bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	if len(tr.turns) == 0 {
		return Turn{}, false
	}
	return tr.turns[len(tr.turns)-1], true
}

// LastBotTurn returns the most recent bot turn, or false if none exists.
func (tr *Transcript) LastBotTurn() (Turn, bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	for i := len(tr.turns) - 1; i >= 0; i-- {
		if tr.turns[i].Sender == SenderBot {
			return tr.turns[i], true
		}
	}
	return Turn{}, false
}

// TurnByID returns the turn with the given ID, or false if none matches.
// Only bot turns carry IDs.
func (tr *Transcript) TurnByID(id string) (Turn, bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()
	if id == "" {
		return Turn{}, false
	}
	for _, t := range tr.turns {
		if t.ID == id {
			return t, true
		}
	}
	return Turn{}, false
}

// CreatedAt returns when the session transcript was started.
func (tr *Transcript) CreatedAt() time.Time {
	return tr.createdAt
}
