// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"sync"
	"testing"
)

// =============================================================================
// TURN TESTS
// =============================================================================

func TestNewBotTurn_AlwaysHasID(t *testing.T) {
	for i := 0; i < 10; i++ {
		turn := NewBotTurn("answer")
		if turn.ID == "" {
			t.Fatal("bot turn should always carry an ID")
		}
		if !strings.HasPrefix(turn.ID, "turn_") {
			t.Errorf("unexpected ID format: %q", turn.ID)
		}
	}
}

func TestNewBotTurn_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		turn := NewBotTurn("answer")
		if seen[turn.ID] {
			t.Fatalf("duplicate turn ID: %q", turn.ID)
		}
		seen[turn.ID] = true
	}
}

func TestNewUserTurn_HasNoID(t *testing.T) {
	turn := NewUserTurn("question")
	if turn.ID != "" {
		t.Errorf("user turn should not carry an ID, got %q", turn.ID)
	}
	if turn.Sender != SenderUser {
		t.Errorf("Sender = %q, want %q", turn.Sender, SenderUser)
	}
}

func TestSender_DisplayName(t *testing.T) {
	tests := []struct {
		sender Sender
		want   string
	}{
		{SenderUser, "You"},
		{SenderBot, "FAQ Bot"},
		{Sender("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.sender.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.sender, got, tc.want)
		}
	}
}

func TestTurn_Preview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"long text truncated", "hello world", 8, "hello..."},
		{"unicode safe", "नमस्ते दुनिया और सब लोग", 10, "नमस्ते ..."},
		{"tiny max", "hello", 2, "he"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			turn := NewUserTurn(tc.text)
			if got := turn.Preview(tc.maxLen); got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.maxLen, got, tc.want)
			}
		})
	}
}

// =============================================================================
// TRANSCRIPT TESTS
// =============================================================================

func TestTranscript_AppendPreservesOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("first"))
	tr.Append(NewBotTurn("second"))
	tr.Append(NewUserTurn("third"))

	turns := tr.Turns()
	if len(turns) != 3 {
		t.Fatalf("Len = %d, want 3", len(turns))
	}
	for i, want := range []string{"first", "second", "third"} {
		if turns[i].Text != want {
			t.Errorf("turns[%d].Text = %q, want %q", i, turns[i].Text, want)
		}
	}
}

func TestTranscript_TurnsReturnsSnapshot(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserTurn("original"))

	snapshot := tr.Turns()
	snapshot[0].Text = "mutated"

	turns := tr.Turns()
	if turns[0].Text != "original" {
		t.Error("mutating the snapshot must not affect the transcript")
	}
}

func TestTranscript_LastBotTurn(t *testing.T) {
	tr := NewTranscript()

	if _, ok := tr.LastBotTurn(); ok {
		t.Error("empty transcript should have no bot turn")
	}

	tr.Append(NewUserTurn("q1"))
	bot1 := NewBotTurn("a1")
	tr.Append(bot1)
	tr.Append(NewUserTurn("q2"))

	got, ok := tr.LastBotTurn()
	if !ok || got.ID != bot1.ID {
		t.Errorf("LastBotTurn = %+v, want %+v", got, bot1)
	}

	bot2 := NewBotTurn("a2")
	tr.Append(bot2)
	got, ok = tr.LastBotTurn()
	if !ok || got.ID != bot2.ID {
		t.Errorf("LastBotTurn after second answer = %+v, want %+v", got, bot2)
	}
}

func TestTranscript_TurnByID(t *testing.T) {
	tr := NewTranscript()
	bot := NewBotTurn("answer")
	tr.Append(NewUserTurn("question"))
	tr.Append(bot)

	got, ok := tr.TurnByID(bot.ID)
	if !ok || got.Text != "answer" {
		t.Errorf("TurnByID(%q) = %+v, %v", bot.ID, got, ok)
	}

	if _, ok := tr.TurnByID("missing"); ok {
		t.Error("unknown ID should not resolve")
	}
	if _, ok := tr.TurnByID(""); ok {
		t.Error("empty ID should not resolve")
	}
}

func TestTranscript_ConcurrentAppendAndRead(t *testing.T) {
	tr := NewTranscript()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tr.Append(NewBotTurn("answer"))
		}()
		go func() {
			defer wg.Done()
			_ = tr.Turns()
		}()
	}
	wg.Wait()

	if tr.Len() != 50 {
		t.Errorf("Len = %d, want 50", tr.Len())
	}
}

// =============================================================================
// FEEDBACK TRACKER TESTS
// =============================================================================

func TestFeedbackTracker_FirstRatingWins(t *testing.T) {
	fb := NewFeedbackTracker()

	if !fb.Record("id1", true) {
		t.Fatal("first rating should be recorded")
	}
	if fb.Record("id1", false) {
		t.Fatal("second rating on the same ID should be a no-op")
	}

	positive, ok := fb.Rating("id1")
	if !ok || !positive {
		t.Errorf("Rating(id1) = %v, %v; want true, true", positive, ok)
	}
}

func TestFeedbackTracker_EmptyIDRejected(t *testing.T) {
	fb := NewFeedbackTracker()
	if fb.Record("", true) {
		t.Error("empty ID should not be recordable")
	}
	if fb.Count() != 0 {
		t.Errorf("Count = %d, want 0", fb.Count())
	}
}

func TestFeedbackTracker_IndependentIDs(t *testing.T) {
	fb := NewFeedbackTracker()
	fb.Record("a", true)
	fb.Record("b", false)

	if pos, ok := fb.Rating("a"); !ok || !pos {
		t.Error("rating for a should be positive")
	}
	if pos, ok := fb.Rating("b"); !ok || pos {
		t.Error("rating for b should be negative")
	}
	if fb.Rated("c") {
		t.Error("unrated ID reported as rated")
	}
}

func TestFeedbackTracker_ConcurrentRecord(t *testing.T) {
	fb := NewFeedbackTracker()
	var wg sync.WaitGroup
	recorded := make([]bool, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			recorded[n] = fb.Record("same-id", n%2 == 0)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, r := range recorded {
		if r {
			wins++
		}
	}
	if wins != 1 {
		t.Errorf("exactly one concurrent Record should win, got %d", wins)
	}
}
