// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts and turns.
package model

import "sync"

// =============================================================================
// FEEDBACK TRACKER
// =============================================================================

// FeedbackTracker records at most one rating per bot turn ID.
//
// A record is immutable once written: no rating change, no un-rating. The
// caller is expected to write a record only after the feedback endpoint has
// accepted it, so a failed call leaves the turn ratable.
//
// Safe for concurrent use; ratings arrive from command goroutines while the
// event loop reads for rendering.
type FeedbackTracker struct {
	mu      sync.RWMutex
	ratings map[string]bool
}

// NewFeedbackTracker creates an empty tracker.
func NewFeedbackTracker() *FeedbackTracker {
	return &FeedbackTracker{
		ratings: make(map[string]bool),
	}
}

// Record stores a rating for the given turn ID. It returns false without
// modifying anything if the ID already has a record or the ID is empty.
func (f *FeedbackTracker) Record(id string, positive bool) bool {
	if id == "" {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.ratings[id]; exists {
		return false
	}
	f.ratings[id] = positive
	return true
}

// Rating returns the stored rating for the given turn ID.
// The second return value is false if the turn has not been rated.
func (f *FeedbackTracker) Rating(id string) (positive bool, ok bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	positive, ok = f.ratings[id]
	return positive, ok
}

// Rated reports whether the given turn ID already has a record.
func (f *FeedbackTracker) Rated(id string) bool {
	_, ok := f.Rating(id)
	return ok
}

// Count returns the number of recorded ratings.
func (f *FeedbackTracker) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.ratings)
}
