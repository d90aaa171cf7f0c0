// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diag provides file-based structured diagnostics logging.
package diag

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// =============================================================================
// LOGGER STATE
// =============================================================================

// The TUI owns stdout/stderr, so diagnostics go to a log file. Network
// failures are logged here and surfaced to the user only as apology turns.

var (
	mu      sync.Mutex
	logger  = zerolog.New(io.Discard)
	logFile *os.File
)

// Init opens the log file at path and routes diagnostics to it.
// Before Init (or after a failed Init) all logging is a no-op.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// Close flushes and closes the log file. Safe to call without Init.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = zerolog.New(io.Discard)
}

// =============================================================================
// LOG HELPERS
// =============================================================================

// Error logs a failure with its cause.
func Error(component, msg string, err error) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Error().Str("component", component).Err(err).Msg(msg)
}

// Info logs an informational event.
func Info(component, msg string) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Info().Str("component", component).Msg(msg)
}

// Debug logs a low-level event.
func Debug(component, msg string) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Debug().Str("component", component).Msg(msg)
}
