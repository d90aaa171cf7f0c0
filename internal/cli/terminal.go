// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - TTY detection for the faqbot CLI.
//
// Markdown rendering and color output are for humans; piped or redirected
// output gets plain text.
package cli

import (
	"os"

	"github.com/muesli/termenv"
)

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// GetColorProfile returns the color profile for CLI output, honoring
// NO_COLOR and non-TTY stdout.
func GetColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
