// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

// =============================================================================
// TRUNCATION TESTS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello..."},
		{"zero max", "hello", 0, ""},
		{"tiny max", "hello", 3, "hel"},
		{"unicode preserved", "नमस्ते संसार के लोग", 9, "नमस्ते..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.input, tc.maxRunes); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.input, tc.maxRunes, got, tc.want)
			}
		})
	}
}

func TestTruncateWidth_CJKCountsDouble(t *testing.T) {
	// Each CJK character is 2 columns wide.
	got := TruncateWidth("你好世界你好", 8)
	if StringWidth(got) > 8 {
		t.Errorf("truncated width = %d, want <= 8 (%q)", StringWidth(got), got)
	}
	if got == "你好世界你好" {
		t.Error("string wider than max must be truncated")
	}
}

func TestStringWidth(t *testing.T) {
	if w := StringWidth("abc"); w != 3 {
		t.Errorf("StringWidth(abc) = %d, want 3", w)
	}
	if w := StringWidth("你好"); w != 4 {
		t.Errorf("StringWidth(你好) = %d, want 4", w)
	}
}

// =============================================================================
// WRAPPING TESTS
// =============================================================================

func TestWrapToWidth(t *testing.T) {
	lines := WrapToWidth("the quick brown fox jumps over the lazy dog", 10)
	for _, line := range lines {
		if StringWidth(line) > 10 {
			t.Errorf("line %q exceeds width 10", line)
		}
	}
	joined := strings.Join(lines, " ")
	if joined != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("wrapping lost content: %q", joined)
	}
}

func TestWrapToWidth_HardSplitsLongWords(t *testing.T) {
	lines := WrapToWidth("abcdefghijklmnop", 5)
	for _, line := range lines {
		if StringWidth(line) > 5 {
			t.Errorf("line %q exceeds width 5", line)
		}
	}
}

func TestWrapToWidth_PreservesBlankLines(t *testing.T) {
	lines := WrapToWidth("para one\n\npara two", 20)
	want := []string{"para one", "", "para two"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
