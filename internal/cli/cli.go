// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for faqbot.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdAddFAQ
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet    bool
	Plain    bool   // Disable markdown rendering
	Server   string // Override server URL
	Language string // Override answer language

	// Command-specific
	Query      string
	Answer     string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `faqbot - FAQ chatbot client

Faqbot is a terminal client for an FAQ chatbot server.

It provides:
  - An interactive chat TUI with answer feedback
  - Chat and call support modes
  - English and Hindi answers
  - An authoring surface for adding FAQ entries

Usage:
  faqbot                         Start TUI (default)
  faqbot ask "question"          Ask a single question
  faqbot add-faq "q" "a"         Add an FAQ entry (admin)
  faqbot config [show|set k v]   Configuration
  faqbot version                 Show version
  faqbot help                    Show this help

Global flags:
  --server URL     Override the FAQ server URL
  --lang CODE      Answer language (en, hi)
  --plain          Plain text output (no markdown rendering)
  -q, --quiet      Minimal output

Examples:
  faqbot ask "What are your opening hours?"
  faqbot ask --lang hi "What are your opening hours?"
  faqbot add-faq "Is parking free?" "Yes, on weekends."
  faqbot config set server.url http://faq.internal:8000

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("faqbot version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Split out from Parse so tests
// do not have to rewrite os.Args.
func ParseArgs(args []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(args)

	// No command defaults to the TUI.
	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "ask":
		if len(remaining) > 0 {
			parsed.Query = strings.Join(remaining, " ")
		}
		return CmdAsk, parsed

	case "add-faq", "addfaq":
		if len(remaining) > 0 {
			parsed.Query = remaining[0]
		}
		if len(remaining) > 1 {
			parsed.Answer = strings.Join(remaining[1:], " ")
		}
		return CmdAddFAQ, parsed

	case "config":
		if len(remaining) > 0 {
			parsed.Subcommand = remaining[0]
		}
		if len(remaining) > 1 {
			parsed.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			parsed.ConfigVal = strings.Join(remaining[2:], " ")
		}
		return CmdConfig, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// Unknown word: treat it as a question for ask, matching the habit
		// of typing the question straight after the binary name.
		parsed.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, parsed
	}
}

// parseGlobalFlags extracts global flags and returns the remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var parsed Args
	remaining := make([]string, 0, len(args))

	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "-q" || arg == "--quiet":
			parsed.Quiet = true
		case arg == "--plain":
			parsed.Plain = true
		case arg == "--server":
			if i+1 < len(args) {
				i++
				parsed.Server = args[i]
			}
		case strings.HasPrefix(arg, "--server="):
			parsed.Server = strings.TrimPrefix(arg, "--server=")
		case arg == "--lang" || arg == "--language":
			if i+1 < len(args) {
				i++
				parsed.Language = args[i]
			}
		case strings.HasPrefix(arg, "--lang="):
			parsed.Language = strings.TrimPrefix(arg, "--lang=")
		default:
			remaining = append(remaining, arg)
		}
		i++
	}

	return remaining, parsed
}
