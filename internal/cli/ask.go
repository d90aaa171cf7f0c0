// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single question command handler for the faqbot CLI.
//
// Handles "faqbot ask", which sends one question to the FAQ server and
// prints the answer to stdout.
//
// Command: ask [question]
//
// Examples:
//   faqbot ask "What are your opening hours?"
//   faqbot ask --lang hi "What are your opening hours?"
//   faqbot ask --plain "Is parking free?" > answer.txt
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/faqbot-tui/internal/faq"
	"github.com/jeranaias/faqbot-tui/internal/session"
)

// HandleAsk runs a one-shot question against the FAQ server.
func HandleAsk(args Args) error {
	question := strings.TrimSpace(args.Query)
	if question == "" {
		return NewUsageError("ask requires a question", `faqbot ask "What are your opening hours?"`)
	}

	client, locale, err := clientFromArgs(args)
	if err != nil {
		return err
	}

	sess := session.New()
	sess.SetLocale(locale)
	ctrl := session.NewController(sess, client)

	turn, ok := ctrl.Ask(context.Background(), question)
	if !ok {
		return NewUsageError("ask requires a non-empty question", "")
	}

	// The controller absorbs transport failures into the apology turn; the
	// CLI surfaces them as a real error instead so scripts see a non-zero
	// exit.
	if turn.Text == session.ApologyText {
		return NewNetworkError(fmt.Sprintf("could not reach FAQ server at %s", client.BaseURL()))
	}

	fmt.Print(renderAnswer(turn.Text, args))
	return nil
}

// renderAnswer formats the answer for the terminal. Markdown rendering is
// skipped with --plain or when stdout is not a terminal.
func renderAnswer(answer string, args Args) string {
	if args.Plain || args.Quiet || !isTerminal(os.Stdout) {
		return answer + "\n"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return answer + "\n"
	}
	rendered, err := r.Render(answer)
	if err != nil {
		return answer + "\n"
	}
	return rendered
}

// clientFromArgs builds the FAQ client and locale from config plus any CLI
// overrides.
func clientFromArgs(args Args) (*faq.Client, session.Locale, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}

	clientCfg := faq.DefaultConfig()
	clientCfg.BaseURL = cfg.Server.URL
	clientCfg.Timeout = cfg.ServerTimeout()
	if args.Server != "" {
		clientCfg.BaseURL = args.Server
	}

	locale := session.Locale(cfg.Chat.Language)
	if args.Language != "" {
		locale = session.Locale(args.Language)
	}
	if !locale.IsSupported() {
		return nil, "", NewUsageError(
			fmt.Sprintf("unsupported language %q", string(locale)),
			"supported: en, hi")
	}

	return faq.NewClientWithConfig(clientCfg), locale, nil
}
