// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// addfaq.go - FAQ authoring command handler for the faqbot CLI.
//
// Handles "faqbot add-faq", which posts a new question/answer pair to the
// server's admin endpoint. The TUI gates this behind the admin password;
// on the CLI, reaching the shell is the gate.
//
// Command: add-faq "question" "answer..."
//
// Examples:
//   faqbot add-faq "Is parking free?" "Yes, on weekends."
package cli

import (
	"context"
	"fmt"
	"strings"
)

// HandleAddFAQ posts a new FAQ entry to the server.
func HandleAddFAQ(args Args) error {
	question := strings.TrimSpace(args.Query)
	answer := strings.TrimSpace(args.Answer)
	if question == "" || answer == "" {
		return NewUsageError("add-faq requires a question and an answer",
			`faqbot add-faq "Is parking free?" "Yes, on weekends."`)
	}

	client, _, err := clientFromArgs(args)
	if err != nil {
		return err
	}

	if err := client.AddFAQ(context.Background(), question, answer); err != nil {
		return NewNetworkError(fmt.Sprintf("could not add FAQ: %v", err))
	}

	if !args.Quiet {
		fmt.Println("FAQ added successfully!")
	}
	return nil
}
