// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for faqbot CLI commands.
//
// Every handler returns an error; main maps it to an exit code. Handlers
// never print-and-swallow.
package cli

import (
	"errors"
	"fmt"
	"os"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitNetworkError indicates the FAQ server could not be reached
	ExitNetworkError = 4
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CLIError is a command error carrying an exit code and optional hint.
type CLIError struct {
	Code    int
	Message string
	Hint    string
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// NewUsageError creates an error for invalid command usage.
func NewUsageError(message, hint string) error {
	return &CLIError{Code: ExitUsageError, Message: message, Hint: hint}
}

// NewConfigError creates an error for configuration problems.
func NewConfigError(message string) error {
	return &CLIError{Code: ExitConfigError, Message: message}
}

// NewNetworkError creates an error for server connectivity problems.
func NewNetworkError(message string) error {
	return &CLIError{
		Code:    ExitNetworkError,
		Message: message,
		Hint:    "check server.url in the config, or pass --server",
	}
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitGeneralError
}

// PrintError prints an error to stderr with its hint, if any.
func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Hint != "" {
		fmt.Fprintf(os.Stderr, "  %s\n", cliErr.Hint)
	}
}
