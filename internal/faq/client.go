// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package faq provides the HTTP client for communicating with the remote
// FAQ-answering service.
package faq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the FAQ service client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for diagnostics. Callers handle all
// types identically; the distinction exists only for logging.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeUnreachable
	ErrTypeTimeout
	ErrTypeStatus
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeUnreachable, Message: "FAQ service is unreachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the FAQ service client.
type ClientConfig struct {
	// BaseURL is the FAQ service base origin (default: http://localhost:8000)
	BaseURL string

	// Timeout bounds every request (default: 30s)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://localhost:8000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the FAQ service.
//
// The Client is thread-safe for concurrent use. Each operation performs a
// single attempt; retry policy, if any, belongs to the caller.
//
// Example:
//
//	client := faq.NewClient()
//	answer, err := client.Ask(ctx, "What is the warranty period?", "en")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new FAQ service client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new FAQ service client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the configured base origin.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// ASK OPERATION
// =============================================================================

// Ask submits a question to the /ask endpoint and returns the answer text.
func (c *Client) Ask(ctx context.Context, question, language string) (string, error) {
	var result AskResponse
	err := c.postJSON(ctx, "/ask", AskRequest{Question: question, Language: language}, &result)
	if err != nil {
		return "", err
	}
	if result.Answer == "" {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "response is missing the answer field"}
	}
	return result.Answer, nil
}

// =============================================================================
// FEEDBACK OPERATION
// =============================================================================

// SendFeedback submits a rating for a bot turn to the /feedback endpoint.
// The response body is ignored; only the status matters.
func (c *Client) SendFeedback(ctx context.Context, messageID string, isPositive bool) error {
	return c.postJSON(ctx, "/feedback", FeedbackRequest{MessageID: messageID, IsPositive: isPositive}, nil)
}

// =============================================================================
// ADMIN OPERATION
// =============================================================================

// AddFAQ creates a new question/answer pair via the /admin/add-faq endpoint.
// The response body is ignored; only the status matters.
func (c *Client) AddFAQ(ctx context.Context, question, answer string) error {
	return c.postJSON(ctx, "/admin/add-faq", AddFAQRequest{Question: question, Answer: answer}, nil)
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// postJSON performs a single JSON POST and decodes the response into out
// when out is non-nil. All failure shapes come back as *ClientError.
func (c *Client) postJSON(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return &ClientError{Type: ErrTypeUnreachable, Message: "FAQ service is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return &ClientError{
			Type:    ErrTypeStatus,
			Message: "unexpected status from FAQ service: " + resp.Status,
		}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return nil
}
