// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package faq provides the HTTP client for communicating with the remote
// FAQ-answering service.
package faq

// =============================================================================
// REQUEST TYPES
// =============================================================================

// AskRequest is the request body for the /ask endpoint.
type AskRequest struct {
	Question string `json:"question"` // Free-text user question
	Language string `json:"language"` // Locale code (e.g., "en", "hi")
}

// FeedbackRequest is the request body for the /feedback endpoint.
type FeedbackRequest struct {
	MessageID  string `json:"messageId"`  // Bot turn ID being rated
	IsPositive bool   `json:"isPositive"` // Thumbs up vs thumbs down
}

// AddFAQRequest is the request body for the /admin/add-faq endpoint.
type AddFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// AskResponse is the response from the /ask endpoint.
// The answer field is required; a 2xx response without it is malformed.
type AskResponse struct {
	Answer string `json:"answer"`
}
