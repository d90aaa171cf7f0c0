// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package faq provides the HTTP client for communicating with the remote
// FAQ-answering service.
package faq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestClient(serverURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

// =============================================================================
// ASK TESTS
// =============================================================================

func TestAsk_Success(t *testing.T) {
	var got AskRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ask", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(AskResponse{Answer: "Two years."})
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).Ask(context.Background(), "What is the warranty period?", "en")
	require.NoError(t, err)
	assert.Equal(t, "Two years.", answer)
	assert.Equal(t, "What is the warranty period?", got.Question)
	assert.Equal(t, "en", got.Language)
}

func TestAsk_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Ask(context.Background(), "question", "en")
	require.Error(t, err)

	var ce *ClientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrTypeStatus, ce.Type)
}

func TestAsk_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"missing answer field", `{"result": "Two years."}`},
		{"empty object", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Ask(context.Background(), "question", "en")
			require.Error(t, err)

			var ce *ClientError
			require.True(t, errors.As(err, &ce), "all failures must surface as *ClientError")
			assert.Equal(t, ErrTypeInvalidResponse, ce.Type)
		})
	}
}

func TestAsk_Unreachable(t *testing.T) {
	// Grab a URL and immediately shut the server down.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).Ask(context.Background(), "question", "en")
	require.Error(t, err)

	var ce *ClientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrTypeUnreachable, ce.Type)
}

func TestAsk_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).Ask(ctx, "question", "en")
	require.Error(t, err)
}

// =============================================================================
// FEEDBACK TESTS
// =============================================================================

func TestSendFeedback_Success(t *testing.T) {
	var got FeedbackRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		// Empty 200 body; the client must not care.
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendFeedback(context.Background(), "turn_abc", true)
	require.NoError(t, err)
	assert.Equal(t, "turn_abc", got.MessageID)
	assert.True(t, got.IsPositive)
}

func TestSendFeedback_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendFeedback(context.Background(), "turn_abc", false)
	require.Error(t, err)
}

// =============================================================================
// ADMIN TESTS
// =============================================================================

func TestAddFAQ_Success(t *testing.T) {
	var got AddFAQRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/add-faq", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).AddFAQ(context.Background(), "What colors are available?", "Blue and white.")
	require.NoError(t, err)
	assert.Equal(t, "What colors are available?", got.Question)
	assert.Equal(t, "Blue and white.", got.Answer)
}

func TestAddFAQ_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).AddFAQ(context.Background(), "q", "a")
	require.Error(t, err)
}

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestNewClientWithConfig_Defaults(t *testing.T) {
	client := NewClientWithConfig(nil)
	assert.Equal(t, "http://localhost:8000", client.BaseURL())

	client = NewClientWithConfig(&ClientConfig{BaseURL: "http://faq.example.com/"})
	assert.Equal(t, "http://faq.example.com", client.BaseURL(), "trailing slash should be trimmed")
	assert.Equal(t, 30*time.Second, client.config.Timeout)
}
