// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the per-session conversational state and the
// controllers that mutate it.
package session

import (
	"context"
	"strings"

	"github.com/jeranaias/faqbot-tui/internal/diag"
	"github.com/jeranaias/faqbot-tui/internal/model"
)

// ApologyText is the fixed user-facing text appended as a bot turn when a
// submission fails for any reason.
const ApologyText = "Sorry, I encountered an error. Please try again."

// Service is the slice of the FAQ client the controller needs.
// *faq.Client satisfies it; tests substitute fakes.
type Service interface {
	Ask(ctx context.Context, question, language string) (string, error)
	SendFeedback(ctx context.Context, messageID string, isPositive bool) error
}

// =============================================================================
// SUBMISSION CONTROLLER
// =============================================================================

// Controller orchestrates question submission and feedback for one session.
//
// Submission is a two-phase state machine over {Idle, Submitting}:
//
//	Begin    Idle -> Submitting: validate, append the user turn, arm the gate
//	Complete Submitting -> Idle: append the bot turn (answer or apology)
//
// The split matches the one suspension point per submission: the network
// call happens between the two phases, typically inside a Bubble Tea
// command. While Submitting, further Begin calls are rejected, so one
// controller never has two requests in flight and user/bot turns from
// consecutive submissions never interleave.
type Controller struct {
	session *Session
	client  Service
}

// NewController creates a controller bound to one session and one client.
func NewController(session *Session, client Service) *Controller {
	return &Controller{
		session: session,
		client:  client,
	}
}

// Session returns the controller's session.
func (c *Controller) Session() *Session {
	return c.session
}

// Begin starts a submission cycle. Empty or whitespace-only input is a
// silent no-op, as is a submit while another submission is in flight; in
// both cases no turn is appended and ok is false.
//
// On acceptance the user turn carries the raw input text and the accepted
// question is returned for dispatch to the service.
func (c *Controller) Begin(input string) (question string, ok bool) {
	if strings.TrimSpace(input) == "" {
		return "", false
	}
	if !c.session.beginSubmission() {
		return "", false
	}
	c.session.Transcript().Append(model.NewUserTurn(input))
	return input, true
}

// Complete finishes a submission cycle with the service's result and
// returns the appended bot turn. Any error is absorbed here: the bot turn
// becomes the fixed apology text and the failure is only logged. The
// apology turn carries a fresh ID like every bot turn, so it remains
// feedback-eligible.
//
// Calling Complete without a matching Begin still appends the turn but the
// gate is already open; the pairing is the caller's responsibility.
func (c *Controller) Complete(answer string, err error) model.Turn {
	var turn model.Turn
	if err != nil {
		diag.Error("submit", "ask failed", err)
		turn = model.NewBotTurn(ApologyText)
	} else {
		turn = model.NewBotTurn(answer)
	}
	c.session.Transcript().Append(turn)
	c.session.endSubmission()
	return turn
}

// Ask runs a full submission cycle synchronously: Begin, the service call,
// Complete. It returns the bot turn and whether the input was accepted.
// This is the path for the one-shot CLI; the TUI drives the two phases
// itself so the event loop stays responsive.
func (c *Controller) Ask(ctx context.Context, input string) (model.Turn, bool) {
	question, ok := c.Begin(input)
	if !ok {
		return model.Turn{}, false
	}
	answer, err := c.client.Ask(ctx, question, c.session.Locale().Code())
	return c.Complete(answer, err), true
}

// =============================================================================
// FEEDBACK FLOW
// =============================================================================

// RateOutcome is the result of a rating attempt.
type RateOutcome int

const (
	// RateRecorded means the endpoint accepted the rating and the record
	// was written; the turn is no longer ratable.
	RateRecorded RateOutcome = iota

	// RateAlreadyRated means the turn already had a record; no call was
	// made and nothing changed.
	RateAlreadyRated

	// RateFailed means the endpoint call failed; no record was written and
	// the turn remains ratable.
	RateFailed
)

// Rate attaches a rating to a bot turn. The record is written only after
// the feedback endpoint accepts it, so a network failure leaves the turn
// ratable and a later retry is possible. A second rating on the same turn
// is rejected locally without touching the endpoint.
func (c *Controller) Rate(ctx context.Context, messageID string, isPositive bool) RateOutcome {
	if messageID == "" || c.session.Feedback().Rated(messageID) {
		return RateAlreadyRated
	}
	if err := c.client.SendFeedback(ctx, messageID, isPositive); err != nil {
		diag.Error("feedback", "feedback submission failed", err)
		return RateFailed
	}
	// A concurrent rating may have won the race while the call was out;
	// Record keeps the first value in that case.
	if !c.session.Feedback().Record(messageID, isPositive) {
		return RateAlreadyRated
	}
	return RateRecorded
}
