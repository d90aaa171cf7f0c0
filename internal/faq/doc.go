// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package faq provides the HTTP client for communicating with the remote
// FAQ-answering service.
//
// The service exposes three JSON-over-HTTP operations on a fixed base
// origin:
//
//   - POST /ask            {question, language} -> {answer}
//   - POST /feedback       {messageId, isPositive} -> 2xx
//   - POST /admin/add-faq  {question, answer} -> 2xx
//
// Callers treat any transport failure, non-2xx status, or malformed body as
// one undifferentiated failure; the client reports them all as *ClientError
// values so no error subtype ever needs to cross this boundary.
package faq
