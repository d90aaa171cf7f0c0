// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package call provides the call support view: a landing panel with a
// single start action, and the live call surface once activated.
package call
