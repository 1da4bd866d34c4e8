// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the conversation view for the querychat TUI.
//
// The model owns the transcript, the pending-request set, and the activity
// monitor, and is the only place that mutates the visible conversation.
// Responses correlate with their loading placeholders strictly by ID, never
// by arrival order, so concurrent turns resolve independently.
package chat
