// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assist provides the HTTP client for the query-assistant endpoint.
// It submits natural-language requests with a target database and decodes
// the structured (or legacy bare-text) replies.
package assist
