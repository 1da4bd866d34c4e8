// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the querychat application:
// clock formatting for message timestamps, rune-safe string truncation, and
// atomic file writes used by the CSV exporter.
package util
