// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package results handles tabular query results: decoding row data while
// preserving column order, rendering inline tables, CSV serialization, and
// the bounded in-memory store that export actions read from.
package results
