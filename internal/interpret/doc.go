// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interpret maps assistant replies onto transcript text. It owns the
// dispatch on response shape: server-reported errors take total precedence,
// then summary, query, and tabular sections compose in a fixed order.
package interpret
