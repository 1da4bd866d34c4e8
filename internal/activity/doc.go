// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package activity tracks whether the session is active or idle. The chat
// controller feeds it interactions and polls it on a timer; the monitor
// decides when the single inactivity notice appears and when it retracts.
package activity
