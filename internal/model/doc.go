// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation transcript.
//
// # Key Types
//
//   - Transcript: the ordered list of rendered messages making up the visible
//     conversation
//   - Message: a single transcript entry with role, content, and timestamp
//   - Role: message role enumeration (user, assistant, system)
//
// Loading placeholders are ordinary messages with Pending set; they are
// removed wholesale by ID when the matching response arrives and replaced by
// a final assistant message. The inactivity notice is a system message the
// activity monitor retracts by ID on the next qualifying interaction.
package model
