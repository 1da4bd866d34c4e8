// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/querychat/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single entry in the transcript.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content is the already-composed body. For assistant messages it may
	// contain fenced ```sql blocks and table text produced by the
	// interpreter; the view decides how to style it.
	Content string `json:"content"`

	// Clock is the H:MM wall-clock label captured when the message was
	// created. Placeholders and their final responses share the submission
	// clock, matching what the user saw when they hit enter.
	Clock string `json:"clock"`

	// Pending marks a loading placeholder awaiting its response.
	Pending bool `json:"-"`

	// ResultID references an exportable result set held by the result
	// store, when this message carries tabular data.
	ResultID string `json:"result_id,omitempty"`

	// InactivityNotice marks the system message the activity monitor
	// appends on idle and retracts on the next interaction.
	InactivityNotice bool `json:"-"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, content string) *Message {
	now := time.Now()
	return &Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: now,
		Clock:     util.FormatClock(now),
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) *Message {
	return NewMessage(RoleAssistant, content)
}

// NewSystemMessage creates a new system message.
func NewSystemMessage(content string) *Message {
	return NewMessage(RoleSystem, content)
}

// NewPendingMessage creates a loading placeholder. The ID doubles as the
// loading ID the controller uses to correlate the eventual response.
func NewPendingMessage() *Message {
	msg := NewMessage(RoleAssistant, "")
	msg.Pending = true
	return msg
}

// Preview returns a truncated preview of the message content.
func (m *Message) Preview(maxLen int) string {
	return util.TruncateRunes(m.Content, maxLen)
}

// IsEmpty returns true if the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}
