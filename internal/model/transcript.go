// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// MaxMessages is the maximum number of messages kept in the transcript.
// When exceeded, the oldest messages are pruned to prevent unbounded memory
// growth over a long session.
const MaxMessages = 1000

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the visible conversation.
type Transcript struct {
	// Identity
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Messages  []*Message `json:"messages"`
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the transcript.
func (t *Transcript) Append(msg *Message) {
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = time.Now()
	t.prune()
}

// AppendUser creates and appends a user message.
func (t *Transcript) AppendUser(content string) *Message {
	msg := NewUserMessage(content)
	t.Append(msg)
	return msg
}

// AppendAssistant creates and appends an assistant message.
func (t *Transcript) AppendAssistant(content string) *Message {
	msg := NewAssistantMessage(content)
	t.Append(msg)
	return msg
}

// AppendSystem creates and appends a system message.
func (t *Transcript) AppendSystem(content string) *Message {
	msg := NewSystemMessage(content)
	t.Append(msg)
	return msg
}

// AppendPending creates and appends a loading placeholder, returning it so
// the caller can track its ID.
func (t *Transcript) AppendPending() *Message {
	msg := NewPendingMessage()
	t.Append(msg)
	return msg
}

// Remove removes a message by ID. Returns true when a message was removed.
// Used for placeholder replacement and inactivity-notice retraction; settled
// messages are never mutated.
func (t *Transcript) Remove(id string) bool {
	for i, msg := range t.Messages {
		if msg.ID == id {
			t.Messages = append(t.Messages[:i], t.Messages[i+1:]...)
			t.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Get returns a message by its ID, or nil.
func (t *Transcript) Get(id string) *Message {
	for _, msg := range t.Messages {
		if msg.ID == id {
			return msg
		}
	}
	return nil
}

// Last returns the most recent message, or nil if empty.
func (t *Transcript) Last() *Message {
	if len(t.Messages) == 0 {
		return nil
	}
	return t.Messages[len(t.Messages)-1]
}

// LastResultID returns the result ID of the most recent message carrying a
// result set, or "" when no exportable result exists yet.
func (t *Transcript) LastResultID() string {
	for i := len(t.Messages) - 1; i >= 0; i-- {
		if t.Messages[i].ResultID != "" {
			return t.Messages[i].ResultID
		}
	}
	return ""
}

// InactivityNotice returns the current inactivity notice, or nil.
func (t *Transcript) InactivityNotice() *Message {
	for i := len(t.Messages) - 1; i >= 0; i-- {
		if t.Messages[i].InactivityNotice {
			return t.Messages[i]
		}
	}
	return nil
}

// PendingCount returns the number of loading placeholders still in flight.
func (t *Transcript) PendingCount() int {
	n := 0
	for _, msg := range t.Messages {
		if msg.Pending {
			n++
		}
	}
	return n
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.Messages)
}

// IsEmpty returns true if there are no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.Messages) == 0
}

// History returns the message list for display.
func (t *Transcript) History() []*Message {
	return t.Messages
}

// prune drops the oldest settled messages once the transcript exceeds
// MaxMessages, preserving relative order. Pending placeholders are kept
// regardless of age so an in-flight response always finds its placeholder.
func (t *Transcript) prune() {
	if len(t.Messages) <= MaxMessages {
		return
	}

	drop := len(t.Messages) - MaxMessages
	kept := make([]*Message, 0, MaxMessages)
	for _, msg := range t.Messages {
		if drop > 0 && !msg.Pending {
			drop--
			continue
		}
		kept = append(kept, msg)
	}
	t.Messages = kept
}
