// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

func TestMessageCreation(t *testing.T) {
	msg := NewUserMessage("show top 5 customers")

	if msg.Role != RoleUser {
		t.Errorf("Role = %v, want %v", msg.Role, RoleUser)
	}
	if msg.Content != "show top 5 customers" {
		t.Errorf("Content = %q", msg.Content)
	}
	if msg.ID == "" {
		t.Error("ID should be generated")
	}
	if !strings.Contains(msg.Clock, ":") {
		t.Errorf("Clock = %q, want H:MM", msg.Clock)
	}
}

func TestMessageIDsUnique(t *testing.T) {
	// Rapid creation within the same clock tick must still yield unique IDs.
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		msg := NewPendingMessage()
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID %q", msg.ID)
		}
		seen[msg.ID] = true
	}
}

func TestTranscriptAppendAndRemove(t *testing.T) {
	tr := NewTranscript()

	tr.AppendUser("hello")
	pending := tr.AppendPending()
	if tr.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tr.Len())
	}
	if tr.PendingCount() != 1 {
		t.Errorf("PendingCount = %d, want 1", tr.PendingCount())
	}

	if !tr.Remove(pending.ID) {
		t.Fatal("Remove(pending) = false")
	}
	if tr.PendingCount() != 0 {
		t.Errorf("PendingCount after remove = %d, want 0", tr.PendingCount())
	}
	if tr.Remove(pending.ID) {
		t.Error("second Remove should report false")
	}
}

func TestTranscriptInactivityNotice(t *testing.T) {
	tr := NewTranscript()
	tr.AppendUser("hi")

	notice := tr.AppendSystem("You have been inactive for a while.")
	notice.InactivityNotice = true

	got := tr.InactivityNotice()
	if got == nil || got.ID != notice.ID {
		t.Fatal("InactivityNotice should find the notice")
	}

	tr.Remove(notice.ID)
	if tr.InactivityNotice() != nil {
		t.Error("notice should be gone after removal")
	}
}

func TestTranscriptLastResultID(t *testing.T) {
	tr := NewTranscript()
	if tr.LastResultID() != "" {
		t.Error("empty transcript should have no result ID")
	}

	first := tr.AppendAssistant("result one")
	first.ResultID = "res-1"
	tr.AppendAssistant("no table here")
	second := tr.AppendAssistant("result two")
	second.ResultID = "res-2"

	if got := tr.LastResultID(); got != "res-2" {
		t.Errorf("LastResultID = %q, want res-2", got)
	}
}

func TestTranscriptPrune(t *testing.T) {
	tr := NewTranscript()
	for i := 0; i < MaxMessages+50; i++ {
		tr.AppendUser("msg")
	}
	if tr.Len() != MaxMessages {
		t.Errorf("Len after prune = %d, want %d", tr.Len(), MaxMessages)
	}

	// Pending placeholders survive pruning.
	pending := tr.AppendPending()
	for i := 0; i < MaxMessages; i++ {
		tr.AppendUser("more")
	}
	if tr.Get(pending.ID) == nil {
		t.Error("pending placeholder should survive pruning")
	}
}

func TestTranscriptPruneKeepsOrder(t *testing.T) {
	tr := NewTranscript()
	for i := 0; i < MaxMessages-1; i++ {
		tr.AppendUser("old")
	}
	pending := tr.AppendPending()
	after := tr.AppendUser("after placeholder")
	tr.AppendUser("newest") // pushes past the cap

	// The placeholder keeps its position relative to newer settled
	// messages instead of sinking to the end.
	pendingIdx, afterIdx := -1, -1
	for i, msg := range tr.History() {
		switch msg.ID {
		case pending.ID:
			pendingIdx = i
		case after.ID:
			afterIdx = i
		}
	}
	if pendingIdx == -1 || afterIdx == -1 {
		t.Fatal("placeholder or follow-up message was pruned")
	}
	if pendingIdx > afterIdx {
		t.Errorf("placeholder at %d renders after newer message at %d", pendingIdx, afterIdx)
	}
	if tr.Len() != MaxMessages {
		t.Errorf("Len after prune = %d, want %d", tr.Len(), MaxMessages)
	}
}

func TestRoleDisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{RoleSystem, "System"},
		{Role("other"), "other"},
	}
	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%v) = %q, want %q", tc.role, got, tc.want)
		}
	}
}
