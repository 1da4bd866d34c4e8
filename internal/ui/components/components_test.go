// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/querychat/internal/ui/styles"
)

func TestDotsCycle(t *testing.T) {
	var d Dots

	if d.View() != "Thinking" {
		t.Errorf("initial frame = %q", d.View())
	}
	d.Advance()
	if d.View() != "Thinking." {
		t.Errorf("frame after advance = %q", d.View())
	}
	d.Advance()
	d.Advance()
	if d.View() != "Thinking..." {
		t.Errorf("third frame = %q", d.View())
	}
	d.Advance()
	if d.View() != "Thinking" {
		t.Errorf("frame should wrap to zero dots, got %q", d.View())
	}

	d.Reset()
	if d.View() != "Thinking" {
		t.Errorf("frame after reset = %q", d.View())
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusThinking, "Thinking..."},
		{StatusIdle, "Idle"},
		{StatusError, "Error"},
		{Status(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusBarView(t *testing.T) {
	theme := styles.NewTheme()
	bar := NewStatusBar(theme)
	bar.SetWidth(100)
	bar.SetOnline(true)
	bar.SetDatabase("sales")

	out := bar.View()
	if !strings.Contains(out, "online") {
		t.Errorf("missing online indicator:\n%s", out)
	}
	if !strings.Contains(out, "db:sales") {
		t.Errorf("missing database label:\n%s", out)
	}
	if !strings.Contains(out, "ctrl+e") {
		t.Errorf("missing export shortcut:\n%s", out)
	}

	bar.SetOnline(false)
	if !strings.Contains(bar.View(), "offline") {
		t.Error("missing offline indicator")
	}

	bar.SetWidth(40)
	if bar.View() == "" {
		t.Error("narrow view should still render")
	}
}

func TestHeaderPills(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme, []string{"sales", "inventory"})
	h.SetWidth(100)
	h.SetSelected("sales")

	out := h.View()
	if !strings.Contains(out, "sales") || !strings.Contains(out, "inventory") {
		t.Errorf("missing database pills:\n%s", out)
	}
	if !strings.Contains(out, "querychat") {
		t.Errorf("missing title:\n%s", out)
	}
}

func TestParseCodeBlocks(t *testing.T) {
	text := "before\n```sql\nSELECT 1\n```\nafter"
	out := ParseCodeBlocks(text, 80)

	if !strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Errorf("surrounding text lost:\n%s", out)
	}
	if !strings.Contains(out, "SELECT") {
		t.Errorf("code content lost:\n%s", out)
	}
	if strings.Contains(out, "```") {
		t.Errorf("fence markers should be consumed:\n%s", out)
	}
}

func TestParseCodeBlocksUnclosed(t *testing.T) {
	out := ParseCodeBlocks("```sql\nSELECT 1", 80)
	if !strings.Contains(out, "SELECT") {
		t.Errorf("unclosed fence content lost:\n%s", out)
	}
}
