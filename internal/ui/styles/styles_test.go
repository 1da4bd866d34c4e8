// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
	"time"
)

func TestThinkingFrameCycle(t *testing.T) {
	want := []string{"Thinking", "Thinking.", "Thinking..", "Thinking..."}
	for tick, expected := range want {
		if got := ThinkingFrame(tick); got != expected {
			t.Errorf("ThinkingFrame(%d) = %q, want %q", tick, got, expected)
		}
	}
	// Wraps back around.
	if got := ThinkingFrame(4); got != "Thinking" {
		t.Errorf("ThinkingFrame(4) = %q, want wrap to bare label", got)
	}
}

func TestSpinnerDuration(t *testing.T) {
	if d := (SpinnerConfig{FPS: 10}).Duration(); d != 100*time.Millisecond {
		t.Errorf("Duration = %v, want 100ms", d)
	}
	if d := (SpinnerConfig{}).Duration(); d != 100*time.Millisecond {
		t.Errorf("zero FPS Duration = %v, want fallback 100ms", d)
	}
}

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	theme.SetSize(80, 24)
	if theme.Width != 80 || theme.Height != 24 {
		t.Errorf("SetSize not applied: %dx%d", theme.Width, theme.Height)
	}
	if theme.GetLayoutMode() != LayoutNormal {
		t.Errorf("LayoutMode = %v, want normal at 80 cols", theme.GetLayoutMode())
	}

	theme.SetSize(40, 24)
	if theme.GetLayoutMode() != LayoutNarrow {
		t.Error("expected narrow layout at 40 cols")
	}
}

func TestRenderStatusHelpers(t *testing.T) {
	if out := RenderError("boom"); !strings.Contains(out, "boom") || !strings.Contains(out, StatusIndicators.Error) {
		t.Errorf("RenderError = %q", out)
	}
	if out := RenderSuccess("saved"); !strings.Contains(out, StatusIndicators.Success) {
		t.Errorf("RenderSuccess = %q", out)
	}
}
