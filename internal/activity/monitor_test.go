// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package activity

import (
	"testing"
	"time"
)

func TestMonitorTransition(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMonitor(5*time.Minute, t0)

	if m.State() != StateActive {
		t.Fatal("new monitor should start active")
	}

	// Inside the threshold: nothing happens.
	if m.Check(t0.Add(5 * time.Minute)) {
		t.Error("Check at exactly threshold should not fire")
	}
	if m.State() != StateActive {
		t.Error("state should remain active inside threshold")
	}

	// Just past the threshold: fires exactly once.
	if !m.Check(t0.Add(5*time.Minute + time.Second)) {
		t.Error("Check past threshold should fire")
	}
	if m.State() != StateInactive {
		t.Error("state should be inactive past threshold")
	}
	if m.Check(t0.Add(10 * time.Minute)) {
		t.Error("second Check must not fire again")
	}

	// Interaction retracts the notice and restores activity.
	if !m.Touch(t0.Add(11 * time.Minute)) {
		t.Error("Touch with notice shown should request retraction")
	}
	if m.State() != StateActive {
		t.Error("state should be active after Touch")
	}

	// The cycle can repeat.
	if !m.Check(t0.Add(17 * time.Minute)) {
		t.Error("Check should fire again after a fresh idle period")
	}
}

func TestMonitorTouchWithoutNotice(t *testing.T) {
	t0 := time.Now()
	m := NewMonitor(time.Minute, t0)

	if m.Touch(t0.Add(time.Second)) {
		t.Error("Touch with no notice shown should not request retraction")
	}
}

func TestMonitorTouchResetsClock(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewMonitor(time.Minute, t0)

	m.Touch(t0.Add(50 * time.Second))

	// 70s after start but only 20s after the touch.
	if m.Check(t0.Add(70 * time.Second)) {
		t.Error("Check should measure from the last interaction")
	}
	if got := m.IdleFor(t0.Add(70 * time.Second)); got != 20*time.Second {
		t.Errorf("IdleFor = %v, want 20s", got)
	}
}

func TestMonitorDefaultThreshold(t *testing.T) {
	m := NewMonitor(0, time.Now())
	if m.threshold != DefaultThreshold {
		t.Errorf("threshold = %v, want %v", m.threshold, DefaultThreshold)
	}
}
