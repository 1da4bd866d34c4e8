// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package activity

import "time"

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultThreshold is the idle duration after which the session is
	// considered inactive.
	DefaultThreshold = 5 * time.Minute

	// DefaultPollInterval is how often the controller should call Check.
	DefaultPollInterval = 30 * time.Second
)

// Notice is the message shown once per idle period.
const Notice = "You have been inactive for a while. I'm still here when you need me."

// State is the monitor's activity state.
type State int

const (
	StateActive State = iota
	StateInactive
)

// String returns the state name.
func (s State) String() string {
	if s == StateInactive {
		return "inactive"
	}
	return "active"
}

// =============================================================================
// MONITOR
// =============================================================================

// Monitor is a timed two-state machine. It has no timer of its own: the
// caller polls Check on its own schedule and reports interactions through
// Touch, so the monitor stays deterministic and testable.
//
// Not safe for concurrent use; the chat controller drives it from a single
// update loop.
type Monitor struct {
	threshold    time.Duration
	lastActivity time.Time
	state        State
	noticeShown  bool
}

// NewMonitor creates a monitor in the active state. A threshold of zero or
// less falls back to DefaultThreshold.
func NewMonitor(threshold time.Duration, now time.Time) *Monitor {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Monitor{
		threshold:    threshold,
		lastActivity: now,
		state:        StateActive,
	}
}

// Touch records a qualifying interaction: typing, submission, or a
// successful response. Returns true when an inactivity notice is currently
// shown and should be retracted.
func (m *Monitor) Touch(now time.Time) bool {
	m.lastActivity = now
	retract := m.noticeShown
	m.state = StateActive
	m.noticeShown = false
	return retract
}

// Check evaluates elapsed idle time. Returns true exactly once per idle
// period, when the session has just crossed the threshold and the notice
// should be appended.
func (m *Monitor) Check(now time.Time) bool {
	if now.Sub(m.lastActivity) <= m.threshold {
		return false
	}
	m.state = StateInactive
	if m.noticeShown {
		return false
	}
	m.noticeShown = true
	return true
}

// State returns the current activity state.
func (m *Monitor) State() State {
	return m.state
}

// IdleFor returns how long the session has been without interaction.
func (m *Monitor) IdleFor(now time.Time) time.Duration {
	return now.Sub(m.lastActivity)
}
