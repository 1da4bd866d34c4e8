// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/querychat/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current conversation status.
type Status int

const (
	StatusReady Status = iota
	StatusThinking
	StatusIdle
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	case StatusIdle:
		return "Idle"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Icon returns a shape indicator for the status, so state is readable
// without color.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusThinking:
		return "~"
	case StatusIdle:
		return "-"
	case StatusError:
		return styles.StatusIndicators.Error
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar: endpoint reachability, selected
// database, conversation status, and keyboard shortcuts.
type StatusBar struct {
	Online        bool
	Database      string
	Status        Status
	PendingCount  int
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Online:        false,
		Status:        StatusReady,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetOnline updates the endpoint reachability indicator.
func (s *StatusBar) SetOnline(online bool) {
	s.Online = online
}

// SetDatabase updates the selected database display.
func (s *StatusBar) SetDatabase(db string) {
	s.Database = db
}

// SetStatus updates the conversation status.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// View renders the status bar.
func (s *StatusBar) View() string {
	if s.Width < 60 {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders a compact status bar for narrow terminals.
func (s *StatusBar) viewNarrow() string {
	parts := []string{s.connIndicator(), s.databaseLabel(), s.Status.Icon()}
	return s.theme.StatusBar.Width(s.Width).Render(strings.Join(parts, " "))
}

// viewWide renders the full status bar with shortcuts.
func (s *StatusBar) viewWide() string {
	left := strings.Join([]string{
		s.connIndicator(),
		s.databaseLabel(),
		s.statusLabel(),
	}, "  ")

	var right string
	if s.ShowShortcuts {
		right = s.shortcuts()
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return s.theme.StatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *StatusBar) connIndicator() string {
	if s.Online {
		return s.theme.Online.Render(styles.StatusIndicators.Active + " online")
	}
	return s.theme.Offline.Render(styles.StatusIndicators.Error + " offline")
}

func (s *StatusBar) databaseLabel() string {
	if s.Database == "" {
		return s.theme.ShortcutDesc.Render("no database")
	}
	return "db:" + s.Database
}

func (s *StatusBar) statusLabel() string {
	label := s.Status.String()
	if s.Status == StatusThinking && s.PendingCount > 1 {
		label = fmt.Sprintf("Thinking (%d)...", s.PendingCount)
	}
	switch s.Status {
	case StatusIdle:
		return s.theme.Idle.Render(s.Status.Icon() + " " + label)
	case StatusError:
		return s.theme.Offline.Render(s.Status.Icon() + " " + label)
	default:
		return s.Status.Icon() + " " + label
	}
}

func (s *StatusBar) shortcuts() string {
	pairs := []struct{ key, desc string }{
		{"tab", "database"},
		{"ctrl+e", "export"},
		{"ctrl+c", "quit"},
	}
	var parts []string
	for _, p := range pairs {
		parts = append(parts, s.theme.ShortcutKey.Render(p.key)+s.theme.ShortcutDesc.Render(" "+p.desc))
	}
	return strings.Join(parts, "  ")
}
