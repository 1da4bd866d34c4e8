// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/querychat/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header renders the title row and the database selector pills.
type Header struct {
	Title     string
	Databases []string
	Selected  string
	Width     int
	theme     *styles.Theme
}

// NewHeader creates a header with the given selectable databases.
func NewHeader(theme *styles.Theme, databases []string) *Header {
	return &Header{
		Title:     "querychat",
		Databases: databases,
		Width:     80,
		theme:     theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetSelected updates which database pill is highlighted.
func (h *Header) SetSelected(db string) {
	h.Selected = db
}

// View renders the header.
func (h *Header) View() string {
	title := h.theme.Title.Render(h.Title)

	if len(h.Databases) == 0 {
		return h.theme.Header.Width(h.Width).Render(title)
	}

	var pills []string
	for _, db := range h.Databases {
		if db == h.Selected {
			pills = append(pills, h.theme.DatabaseSelected.Render(db))
		} else {
			pills = append(pills, h.theme.DatabasePill.Render(db))
		}
	}

	return h.theme.Header.Width(h.Width).Render(title + "  " + strings.Join(pills, " "))
}
