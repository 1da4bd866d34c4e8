// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/querychat/internal/model"
	"github.com/jeranaias/querychat/internal/ui/components"
)

// View renders the chat view.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())
	return b.String()
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

// renderMessages renders the full transcript for the viewport.
func (m *Model) renderMessages() string {
	if m.transcript.IsEmpty() {
		return m.renderEmptyState()
	}

	var parts []string
	for _, msg := range m.transcript.History() {
		rendered := m.renderMessage(msg)
		if rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderMessage(msg *model.Message) string {
	if msg.Pending {
		return m.renderPendingMessage(msg)
	}
	switch msg.Role {
	case model.RoleUser:
		return m.renderUserMessage(msg)
	case model.RoleAssistant:
		return m.renderBotMessage(msg)
	case model.RoleSystem:
		return m.renderSystemMessage(msg)
	default:
		return ""
	}
}

// renderUserMessage renders a right-aligned user bubble.
func (m *Model) renderUserMessage(msg *model.Message) string {
	maxWidth := m.bubbleWidth()

	content := msg.Content
	if m.showTimestamps {
		content += "\n" + m.theme.Timestamp.Render(msg.Clock)
	}

	rendered := m.theme.UserBubble.MaxWidth(maxWidth).Render(wrapText(content, maxWidth-4))

	// Push the bubble to the right edge.
	marginLeft := m.width - lipgloss.Width(rendered) - 2
	if marginLeft < 0 {
		marginLeft = 0
	}
	return lipgloss.NewStyle().
		MarginLeft(marginLeft).
		MarginBottom(1).
		Render(rendered)
}

// renderBotMessage renders a left-aligned bot bubble, with any fenced query
// rendered as a highlighted code block.
func (m *Model) renderBotMessage(msg *model.Message) string {
	maxWidth := m.bubbleWidth()

	content := msg.Content
	if strings.TrimSpace(content) == "" {
		content = " "
	}

	var rendered string
	if strings.Contains(content, "```") {
		rendered = components.ParseCodeBlocks(content, maxWidth)
	} else {
		rendered = m.theme.BotBubble.MaxWidth(maxWidth).Render(wrapText(content, maxWidth-4))
	}

	if m.showTimestamps {
		rendered += "\n" + m.theme.Timestamp.Render(msg.Clock)
	}

	return lipgloss.NewStyle().
		MarginLeft(1).
		MarginBottom(1).
		Render(rendered)
}

// renderPendingMessage renders the animated loading placeholder.
func (m *Model) renderPendingMessage(msg *model.Message) string {
	rendered := m.theme.PendingBubble.Render(m.dots.View())
	if m.showTimestamps {
		rendered += "\n" + m.theme.Timestamp.Render(msg.Clock)
	}
	return lipgloss.NewStyle().
		MarginLeft(1).
		MarginBottom(1).
		Render(rendered)
}

// renderSystemMessage renders warnings and notices centered in amber.
func (m *Model) renderSystemMessage(msg *model.Message) string {
	rendered := m.theme.SystemBubble.MaxWidth(m.bubbleWidth()).Render(msg.Content)
	return lipgloss.NewStyle().
		MarginLeft(1).
		MarginBottom(1).
		Render(rendered)
}

func (m *Model) renderEmptyState() string {
	hint := "Select a database with tab, then ask a question about your data."
	return lipgloss.NewStyle().
		Foreground(m.theme.Timestamp.GetForeground()).
		Padding(1, 2).
		Render(hint)
}

// =============================================================================
// INPUT
// =============================================================================

func (m Model) renderInput() string {
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}

// bubbleWidth returns the maximum bubble width for the current terminal.
func (m *Model) bubbleWidth() int {
	maxWidth := m.width - 8
	if maxWidth < 10 {
		maxWidth = 10
	}
	return maxWidth
}

// =============================================================================
// TEXT WRAPPING
// =============================================================================

// wrapText wraps text at word boundaries, falling back to a hard break for
// words longer than the width.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}

		runes := []rune(line)
		for len(runes) > maxWidth {
			breakPoint := maxWidth
			for j := maxWidth; j > 0; j-- {
				if runes[j] == ' ' {
					breakPoint = j
					break
				}
			}

			result.WriteString(string(runes[:breakPoint]))
			result.WriteString("\n")
			runes = []rune(strings.TrimLeft(string(runes[breakPoint:]), " "))
		}
		result.WriteString(string(runes))
	}

	return result.String()
}
