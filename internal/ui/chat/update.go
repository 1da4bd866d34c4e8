// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/querychat/internal/activity"
	"github.com/jeranaias/querychat/internal/model"
	"github.com/jeranaias/querychat/internal/results"
	"github.com/jeranaias/querychat/internal/ui/components"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case DotsTickMsg:
		return m.handleDotsTick()

	case ActivityTickMsg:
		return m.handleActivityTick()

	case StatusTickMsg:
		return m, tea.Batch(checkAssistCmd(m.client), statusTickCmd())

	case AssistStatusMsg:
		m.online = msg.Online
		m.statusBar.SetOnline(msg.Online)
		return m, nil

	case QueryResponseMsg:
		return m.handleQueryResponse(msg)

	case QueryFailedMsg:
		return m.handleQueryFailed(msg)

	case ExportCompleteMsg:
		m.transcript.AppendSystem("[OK] Exported to: " + msg.Path)
		m.refresh()
		return m, nil

	case ExportFailedMsg:
		if errors.Is(msg.Err, results.ErrNoRows) {
			m.transcript.AppendSystem("No rows to export.")
		} else {
			log.Printf("export failed: %v", msg.Err)
			m.transcript.AppendSystem("[X] Export failed.")
		}
		m.refresh()
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)
	}

	return m, nil
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.header.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)

	// Header, input box, and status bar are fixed chrome; the viewport
	// gets the rest.
	chromeHeight := 5
	vpHeight := msg.Height - chromeHeight
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = vpHeight
	m.input.Width = msg.Width - 6

	m.refresh()
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.CycleDatabase):
		m.touchActivity()
		m.cycleDatabase()
		m.header.SetSelected(m.selected)
		m.statusBar.SetDatabase(m.selected)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		m.touchActivity()
		resultID := m.transcript.LastResultID()
		if resultID == "" {
			m.transcript.AppendSystem("No results to export yet.")
			m.refresh()
			return m, nil
		}
		return m, exportCmd(m.store, resultID, m.exportDir)

	case key.Matches(msg, m.keyMap.Clear):
		m.transcript = model.NewTranscript()
		m.pending = make(map[string]time.Time)
		m.statusBar.PendingCount = 0
		m.statusBar.SetStatus(components.StatusReady)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	// Everything else edits the input; typing counts as activity.
	m.touchActivity()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// SUBMISSION
// =============================================================================

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	m.touchActivity()

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	// No database selected: warn and abort. The input keeps its text so
	// nothing typed is lost.
	if m.selected == "" {
		m.transcript.AppendSystem(selectDatabaseWarning)
		m.refresh()
		return m, nil
	}

	if m.limiter != nil && !m.limiter.Allow() {
		m.transcript.AppendSystem(rateLimitWarning)
		m.refresh()
		return m, nil
	}

	// Echo the user message and clear the input.
	m.transcript.AppendUser(text)
	m.input.SetValue("")

	// Create the loading placeholder; its ID correlates the response.
	ph := m.transcript.AppendPending()
	m.pending[ph.ID] = time.Now()

	m.statusBar.SetStatus(components.StatusThinking)
	m.statusBar.PendingCount = len(m.pending)
	m.refresh()

	cmds := []tea.Cmd{queryCmd(m.client, ph.ID, text, m.selected, m.timeout)}
	// The dot animation loop runs while any request is pending; start it
	// only for the first one so ticks don't stack.
	if len(m.pending) == 1 {
		m.dots.Reset()
		cmds = append(cmds, dotsTickCmd())
	}
	return m, tea.Batch(cmds...)
}

// =============================================================================
// TIMERS
// =============================================================================

func (m Model) handleDotsTick() (tea.Model, tea.Cmd) {
	// The loop self-terminates once nothing is pending.
	if len(m.pending) == 0 {
		return m, nil
	}
	m.dots.Advance()
	m.refresh()
	return m, dotsTickCmd()
}

func (m Model) handleActivityTick() (tea.Model, tea.Cmd) {
	if m.monitor.Check(time.Now()) {
		notice := m.transcript.AppendSystem(activity.Notice)
		notice.InactivityNotice = true
		m.statusBar.SetStatus(components.StatusIdle)
		m.refresh()
	}
	// The activity poll runs for the life of the session.
	return m, activityTickCmd(m.pollInterval)
}

// =============================================================================
// RESPONSE HANDLING
// =============================================================================

func (m Model) handleQueryResponse(msg QueryResponseMsg) (tea.Model, tea.Cmd) {
	clock, ok := m.resolvePending(msg.LoadingID)
	if !ok {
		// Stale reply for a cleared conversation; drop it.
		return m, nil
	}

	content, resultID, err := m.interp.Interpret(msg.Response)
	if err != nil {
		log.Printf("result registration failed: %v", err)
	}

	botMsg := m.transcript.AppendAssistant(content)
	botMsg.ResultID = resultID
	if clock != "" {
		// The reply shows the clock the user saw at submission.
		botMsg.Clock = clock
	}

	// A successful response counts as an activity event.
	m.touchActivity()

	m.settleStatus()
	m.refresh()
	return m, nil
}

func (m Model) handleQueryFailed(msg QueryFailedMsg) (tea.Model, tea.Cmd) {
	clock, ok := m.resolvePending(msg.LoadingID)
	if !ok {
		return m, nil
	}

	// The error detail is diagnostic only; the user sees a generic apology.
	log.Printf("query failed: %v", msg.Err)

	botMsg := m.transcript.AppendAssistant(transportApology)
	if clock != "" {
		botMsg.Clock = clock
	}

	// A failure does not reset activity: an abandoned session should
	// still go idle on schedule.

	m.settleStatus()
	m.refresh()
	return m, nil
}

// resolvePending removes an in-flight entry and its placeholder, returning
// the placeholder's clock label. ok is false for unknown IDs.
func (m *Model) resolvePending(loadingID string) (clock string, ok bool) {
	if _, found := m.pending[loadingID]; !found {
		return "", false
	}
	delete(m.pending, loadingID)

	if ph := m.transcript.Get(loadingID); ph != nil {
		clock = ph.Clock
		m.transcript.Remove(loadingID)
	}
	return clock, true
}

// settleStatus returns the status bar to Ready once nothing is pending.
func (m *Model) settleStatus() {
	m.statusBar.PendingCount = len(m.pending)
	if len(m.pending) == 0 {
		m.statusBar.SetStatus(components.StatusReady)
	}
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

func (m Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	cfg := msg.Config

	m.databases = cfg.Databases.Available
	m.header = components.NewHeader(m.theme, m.databases)
	m.header.SetWidth(m.width)

	// Keep the current selection when it survives the reload.
	stillAvailable := false
	for _, db := range m.databases {
		if db == m.selected {
			stillAvailable = true
			break
		}
	}
	if !stillAvailable {
		m.selected = cfg.Databases.Default
	}
	m.header.SetSelected(m.selected)
	m.statusBar.SetDatabase(m.selected)

	m.exportDir = cfg.Export.OutputDir
	m.timeout = cfg.Timeout()
	m.pollInterval = cfg.PollInterval()
	m.showTimestamps = cfg.UI.ShowTimestamps

	m.transcript.AppendSystem("Configuration reloaded.")
	m.refresh()
	return m, nil
}

// =============================================================================
// VIEWPORT
// =============================================================================

// refresh re-renders the transcript and pins the viewport to the bottom.
// Every transcript mutation ends here.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}
