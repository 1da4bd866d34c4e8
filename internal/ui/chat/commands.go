// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/results"
	"github.com/jeranaias/querychat/internal/ui/styles"
)

// =============================================================================
// TIMER COMMANDS
// =============================================================================

// statusCheckInterval is how often the endpoint health pill refreshes.
const statusCheckInterval = 30 * time.Second

// dotsTickCmd schedules the next ellipsis frame.
func dotsTickCmd() tea.Cmd {
	return tea.Tick(styles.ThinkingInterval, func(time.Time) tea.Msg {
		return DotsTickMsg{}
	})
}

// activityTickCmd schedules the next inactivity check.
func activityTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ActivityTickMsg{}
	})
}

// statusTickCmd schedules the next endpoint health check.
func statusTickCmd() tea.Cmd {
	return tea.Tick(statusCheckInterval, func(time.Time) tea.Msg {
		return StatusTickMsg{}
	})
}

// =============================================================================
// NETWORK COMMANDS
// =============================================================================

// queryCmd dispatches one request and reports the outcome tagged with the
// placeholder's ID, so the reply lands on the right bubble no matter how
// many turns are in flight.
func queryCmd(client *assist.Client, loadingID, text, database string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Query(ctx, text, database)
		if err != nil {
			return QueryFailedMsg{LoadingID: loadingID, Err: err}
		}
		return QueryResponseMsg{LoadingID: loadingID, Response: resp}
	}
}

// checkAssistCmd probes the assistant endpoint for the status bar.
func checkAssistCmd(client *assist.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return AssistStatusMsg{Online: client.CheckRunning(ctx) == nil}
	}
}

// =============================================================================
// EXPORT COMMAND
// =============================================================================

// exportCmd writes the identified result set to a CSV file.
func exportCmd(store *results.Store, resultID, dir string) tea.Cmd {
	return func() tea.Msg {
		set, err := store.Get(resultID)
		if err != nil {
			return ExportFailedMsg{Err: err}
		}
		path, err := results.ExportCSV(set, dir, "")
		if err != nil {
			return ExportFailedMsg{Err: err}
		}
		return ExportCompleteMsg{Path: path}
	}
}
