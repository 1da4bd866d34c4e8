// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/jeranaias/querychat/internal/activity"
	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/config"
	"github.com/jeranaias/querychat/internal/interpret"
	"github.com/jeranaias/querychat/internal/model"
	"github.com/jeranaias/querychat/internal/results"
	"github.com/jeranaias/querychat/internal/ui/components"
	"github.com/jeranaias/querychat/internal/ui/styles"
)

// =============================================================================
// TRANSCRIPT LITERALS
// =============================================================================

const (
	// selectDatabaseWarning is appended when the user submits without a
	// selected database. No request is sent.
	selectDatabaseWarning = "Please select a database first."

	// transportApology is shown for network-level failures. The underlying
	// error is logged, never shown.
	transportApology = "Sorry, there was an error processing your request."

	// rateLimitWarning is shown when submissions outpace the limiter.
	rateLimitWarning = "You're sending requests too quickly. Give me a moment."
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation
	transcript *model.Transcript

	// In-flight requests, keyed by the loading placeholder's ID.
	pending map[string]time.Time

	// Activity tracking
	monitor      *activity.Monitor
	pollInterval time.Duration

	// Assistant client and response interpretation
	client  *assist.Client
	timeout time.Duration
	interp  *interpret.Interpreter

	// Result store and export
	store     *results.Store
	exportDir string

	// Submission rate limiting (nil when disabled)
	limiter *rate.Limiter

	// Database selection
	databases []string
	selected  string

	// Endpoint reachability
	online bool

	// UI Components
	viewport  viewport.Model
	input     textinput.Model
	header    *components.Header
	statusBar *components.StatusBar
	dots      components.Dots

	// Key bindings
	keyMap KeyMap

	showTimestamps bool
}

// New creates a new chat model.
func New(theme *styles.Theme, cfg *config.Config, client *assist.Client, store *results.Store) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about your data..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	var limiter *rate.Limiter
	if cfg.UI.SubmitPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.UI.SubmitPerMinute)/60.0), 3)
	}

	// The header pill and status bar show the default selection from the
	// first frame; they must always agree with what a submission targets.
	header := components.NewHeader(theme, cfg.Databases.Available)
	header.SetSelected(cfg.Databases.Default)
	statusBar := components.NewStatusBar(theme)
	statusBar.SetDatabase(cfg.Databases.Default)

	return Model{
		theme:          theme,
		transcript:     model.NewTranscript(),
		pending:        make(map[string]time.Time),
		monitor:        activity.NewMonitor(cfg.IdleThreshold(), time.Now()),
		pollInterval:   cfg.PollInterval(),
		client:         client,
		timeout:        cfg.Timeout(),
		interp:         interpret.New(store),
		store:          store,
		exportDir:      cfg.Export.OutputDir,
		limiter:        limiter,
		databases:      cfg.Databases.Available,
		selected:       cfg.Databases.Default,
		viewport:       vp,
		input:          ti,
		header:         header,
		statusBar:      statusBar,
		keyMap:         DefaultKeyMap(),
		showTimestamps: cfg.UI.ShowTimestamps,
	}
}

// Init starts the input cursor, the activity poll, and the endpoint check.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		activityTickCmd(m.pollInterval),
		checkAssistCmd(m.client),
		statusTickCmd(),
	)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Transcript returns the conversation transcript.
func (m *Model) Transcript() *model.Transcript {
	return m.transcript
}

// SelectedDatabase returns the currently selected database, "" for none.
func (m *Model) SelectedDatabase() string {
	return m.selected
}

// PendingCount returns the number of requests in flight.
func (m *Model) PendingCount() int {
	return len(m.pending)
}

// Online reports whether the assistant endpoint was last seen reachable.
func (m *Model) Online() bool {
	return m.online
}

// cycleDatabase advances the database selection to the next available entry.
func (m *Model) cycleDatabase() {
	if len(m.databases) == 0 {
		return
	}
	if m.selected == "" {
		m.selected = m.databases[0]
		return
	}
	for i, db := range m.databases {
		if db == m.selected {
			m.selected = m.databases[(i+1)%len(m.databases)]
			return
		}
	}
	m.selected = m.databases[0]
}

// touchActivity records a qualifying interaction and retracts the
// inactivity notice when one is showing.
func (m *Model) touchActivity() {
	if m.monitor.Touch(time.Now()) {
		if notice := m.transcript.InactivityNotice(); notice != nil {
			m.transcript.Remove(notice.ID)
		}
		// Leaving idle restores the real status.
		if len(m.pending) > 0 {
			m.statusBar.SetStatus(components.StatusThinking)
		} else {
			m.statusBar.SetStatus(components.StatusReady)
		}
		m.refresh()
	}
}
