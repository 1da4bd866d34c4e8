// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Plain-terminal interactive chat for querychat.
//
// This is the REPL alternative to the TUI for environments where a
// full-screen interface is unwanted (ssh sessions, screen readers,
// scripted drivers). It shares the assistant client and response
// interpretation with the TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/config"
	"github.com/jeranaias/querychat/internal/interpret"
	"github.com/jeranaias/querychat/internal/results"
	"github.com/jeranaias/querychat/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	chatPromptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	chatNoticeStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	chatErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with history persisted under the config dir.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt. Non-empty input
// is added to history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION
// =============================================================================

// chatSession holds the state for one REPL session.
type chatSession struct {
	cfg      *config.Config
	client   *assist.Client
	store    *results.Store
	interp   *interpret.Interpreter
	input    *ChatCLI
	database string
	// lastResultID is the newest tabular result, for /export.
	lastResultID string
	queries      int
	started      time.Time
}

// HandleChat runs the interactive chat REPL.
func HandleChat(args Args) error {
	if err := RequiresTTY("chat"); err != nil {
		return err
	}

	cfg := config.Global()

	store, err := results.NewStore(cfg.Export.StoreCapacity)
	if err != nil {
		return fmt.Errorf("result store: %w", err)
	}
	defer store.Close()

	client := assist.NewClientWithConfig(&assist.ClientConfig{
		BaseURL: cfg.Assistant.URL,
		Timeout: cfg.Timeout(),
	})

	session := &chatSession{
		cfg:      cfg,
		client:   client,
		store:    store,
		interp:   interpret.New(store),
		input:    NewChatCLI(),
		database: args.Database,
		started:  time.Now(),
	}
	defer session.input.Close()

	if session.database == "" {
		session.database = cfg.Databases.Default
	}

	if !args.Quiet {
		session.printWelcome()
	}

	return session.loop()
}

func (s *chatSession) printWelcome() {
	fmt.Println(chatPromptStyle.Render("querychat " + Version))
	if s.database != "" {
		fmt.Println("Database: " + s.database)
	} else {
		fmt.Println(chatNoticeStyle.Render("No database selected. Use /db NAME to pick one."))
	}
	fmt.Println("Type /help for commands, /quit to exit.")
	fmt.Println()
}

func (s *chatSession) loop() error {
	for {
		input, err := s.input.ReadInput("> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			// io.EOF on ctrl+d
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if quit := s.handleCommand(input); quit {
				return nil
			}
			continue
		}

		s.ask(input)
	}
}

// handleCommand dispatches slash commands, returning true to quit.
func (s *chatSession) handleCommand(input string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case "/quit", "/exit", "/q":
		s.printSummary()
		return true

	case "/help", "/?":
		fmt.Println("Commands:")
		fmt.Println("  /db NAME     Select a database")
		fmt.Println("  /databases   List configured databases")
		fmt.Println("  /export [id] Export the last (or a specific) result set as CSV")
		fmt.Println("  /quit        Exit")

	case "/db":
		if len(fields) < 2 {
			fmt.Println(chatNoticeStyle.Render("usage: /db NAME"))
			return false
		}
		s.database = fields[1]
		fmt.Println("Database: " + s.database)

	case "/databases":
		if len(s.cfg.Databases.Available) == 0 {
			fmt.Println(chatNoticeStyle.Render("no databases configured"))
			return false
		}
		for _, db := range s.cfg.Databases.Available {
			marker := "  "
			if db == s.database {
				marker = "* "
			}
			fmt.Println(marker + db)
		}

	case "/export":
		// Optional argument: a specific result ID instead of the latest.
		id := s.lastResultID
		if len(fields) > 1 {
			id = fields[1]
		}
		s.export(id)

	default:
		fmt.Println(chatNoticeStyle.Render("unknown command: " + fields[0]))
	}
	return false
}

func (s *chatSession) ask(question string) {
	if s.database == "" {
		fmt.Println(chatNoticeStyle.Render("Please select a database first (/db NAME)."))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout())
	defer cancel()

	resp, err := s.client.Query(ctx, question, s.database)
	if err != nil {
		fmt.Println(chatErrorStyle.Render("Sorry, there was an error processing your request."))
		return
	}

	content, resultID, err := s.interp.Interpret(resp)
	if err != nil {
		fmt.Println(chatErrorStyle.Render("result registration failed: " + err.Error()))
	}
	if resultID != "" {
		s.lastResultID = resultID
	}

	s.queries++
	fmt.Println(content)
	fmt.Println()
}

func (s *chatSession) export(id string) {
	if id == "" {
		fmt.Println(chatNoticeStyle.Render("no results to export yet"))
		return
	}
	set, err := s.store.Get(id)
	if err != nil {
		fmt.Println(chatErrorStyle.Render("export failed: " + err.Error()))
		return
	}
	path, err := results.ExportCSV(set, s.cfg.Export.OutputDir, results.DefaultFilename(time.Now()))
	if err != nil {
		fmt.Println(chatErrorStyle.Render("export failed: " + err.Error()))
		return
	}
	fmt.Println("Exported to: " + path)
}

func (s *chatSession) printSummary() {
	elapsed := time.Since(s.started).Round(time.Second)
	fmt.Printf("Session: %d queries in %s\n", s.queries, elapsed)
}
