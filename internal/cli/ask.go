// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question handler for querychat.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/config"
	"github.com/jeranaias/querychat/internal/interpret"
	"github.com/jeranaias/querychat/internal/results"
	"github.com/jeranaias/querychat/internal/ui/styles"
	"github.com/jeranaias/querychat/internal/util"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the glamour renderer for terminal markdown output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to plain text if renderer initialization fails.
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown for terminal display, returning the
// original content when rendering fails.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayAnswer renders markdown only when stdout is a terminal so piped
// output stays clean.
func displayAnswer(content string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(content))
	} else {
		fmt.Println(content)
	}
}

// =============================================================================
// STYLES
// =============================================================================

var (
	askErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	askNoteStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)

// =============================================================================
// ASK HANDLER
// =============================================================================

// HandleAsk handles the "ask" command: one question, one answer, exit.
func HandleAsk(args Args) error {
	cfg := config.Global()

	question := args.Query

	// Read from stdin when no question was given and input is piped.
	if question == "" && !IsTTY() {
		data, err := readStdin()
		if err == nil {
			question = strings.TrimSpace(data)
		}
	}
	if question == "" {
		return fmt.Errorf("no question given; usage: querychat ask \"question\"")
	}

	database := args.Database
	if database == "" {
		database = cfg.Databases.Default
	}
	if database == "" {
		return fmt.Errorf("no database selected; use --db NAME or set default_database")
	}

	client := assist.NewClientWithConfig(&assist.ClientConfig{
		BaseURL: cfg.Assistant.URL,
		Timeout: cfg.Timeout(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	resp, err := client.Query(ctx, question, database)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	// Raw response for scripting.
	if args.JSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	store, err := results.NewStore(1)
	if err != nil {
		return fmt.Errorf("result store: %w", err)
	}
	defer store.Close()

	content, resultID, err := interpret.New(store).Interpret(resp)
	if err != nil && args.Verbose {
		fmt.Fprintln(os.Stderr, askErrorStyle.Render("result registration failed: "+err.Error()))
	}

	displayAnswer(content)

	// Optional CSV export of the tabular result.
	if args.Output != "" {
		if resultID == "" {
			fmt.Fprintln(os.Stderr, askNoteStyle.Render("no tabular result to export"))
			return nil
		}
		set, err := store.Get(resultID)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		data, err := results.EncodeCSV(set)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := util.AtomicWriteFile(args.Output, []byte(data), 0o644); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if !args.Quiet {
			fmt.Fprintln(os.Stderr, askNoteStyle.Render("results written to "+args.Output))
		}
	}

	return nil
}

func readStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("stdin is a terminal")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
