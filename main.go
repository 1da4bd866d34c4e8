// querychat - natural language database queries in your terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/cli"
	"github.com/jeranaias/querychat/internal/config"
	"github.com/jeranaias/querychat/internal/results"
	"github.com/jeranaias/querychat/internal/ui/chat"
	"github.com/jeranaias/querychat/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global program reference for async config reload delivery
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// A .env in the working directory can carry QUERYCHAT_* overrides.
	// Missing file is fine.
	_ = godotenv.Load()

	if err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	setupLogging()

	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		exitOnError(cli.HandleAsk(args))
	case cli.CmdChat:
		exitOnError(cli.HandleChat(args))
	case cli.CmdStatus:
		exitOnError(cli.HandleStatus(args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(args))
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		runTUI(args)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file (with environment overrides applied)
// and installs the result as the process-wide config.
func loadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	config.SetGlobal(cfg)
	return nil
}

// setupLogging routes the standard logger away from the terminal. The TUI
// owns the screen, so diagnostics go to a file only when debugging.
func setupLogging() {
	if os.Getenv("QUERYCHAT_DEBUG") != "" {
		if f, err := tea.LogToFile("querychat.log", "debug"); err == nil {
			log.SetOutput(f)
			return
		}
	}
	log.SetOutput(io.Discard)
}

// =============================================================================
// TUI
// =============================================================================

// runTUI starts the full-screen chat interface.
func runTUI(args cli.Args) {
	// A full-screen TUI on a pipe would just emit escape soup.
	if err := cli.RequiresTTY("run the TUI"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (try 'querychat ask' or 'querychat chat')\n", err)
		os.Exit(1)
	}

	cfg := config.Global()

	theme := styles.NewTheme()

	client := assist.NewClientWithConfig(&assist.ClientConfig{
		BaseURL: cfg.Assistant.URL,
		Timeout: cfg.Timeout(),
	})

	store, err := results.NewStore(cfg.Export.StoreCapacity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// CLI args override config.
	if args.Database != "" {
		cfg.Databases.Default = args.Database
	}

	m := chat.New(theme, cfg, client, store)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	// Hot-reload the config file while the TUI runs.
	if watcher := startConfigWatcher(); watcher != nil {
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running querychat: %v\n", err)
		os.Exit(1)
	}
}

// startConfigWatcher watches the config file and forwards reloads to the
// running program. Returns nil when the config path is unavailable.
func startConfigWatcher() *config.Watcher {
	path, err := config.ConfigPath()
	if err != nil {
		return nil
	}

	watcher, err := config.NewWatcher(path, func(cfg *config.Config) {
		programMu.Lock()
		p := programRef
		programMu.Unlock()
		if p != nil {
			p.Send(chat.ConfigReloadedMsg{Config: cfg})
		}
	})
	if err != nil {
		return nil
	}
	if err := watcher.Watch(); err != nil {
		watcher.Close()
		return nil
	}
	return watcher
}
