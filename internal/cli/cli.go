// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing and usage text for querychat.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet    bool
	Verbose  bool
	JSON     bool // Output in JSON format
	Database string

	// Command-specific
	Query      string
	Output     string // CSV output path for ask
	ConfigKey  string
	ConfigVal  string
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `querychat - natural language queries for your databases

Querychat turns plain-English questions into SQL against a configured
assistant endpoint and renders the results in your terminal.

Usage:
  querychat                    Start TUI (default)
  querychat ask "question"     Ask a single question
  querychat chat               Interactive chat (plain REPL)
  querychat status, s          Show endpoint and database status
  querychat config [show|set|path]  Configuration
  querychat version            Show version

Ask Command:
  querychat ask "question"     Print the answer and exit
    --db NAME                  Query a specific database
    --json                     Print the raw assistant response as JSON
    --output FILE              Write tabular results to FILE as CSV

Chat Command:
  querychat chat               Line-based chat with input history
    --db NAME                  Start with a database selected
  In-session commands: /db NAME, /databases, /export, /help, /quit

Config Commands:
  querychat config show        Show current configuration
  querychat config set KEY VALUE  Update a setting
  querychat config path        Print the config file location

  Settable keys: assistant_url, timeout_secs, default_database,
                 theme, export_dir, show_timestamps

Global Flags:
  --db NAME       Select a database
  -q, --quiet     Minimal output
  -v, --verbose   Debug output
  --json          Output in JSON format

Environment:
  QUERYCHAT_URL, QUERYCHAT_DATABASE, QUERYCHAT_DATABASES,
  QUERYCHAT_TIMEOUT_SECS, QUERYCHAT_THEME, QUERYCHAT_EXPORT_DIR,
  QUERYCHAT_IDLE_SECS

Examples:
  querychat                                 Start the TUI
  querychat ask "top ten customers by revenue" --db sales
  querychat ask "monthly totals" --db sales --output totals.csv
  querychat chat --db marketing
  querychat config set default_database sales
  querychat status --json

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("querychat version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given arguments and returns the command and args.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	// No remaining args: default to the TUI.
	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "ask":
		parseAskArgs(&parsed, remaining)
		return CmdAsk, parsed

	case "chat":
		parseChatArgs(&parsed, remaining)
		return CmdChat, parsed

	case "status", "s":
		return CmdStatus, parsed

	case "config":
		parseConfigArgs(&parsed, remaining)
		return CmdConfig, parsed

	case "version", "--version", "-V":
		return CmdVersion, parsed

	case "help", "--help", "-h":
		return CmdHelp, parsed

	default:
		// Unknown command: treat the whole line as an ask query so
		// `querychat "show me sales"` works.
		parseAskArgs(&parsed, append([]string{cmd}, remaining...))
		return CmdAsk, parsed
	}
}

// parseGlobalFlags extracts global flags, returning the remaining args.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var args Args
	var remaining []string

	i := 0
	for i < len(argv) {
		arg := argv[i]
		switch arg {
		case "-q", "--quiet":
			args.Quiet = true
		case "-v", "--verbose":
			args.Verbose = true
		case "--json":
			args.JSON = true
		case "--db", "--database":
			if i+1 < len(argv) {
				args.Database = argv[i+1]
				i++
			}
		default:
			if strings.HasPrefix(arg, "--db=") {
				args.Database = strings.TrimPrefix(arg, "--db=")
			} else if strings.HasPrefix(arg, "--database=") {
				args.Database = strings.TrimPrefix(arg, "--database=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, args
}

func parseAskArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Query = strings.Join(parser.PositionalFrom(0), " ")
	args.Output = parser.Flag("output")
	if db := parser.Flag("db"); db != "" {
		args.Database = db
	}
	if parser.BoolFlag("json") {
		args.JSON = true
	}
}

func parseChatArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	if db := parser.Flag("db"); db != "" {
		args.Database = db
	}
}

func parseConfigArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Subcommand = parser.Subcommand()
	args.ConfigKey = parser.Positional(1)
	args.ConfigVal = strings.Join(parser.PositionalFrom(2), " ")
}
