// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestParseArgsDefaultsToTUI(t *testing.T) {
	cmd, _ := ParseArgs(nil)
	if cmd != CmdTUI {
		t.Errorf("ParseArgs(nil) = %v, want CmdTUI", cmd)
	}
}

func TestParseArgsCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"tui explicit", []string{"tui"}, CmdTUI},
		{"ask", []string{"ask", "top customers"}, CmdAsk},
		{"chat", []string{"chat"}, CmdChat},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"config", []string{"config", "show"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"bare question becomes ask", []string{"how many orders today"}, CmdAsk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := ParseArgs(tt.argv)
			if cmd != tt.want {
				t.Errorf("ParseArgs(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseArgsGlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"--db", "sales", "--json", "-q", "ask", "totals"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Database != "sales" {
		t.Errorf("Database = %q, want sales", args.Database)
	}
	if !args.JSON {
		t.Error("JSON flag not parsed")
	}
	if !args.Quiet {
		t.Error("Quiet flag not parsed")
	}
	if args.Query != "totals" {
		t.Errorf("Query = %q, want totals", args.Query)
	}
}

func TestParseArgsAskFlags(t *testing.T) {
	_, args := ParseArgs([]string{"ask", "monthly", "totals", "--db", "sales", "--output", "out.csv"})
	if args.Query != "monthly totals" {
		t.Errorf("Query = %q, want joined positionals", args.Query)
	}
	if args.Database != "sales" {
		t.Errorf("Database = %q, want sales", args.Database)
	}
	if args.Output != "out.csv" {
		t.Errorf("Output = %q, want out.csv", args.Output)
	}
}

func TestParseArgsConfigSet(t *testing.T) {
	_, args := ParseArgs([]string{"config", "set", "default_database", "sales"})
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q, want set", args.Subcommand)
	}
	if args.ConfigKey != "default_database" {
		t.Errorf("ConfigKey = %q, want default_database", args.ConfigKey)
	}
	if args.ConfigVal != "sales" {
		t.Errorf("ConfigVal = %q, want sales", args.ConfigVal)
	}
}

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"show", "--lines", "50", "--since=2024-01-01", "--json", "--dry=false"})

	if p.Subcommand() != "show" {
		t.Errorf("Subcommand() = %q, want show", p.Subcommand())
	}
	if p.Flag("lines") != "50" {
		t.Errorf("Flag(lines) = %q, want 50", p.Flag("lines"))
	}
	if p.Flag("since") != "2024-01-01" {
		t.Errorf("Flag(since) = %q, want 2024-01-01", p.Flag("since"))
	}
	if !p.BoolFlag("json") {
		t.Error("BoolFlag(json) = false, want true")
	}
	if p.BoolFlag("dry") {
		t.Error("BoolFlag(dry) = true, want false for --dry=false")
	}
	if !p.HasFlag("lines") || p.HasFlag("missing") {
		t.Error("HasFlag misreported")
	}
	if p.FlagOrDefault("missing", "x") != "x" {
		t.Error("FlagOrDefault fell through")
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"true", "yes", "Y", "1", "on"} {
		got, err := ParseBoolString(s)
		if err != nil || !got {
			t.Errorf("ParseBoolString(%q) = %v, %v; want true", s, got, err)
		}
	}
	for _, s := range []string{"false", "no", "n", "0", "off"} {
		got, err := ParseBoolString(s)
		if err != nil || got {
			t.Errorf("ParseBoolString(%q) = %v, %v; want false", s, got, err)
		}
	}
	if _, err := ParseBoolString("maybe"); err == nil {
		t.Error("ParseBoolString(maybe) should error")
	}
}
