// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Endpoint and configuration status for querychat.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/config"
	"github.com/jeranaias/querychat/internal/ui/styles"
)

var (
	statusOKStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	statusBadStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	statusLabelStyle = lipgloss.NewStyle().
				Foreground(styles.TextSecondary)
)

// statusReport is the JSON shape of `querychat status --json`.
type statusReport struct {
	Version    string   `json:"version"`
	Endpoint   string   `json:"endpoint"`
	Online     bool     `json:"online"`
	Databases  []string `json:"databases"`
	Default    string   `json:"default_database"`
	ConfigPath string   `json:"config_path"`
}

// HandleStatus handles the "status" command.
func HandleStatus(args Args) error {
	cfg := config.Global()

	client := assist.NewClientWithConfig(&assist.ClientConfig{
		BaseURL: cfg.Assistant.URL,
		Timeout: cfg.Timeout(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	online := client.CheckRunning(ctx) == nil

	configPath, _ := config.ConfigPath()

	if args.JSON {
		report := statusReport{
			Version:    Version,
			Endpoint:   cfg.Assistant.URL,
			Online:     online,
			Databases:  cfg.Databases.Available,
			Default:    cfg.Databases.Default,
			ConfigPath: configPath,
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println("querychat " + Version)
	fmt.Println()

	fmt.Print(statusLabelStyle.Render("Endpoint:  "))
	fmt.Println(cfg.Assistant.URL)

	fmt.Print(statusLabelStyle.Render("Status:    "))
	if online {
		fmt.Println(statusOKStyle.Render("online"))
	} else {
		fmt.Println(statusBadStyle.Render("offline"))
	}

	fmt.Print(statusLabelStyle.Render("Databases: "))
	if len(cfg.Databases.Available) == 0 {
		fmt.Println("(none configured)")
	} else {
		for i, db := range cfg.Databases.Available {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(db)
			if db == cfg.Databases.Default {
				fmt.Print(" (default)")
			}
		}
		fmt.Println()
	}

	fmt.Print(statusLabelStyle.Render("Config:    "))
	fmt.Println(configPath)

	return nil
}
