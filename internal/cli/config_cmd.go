// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config show/set/path handlers for querychat.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/querychat/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return configShow()
	case "set":
		return configSet(args.ConfigKey, args.ConfigVal)
	case "path":
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s (expected show, set, or path)", args.Subcommand)
	}
}

func configShow() error {
	cfg := config.Global()

	fmt.Println("Assistant:")
	fmt.Printf("  assistant_url     = %s\n", cfg.Assistant.URL)
	fmt.Printf("  timeout_secs      = %d\n", cfg.Assistant.TimeoutSecs)
	fmt.Println("Databases:")
	fmt.Printf("  available         = %s\n", strings.Join(cfg.Databases.Available, ", "))
	fmt.Printf("  default_database  = %s\n", cfg.Databases.Default)
	fmt.Println("Activity:")
	fmt.Printf("  threshold_secs    = %d\n", cfg.Activity.ThresholdSecs)
	fmt.Printf("  poll_secs         = %d\n", cfg.Activity.PollSecs)
	fmt.Println("Export:")
	fmt.Printf("  export_dir        = %s\n", cfg.Export.OutputDir)
	fmt.Printf("  store_capacity    = %d\n", cfg.Export.StoreCapacity)
	fmt.Println("UI:")
	fmt.Printf("  theme             = %s\n", cfg.UI.Theme)
	fmt.Printf("  show_timestamps   = %t\n", cfg.UI.ShowTimestamps)

	return nil
}

func configSet(key, value string) error {
	if key == "" {
		return fmt.Errorf("usage: querychat config set KEY VALUE")
	}
	if value == "" {
		return fmt.Errorf("no value given for %s", key)
	}

	cfg := config.Global()

	switch strings.ToLower(key) {
	case "assistant_url", "url":
		cfg.Assistant.URL = value
	case "timeout_secs", "timeout":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_secs must be an integer: %w", err)
		}
		cfg.Assistant.TimeoutSecs = secs
	case "default_database", "database":
		cfg.Databases.Default = value
	case "theme":
		cfg.UI.Theme = value
	case "export_dir":
		cfg.Export.OutputDir = value
	case "show_timestamps":
		b, err := ParseBoolString(value)
		if err != nil {
			return err
		}
		cfg.UI.ShowTimestamps = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	cfg.Validate()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	config.SetGlobal(cfg)

	fmt.Printf("%s = %s\n", key, value)
	return nil
}
