// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/querychat/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete querychat configuration.
type Config struct {
	Version string `toml:"version"`

	// Assistant endpoint configuration
	Assistant AssistantConfig `toml:"assistant"`

	// Database selector configuration
	Databases DatabaseConfig `toml:"databases"`

	// Activity monitor configuration
	Activity ActivityConfig `toml:"activity"`

	// Export configuration
	Export ExportConfig `toml:"export"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// AssistantConfig contains query-assistant endpoint configuration.
type AssistantConfig struct {
	// URL is the assistant base URL
	URL string `toml:"url"`
	// TimeoutSecs is the per-query timeout in seconds
	TimeoutSecs int `toml:"timeout_secs"`
}

// DatabaseConfig contains the selectable target databases.
type DatabaseConfig struct {
	// Available lists the databases the selector offers
	Available []string `toml:"available"`
	// Default is preselected at startup; empty means none selected
	Default string `toml:"default"`
}

// ActivityConfig contains inactivity tracking configuration.
type ActivityConfig struct {
	// ThresholdSecs is the idle duration before the inactivity notice.
	// Valid range is 60-3600 seconds; values outside are clamped.
	ThresholdSecs int `toml:"threshold_secs"`
	// PollSecs is how often idle time is checked.
	// Valid range is 5-300 seconds; values outside are clamped.
	PollSecs int `toml:"poll_secs"`
}

// ExportConfig contains CSV export configuration.
type ExportConfig struct {
	// OutputDir is where exported CSV files are written
	OutputDir string `toml:"output_dir"`
	// StoreCapacity bounds how many result sets are kept for export
	StoreCapacity int `toml:"store_capacity"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is "dark" or "light"
	Theme string `toml:"theme"`
	// ShowTimestamps shows per-message H:MM labels
	ShowTimestamps bool `toml:"show_timestamps"`
	// SubmitPerMinute rate-limits submissions; 0 disables the limiter
	SubmitPerMinute int `toml:"submit_per_minute"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Assistant: AssistantConfig{
			URL:         "http://127.0.0.1:8000",
			TimeoutSecs: 60,
		},

		Databases: DatabaseConfig{
			Available: []string{},
			Default:   "",
		},

		Activity: ActivityConfig{
			ThresholdSecs: 300,
			PollSecs:      30,
		},

		Export: ExportConfig{
			OutputDir:     "./exports",
			StoreCapacity: 32,
		},

		UI: UIConfig{
			Theme:           "dark",
			ShowTimestamps:  true,
			SubmitPerMinute: 30,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the querychat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".querychat"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults.
// Environment overrides are applied last, then validation clamps ranges.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	cfg.Validate()
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	return nil
}

// Save writes the configuration to the default config path atomically.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, []byte(buf.String()), 0600)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies QUERYCHAT_* environment variables on top of the
// loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("QUERYCHAT_URL"); u != "" {
		c.Assistant.URL = u
	}
	if secs := os.Getenv("QUERYCHAT_TIMEOUT_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil {
			c.Assistant.TimeoutSecs = n
		}
	}
	if db := os.Getenv("QUERYCHAT_DATABASE"); db != "" {
		c.Databases.Default = db
	}
	if dbs := os.Getenv("QUERYCHAT_DATABASES"); dbs != "" {
		c.Databases.Available = splitList(dbs)
	}
	if theme := os.Getenv("QUERYCHAT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if dir := os.Getenv("QUERYCHAT_EXPORT_DIR"); dir != "" {
		c.Export.OutputDir = dir
	}
	if secs := os.Getenv("QUERYCHAT_IDLE_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil {
			c.Activity.ThresholdSecs = n
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate normalizes the configuration, clamping out-of-range values and
// falling back to defaults for unusable ones. It never fails the load: a
// bad value yields a working config, not a dead client.
func (c *Config) Validate() {
	if _, err := url.ParseRequestURI(c.Assistant.URL); err != nil {
		c.Assistant.URL = Default().Assistant.URL
	}
	if c.Assistant.TimeoutSecs <= 0 {
		c.Assistant.TimeoutSecs = Default().Assistant.TimeoutSecs
	}

	c.Activity.ThresholdSecs = clamp(c.Activity.ThresholdSecs, 60, 3600, 300)
	c.Activity.PollSecs = clamp(c.Activity.PollSecs, 5, 300, 30)

	if c.Export.OutputDir == "" {
		c.Export.OutputDir = Default().Export.OutputDir
	}
	if c.Export.StoreCapacity <= 0 {
		c.Export.StoreCapacity = Default().Export.StoreCapacity
	}

	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		c.UI.Theme = "dark"
	}
	if c.UI.SubmitPerMinute < 0 {
		c.UI.SubmitPerMinute = 0
	}

	// A default database outside the available list means "none selected".
	if c.Databases.Default != "" && len(c.Databases.Available) > 0 {
		found := false
		for _, db := range c.Databases.Available {
			if db == c.Databases.Default {
				found = true
				break
			}
		}
		if !found {
			c.Databases.Default = ""
		}
	}
}

// clamp bounds v to [min, max], substituting def for zero.
func clamp(v, min, max, def int) int {
	if v == 0 {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// =============================================================================
// DURATION HELPERS
// =============================================================================

// Timeout returns the assistant request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Assistant.TimeoutSecs) * time.Second
}

// IdleThreshold returns the inactivity threshold.
func (c *Config) IdleThreshold() time.Duration {
	return time.Duration(c.Activity.ThresholdSecs) * time.Second
}

// PollInterval returns the activity polling interval.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Activity.PollSecs) * time.Second
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration (used by the watcher and
// by tests).
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}
