// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, path, url string) {
	t.Helper()
	content := "version = \"1\"\n\n[assistant]\nurl = \"" + url + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfigFile(t, path, "http://127.0.0.1:8000")

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	// Short debounce keeps the test fast.
	w.debounce = 50 * time.Millisecond
	require.NoError(t, w.Watch())
	defer w.Close()

	writeConfigFile(t, path, "http://127.0.0.1:9999")

	select {
	case cfg := <-reloaded:
		require.Equal(t, "http://127.0.0.1:9999", cfg.Assistant.URL)
	case <-time.After(5 * time.Second):
		t.Fatal("config reload not observed")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfigFile(t, path, "http://127.0.0.1:8000")

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	w.debounce = 50 * time.Millisecond
	require.NoError(t, w.Watch())
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0600))

	select {
	case <-reloaded:
		t.Fatal("reload fired for an unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherCloseStops(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfigFile(t, path, "http://127.0.0.1:8000")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	require.NoError(t, w.Close())
}
