// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/querychat/internal/util"
)

// DefaultFilename returns the export filename for the given instant:
// query_results_<timestamp>.csv, with the characters RFC 3339 uses that are
// unsafe in filenames (colons, dots) replaced by dashes.
func DefaultFilename(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return "query_results_" + stamp + ".csv"
}

// ExportCSV writes the set as CSV into dir, using filename when given and
// DefaultFilename otherwise. Returns the written path. Empty sets return
// ErrNoRows without touching the filesystem.
func ExportCSV(set *Set, dir, filename string) (string, error) {
	data, err := EncodeCSV(set)
	if err != nil {
		return "", err
	}

	if filename == "" {
		filename = DefaultFilename(time.Now())
	}
	path := filepath.Join(dir, filename)

	if err := util.AtomicWriteFile(path, []byte(data), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
