// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strconv"
	"time"
)

// FormatClock formats a wall-clock time as H:MM for message timestamps.
// The hour carries no leading zero; the minute is always zero-padded.
func FormatClock(t time.Time) string {
	minute := strconv.Itoa(t.Minute())
	if len(minute) < 2 {
		minute = "0" + minute
	}
	return strconv.Itoa(t.Hour()) + ":" + minute
}
