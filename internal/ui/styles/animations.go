// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "time"

// =============================================================================
// THINKING ANIMATION
// =============================================================================

// ThinkingLabel prefixes the loading placeholder.
const ThinkingLabel = "Thinking"

// ThinkingFrames are the ellipsis states cycled while a response is pending.
// The cycle runs 0 through 3 dots.
var ThinkingFrames = []string{"", ".", "..", "..."}

// ThinkingInterval is the delay between ellipsis frames.
var ThinkingInterval = 500 * time.Millisecond

// ThinkingFrame returns the placeholder text for an animation tick.
func ThinkingFrame(tick int) string {
	return ThinkingLabel + ThinkingFrames[tick%len(ThinkingFrames)]
}

// =============================================================================
// SPINNER CONFIGURATION
// =============================================================================

// SpinnerConfig pairs spinner frames with their cycle rate.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the per-frame delay for the spinner.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(s.FPS)
}

// DotsSpinner is a simple three-dot spinner for sub-second work.
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    8,
}
