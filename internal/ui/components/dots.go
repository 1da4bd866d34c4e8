// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/jeranaias/querychat/internal/ui/styles"

// Dots is the "Thinking..." placeholder animation. It holds only a frame
// counter; the chat model advances it on its own tick so all pending
// placeholders animate in step.
type Dots struct {
	tick int
}

// Advance moves to the next ellipsis frame.
func (d *Dots) Advance() {
	d.tick++
}

// Reset restarts the cycle at zero dots.
func (d *Dots) Reset() {
	d.tick = 0
}

// View returns the current placeholder text.
func (d *Dots) View() string {
	return styles.ThinkingFrame(d.tick)
}
