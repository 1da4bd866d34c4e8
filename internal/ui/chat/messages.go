// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines all Bubble Tea message types used by the chat view.
// Messages are organized into the following categories:
//   - Query lifecycle: response arrival and transport failure
//   - Timers: dot animation ticks and activity polling ticks
//   - Endpoint: reachability updates
//   - Export: CSV export completion and failure
//   - Config: hot-reload notifications

package chat

import (
	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/config"
)

// =============================================================================
// QUERY LIFECYCLE MESSAGES
// =============================================================================

// QueryResponseMsg delivers the assistant's reply for a submitted request.
// LoadingID identifies the placeholder the reply belongs to.
type QueryResponseMsg struct {
	LoadingID string
	Response  *assist.Response
}

// QueryFailedMsg signals a transport-level failure for a submitted request.
type QueryFailedMsg struct {
	LoadingID string
	Err       error
}

// =============================================================================
// TIMER MESSAGES
// =============================================================================

// DotsTickMsg advances the "Thinking..." ellipsis animation.
type DotsTickMsg struct{}

// ActivityTickMsg triggers an inactivity check.
type ActivityTickMsg struct{}

// =============================================================================
// ENDPOINT MESSAGES
// =============================================================================

// AssistStatusMsg reports whether the assistant endpoint is reachable.
type AssistStatusMsg struct {
	Online bool
}

// StatusTickMsg triggers a periodic endpoint health check.
type StatusTickMsg struct{}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportCompleteMsg signals a finished CSV export.
type ExportCompleteMsg struct {
	Path string
}

// ExportFailedMsg signals a failed CSV export.
type ExportFailedMsg struct {
	Err error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a hot-reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}
