// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package interpret

import (
	"strings"

	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/results"
)

// =============================================================================
// INTERPRETER
// =============================================================================

// Interpreter turns assistant replies into bot message bodies. Tabular data
// is registered in the result store so a later export action can retrieve
// the exact rows by ID, decoupled from the rendered text.
type Interpreter struct {
	store *results.Store
}

// New creates an interpreter backed by the given result store.
func New(store *results.Store) *Interpreter {
	return &Interpreter{store: store}
}

// Interpret maps a reply to transcript text. The second return value is the
// ID of the registered result set, or "" when the reply carried no table.
//
// A non-nil error means the result store rejected the registration; the
// returned text is still valid and should be shown, the failure only affects
// a later export.
func (in *Interpreter) Interpret(resp *assist.Response) (string, string, error) {
	if resp == nil {
		return "", "", nil
	}

	// Legacy bare-text replies render verbatim.
	if resp.IsLegacy() {
		return resp.Raw, "", nil
	}

	// A server-reported error suppresses every other section.
	if resp.Error != "" {
		var b strings.Builder
		b.WriteString("Error: ")
		b.WriteString(resp.Error)
		if resp.Solution != "" {
			b.WriteString("\nSuggested solution: ")
			b.WriteString(resp.Solution)
		}
		return b.String(), "", nil
	}

	var sections []string
	if resp.Summary != "" {
		sections = append(sections, resp.Summary)
	}
	if resp.Query != "" {
		sections = append(sections, "```sql\n"+strings.TrimRight(resp.Query, "\n")+"\n```")
	}

	var resultID string
	var storeErr error
	if resp.Result != nil && resp.Result.Success {
		switch {
		case resp.Result.Data != nil:
			// Register regardless of row count: the export affordance
			// must resolve even for sets too large to show inline.
			resultID, storeErr = in.store.Put(resp.Result.Data)
			sections = append(sections, results.RenderTable(resp.Result.Data))
		case resp.Result.Message != "":
			sections = append(sections, resp.Result.Message)
		}
	}

	return strings.Join(sections, "\n\n"), resultID, storeErr
}
