// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// InlineRowLimit is the maximum row count rendered as an inline table.
// Larger sets render as a summary line only, to bound transcript size.
const InlineRowLimit = 10

// ExportHint is the affordance appended to every tabular result. The export
// action resolves the actual data through the message's result ID.
const ExportHint = "Press ctrl+e to export as CSV."

// NoResults is rendered for an empty or absent result set.
const NoResults = "No results found"

// RenderTable renders a result set as transcript text. Empty sets yield the
// NoResults literal. Sets above InlineRowLimit yield only a row-count summary
// plus the export hint; smaller sets also get the full aligned table.
func RenderTable(s *Set) string {
	if s.IsEmpty() {
		return NoResults
	}

	var b strings.Builder
	if len(s.Rows) > InlineRowLimit {
		fmt.Fprintf(&b, "Query returned %d rows. The full result set is too large to display.\n", len(s.Rows))
		b.WriteString(ExportHint)
		return b.String()
	}

	writeAligned(&b, s)
	b.WriteString("\n")
	b.WriteString(ExportHint)
	return b.String()
}

// writeAligned writes a column-aligned text table using display width, so
// wide characters do not break the layout.
func writeAligned(b *strings.Builder, s *Set) {
	widths := make([]int, len(s.Columns))
	for i, col := range s.Columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for i := range s.Rows {
		for j, col := range s.Columns {
			if w := runewidth.StringWidth(s.Cell(i, col)); w > widths[j] {
				widths[j] = w
			}
		}
	}

	writeRow := func(cells func(int) string) {
		var line strings.Builder
		for j := range s.Columns {
			if j > 0 {
				line.WriteString("  ")
			}
			line.WriteString(runewidth.FillRight(cells(j), widths[j]))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	writeRow(func(j int) string { return s.Columns[j] })
	writeRow(func(j int) string { return strings.Repeat("-", widths[j]) })
	for i := range s.Rows {
		i := i
		writeRow(func(j int) string { return s.Cell(i, s.Columns[j]) })
	}
}
