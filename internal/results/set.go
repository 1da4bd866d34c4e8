// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// =============================================================================
// ROW AND SET TYPES
// =============================================================================

// Row maps column names to display values.
type Row map[string]string

// Set is an ordered result set. Columns records the header order taken from
// the first row of the wire payload; a plain map would lose it.
type Set struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of data rows.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// IsEmpty returns true when the set has no rows.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Cell returns the value at the given row for the named column. Missing
// cells render as empty string.
func (s *Set) Cell(row int, column string) string {
	if s == nil || row < 0 || row >= len(s.Rows) {
		return ""
	}
	return s.Rows[row][column]
}

// =============================================================================
// WIRE DECODING
// =============================================================================

// UnmarshalJSON decodes a JSON array of row objects. The header order is the
// first row's key order as it appears in the document, which encoding/json's
// map decoding would not preserve, so the first row is walked token by token.
func (s *Set) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("result data: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("result data: expected array, got %v", tok)
	}

	s.Columns = nil
	s.Rows = nil

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("result data: %w", err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return fmt.Errorf("result data: expected row object, got %v", tok)
		}

		first := len(s.Rows) == 0
		row := make(Row)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("result data: %w", err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return fmt.Errorf("result data: expected column name, got %v", keyTok)
			}

			var value any
			if err := dec.Decode(&value); err != nil {
				return fmt.Errorf("result data: column %q: %w", key, err)
			}
			row[key] = displayValue(value)

			if first {
				s.Columns = append(s.Columns, key)
			}
		}
		if _, err := dec.Token(); err != nil {
			return fmt.Errorf("result data: %w", err)
		}
		s.Rows = append(s.Rows, row)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("result data: %w", err)
	}
	return nil
}

// displayValue formats a decoded JSON scalar for display. Null renders as
// empty string; composite values fall back to their JSON text.
func displayValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}
