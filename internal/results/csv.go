// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ErrNoRows is returned when asked to serialize or export an empty result set.
var ErrNoRows = errors.New("no rows to export")

// EncodeCSV serializes the set as RFC 4180 CSV: header row first, cells in
// column order, missing cells as empty string.
func EncodeCSV(s *Set) (string, error) {
	if s.IsEmpty() {
		return "", ErrNoRows
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(s.Columns); err != nil {
		return "", err
	}

	record := make([]string, len(s.Columns))
	for i := range s.Rows {
		for j, col := range s.Columns {
			record[j] = s.Cell(i, col)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

// DecodeCSV parses CSV text produced by EncodeCSV back into a Set.
func DecodeCSV(data string) (*Set, error) {
	r := csv.NewReader(strings.NewReader(data))

	columns, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRows
		}
		return nil, err
	}

	set := &Set{Columns: columns}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		set.Rows = append(set.Rows, row)
	}

	return set, nil
}
