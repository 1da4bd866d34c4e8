// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package interpret

import (
	"strings"
	"testing"

	"github.com/jeranaias/querychat/internal/assist"
	"github.com/jeranaias/querychat/internal/results"
)

func newTestInterpreter(t *testing.T) (*Interpreter, *results.Store) {
	t.Helper()
	store, err := results.NewStore(0)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

func fiveRows() *results.Set {
	set := &results.Set{Columns: []string{"name", "revenue"}}
	for _, name := range []string{"Acme", "Globex", "Initech", "Umbrella", "Hooli"} {
		set.Rows = append(set.Rows, results.Row{"name": name, "revenue": "100"})
	}
	return set
}

func TestInterpretErrorPrecedence(t *testing.T) {
	in, _ := newTestInterpreter(t)

	content, resultID, err := in.Interpret(&assist.Response{
		Error:   "boom",
		Summary: "ok",
		Query:   "SELECT 1",
		Result:  &assist.Result{Success: true, Data: fiveRows()},
	})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}

	if !strings.Contains(content, "Error: boom") {
		t.Errorf("missing error block:\n%s", content)
	}
	if strings.Contains(content, "ok") || strings.Contains(content, "SELECT") || strings.Contains(content, "Acme") {
		t.Errorf("error must suppress all other sections:\n%s", content)
	}
	if resultID != "" {
		t.Error("error reply must not register a result set")
	}
}

func TestInterpretErrorWithSolution(t *testing.T) {
	in, _ := newTestInterpreter(t)

	content, _, _ := in.Interpret(&assist.Response{Error: "table not found", Solution: "check the schema"})
	if !strings.Contains(content, "Error: table not found") {
		t.Errorf("missing error text:\n%s", content)
	}
	if !strings.Contains(content, "Suggested solution: check the schema") {
		t.Errorf("missing solution hint:\n%s", content)
	}
}

func TestInterpretSectionOrder(t *testing.T) {
	in, store := newTestInterpreter(t)

	content, resultID, err := in.Interpret(&assist.Response{
		Summary: "Top 5 by revenue",
		Query:   "SELECT name, revenue FROM customers ORDER BY revenue DESC LIMIT 5",
		Result:  &assist.Result{Success: true, Data: fiveRows()},
	})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}

	summaryAt := strings.Index(content, "Top 5 by revenue")
	queryAt := strings.Index(content, "```sql")
	tableAt := strings.Index(content, "Acme")
	if summaryAt < 0 || queryAt < 0 || tableAt < 0 {
		t.Fatalf("missing section:\n%s", content)
	}
	if !(summaryAt < queryAt && queryAt < tableAt) {
		t.Errorf("sections out of order (summary=%d query=%d table=%d)", summaryAt, queryAt, tableAt)
	}
	if !strings.Contains(content, results.ExportHint) {
		t.Error("missing export affordance")
	}

	// The registered set is retrievable by the returned ID.
	if resultID == "" {
		t.Fatal("expected a result ID")
	}
	set, err := store.Get(resultID)
	if err != nil {
		t.Fatalf("store.Get failed: %v", err)
	}
	if set.Len() != 5 {
		t.Errorf("stored set has %d rows, want 5", set.Len())
	}
}

func TestInterpretResultMessage(t *testing.T) {
	in, _ := newTestInterpreter(t)

	content, resultID, _ := in.Interpret(&assist.Response{
		Result: &assist.Result{Success: true, Message: "12 rows updated"},
	})
	if content != "12 rows updated" {
		t.Errorf("content = %q", content)
	}
	if resultID != "" {
		t.Error("message-only result must not register a set")
	}
}

func TestInterpretUnsuccessfulResultIgnored(t *testing.T) {
	in, _ := newTestInterpreter(t)

	content, resultID, _ := in.Interpret(&assist.Response{
		Summary: "attempted",
		Result:  &assist.Result{Success: false, Data: fiveRows()},
	})
	if strings.Contains(content, "Acme") {
		t.Errorf("unsuccessful result must not render:\n%s", content)
	}
	if resultID != "" {
		t.Error("unsuccessful result must not register a set")
	}
}

func TestInterpretEmptyBody(t *testing.T) {
	in, _ := newTestInterpreter(t)

	content, resultID, err := in.Interpret(&assist.Response{})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if content != "" || resultID != "" {
		t.Errorf("empty reply should yield empty body, got %q", content)
	}
}

func TestInterpretLegacy(t *testing.T) {
	in, _ := newTestInterpreter(t)

	content, _, _ := in.Interpret(&assist.Response{Raw: "SELECT * FROM customers"})
	if content != "SELECT * FROM customers" {
		t.Errorf("legacy reply should render verbatim, got %q", content)
	}
}

func TestInterpretEmptyDataRegistersAndRendersPlaceholder(t *testing.T) {
	in, store := newTestInterpreter(t)

	content, resultID, err := in.Interpret(&assist.Response{
		Result: &assist.Result{Success: true, Data: &results.Set{}},
	})
	if err != nil {
		t.Fatalf("Interpret failed: %v", err)
	}
	if !strings.Contains(content, results.NoResults) {
		t.Errorf("empty data should render %q, got %q", results.NoResults, content)
	}
	if resultID == "" {
		t.Fatal("empty data still registers for export resolution")
	}
	if _, err := store.Get(resultID); err != nil {
		t.Errorf("registered empty set not retrievable: %v", err)
	}
}
