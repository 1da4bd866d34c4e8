// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package assist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

// =============================================================================
// RESPONSE PARSING TESTS
// =============================================================================

func TestParseResponseStructured(t *testing.T) {
	body := []byte(`{
		"summary": "Top 5 by revenue",
		"query": "SELECT name FROM customers LIMIT 5",
		"result": {"success": true, "data": [{"name": "Acme"}, {"name": "Globex"}]}
	}`)

	resp, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}

	if resp.IsLegacy() {
		t.Error("structured reply flagged as legacy")
	}
	if resp.Summary != "Top 5 by revenue" {
		t.Errorf("Summary = %q", resp.Summary)
	}
	if !resp.HasTable() {
		t.Fatal("HasTable = false, want true")
	}
	if got := resp.Result.Data.Columns; !reflect.DeepEqual(got, []string{"name"}) {
		t.Errorf("Columns = %v", got)
	}
	if resp.Result.Data.Len() != 2 {
		t.Errorf("rows = %d, want 2", resp.Result.Data.Len())
	}
}

func TestParseResponseError(t *testing.T) {
	resp, err := ParseResponse([]byte(`{"error": "table not found", "solution": "check the schema"}`))
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	if resp.Error != "table not found" || resp.Solution != "check the schema" {
		t.Errorf("got %+v", resp)
	}
}

func TestParseResponseLegacy(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain text", "hello from the assistant", "hello from the assistant"},
		{"json string", `"quoted reply"`, "quoted reply"},
		{"whitespace", "  trimmed  \n", "trimmed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := ParseResponse([]byte(tc.body))
			if err != nil {
				t.Fatalf("ParseResponse failed: %v", err)
			}
			if !resp.IsLegacy() {
				t.Error("expected legacy reply")
			}
			if resp.Raw != tc.want {
				t.Errorf("Raw = %q, want %q", resp.Raw, tc.want)
			}
		})
	}
}

func TestParseResponseMalformed(t *testing.T) {
	_, err := ParseResponse([]byte(`{"summary": `))
	var cerr *ClientError
	if !errors.As(err, &cerr) || cerr.Type != ErrTypeInvalidResponse {
		t.Errorf("err = %v, want invalid-response ClientError", err)
	}
}

// =============================================================================
// CLIENT TESTS
// =============================================================================

func TestQuerySendsForm(t *testing.T) {
	var gotMsg, gotDatabase, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotPath = r.URL.Path
		gotMsg = r.PostFormValue("msg")
		gotDatabase = r.PostFormValue("database")
		w.Write([]byte(`{"summary": "ok"}`))
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	resp, err := client.Query(context.Background(), "show top 5 customers", "sales")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if gotPath != "/get" {
		t.Errorf("path = %q, want /get", gotPath)
	}
	if gotMsg != "show top 5 customers" {
		t.Errorf("msg = %q", gotMsg)
	}
	if gotDatabase != "sales" {
		t.Errorf("database = %q", gotDatabase)
	}
	if resp.Summary != "ok" {
		t.Errorf("Summary = %q", resp.Summary)
	}
}

func TestQueryNormalizesInput(t *testing.T) {
	var gotMsg string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotMsg = r.PostFormValue("msg")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	// "é" as 'e' + combining acute should arrive precomposed.
	if _, err := client.Query(context.Background(), "café", "sales"); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if gotMsg != "café" {
		t.Errorf("msg = %q, want NFC form", gotMsg)
	}
}

func TestQueryServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	_, err := client.Query(context.Background(), "hi", "sales")

	var cerr *ClientError
	if !errors.As(err, &cerr) || cerr.Type != ErrTypeConnection {
		t.Errorf("err = %v, want connection ClientError", err)
	}
}

func TestQueryUnreachable(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	if _, err := client.Query(context.Background(), "hi", "sales"); err == nil {
		t.Error("expected error for unreachable endpoint")
	}
}

func TestCheckRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	if err := client.CheckRunning(context.Background()); err != nil {
		t.Errorf("CheckRunning = %v, want nil", err)
	}

	srv.Close()
	if err := client.CheckRunning(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("CheckRunning after close = %v, want ErrUnavailable", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	client := NewClientWithConfig(&ClientConfig{})
	if client.BaseURL() == "" {
		t.Error("zero-value config should fill BaseURL default")
	}
	if client.httpClient.Timeout == 0 {
		t.Error("zero-value config should fill Timeout default")
	}
}
