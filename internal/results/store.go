// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package results

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotFound = errors.New("result set not found")
	ErrClosed   = errors.New("result store is closed")
)

// =============================================================================
// RESULT STORE
// =============================================================================

// DefaultCapacity is the number of result sets retained before the oldest
// are evicted.
const DefaultCapacity = 32

const storeSchema = `
CREATE TABLE IF NOT EXISTS result_sets (
    id      TEXT PRIMARY KEY,
    seq     INTEGER NOT NULL,
    payload BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_result_sets_seq ON result_sets(seq);
`

// Store holds result sets between response arrival and a later export
// action. It is bounded: inserting past capacity evicts the oldest entries.
// Backed by an in-memory SQLite database, so payloads live outside the
// transcript and eviction is a single statement.
type Store struct {
	mu       sync.Mutex
	db       *sql.DB
	capacity int
	seq      int64
	closed   bool
}

// storedSet is the persisted shape. Set's own UnmarshalJSON expects the wire
// array format, so the store uses an explicit envelope instead.
type storedSet struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewStore opens an in-memory store with the given capacity. A capacity of
// zero or less falls back to DefaultCapacity.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open result store: %w", err)
	}

	// An in-memory SQLite database is private to its connection; a second
	// connection would see an empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create result store schema: %w", err)
	}

	return &Store{db: db, capacity: capacity}, nil
}

// Put stores a result set and returns its generated ID. Sets are registered
// regardless of row count so the export affordance always resolves.
func (s *Store) Put(set *Set) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrClosed
	}

	payload, err := json.Marshal(storedSet{Columns: set.Columns, Rows: set.Rows})
	if err != nil {
		return "", fmt.Errorf("failed to encode result set: %w", err)
	}

	id := uuid.New().String()
	s.seq++
	if _, err := s.db.Exec(
		"INSERT INTO result_sets (id, seq, payload) VALUES (?, ?, ?)",
		id, s.seq, payload,
	); err != nil {
		return "", fmt.Errorf("failed to store result set: %w", err)
	}

	if _, err := s.db.Exec(
		"DELETE FROM result_sets WHERE id NOT IN (SELECT id FROM result_sets ORDER BY seq DESC LIMIT ?)",
		s.capacity,
	); err != nil {
		return "", fmt.Errorf("failed to evict result sets: %w", err)
	}

	return id, nil
}

// Get retrieves a result set by ID.
func (s *Store) Get(id string) (*Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM result_sets WHERE id = ?", id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read result set: %w", err)
	}

	var stored storedSet
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode result set: %w", err)
	}
	return &Set{Columns: stored.Columns, Rows: stored.Rows}, nil
}

// Remove evicts a result set by ID. Removing an unknown ID is not an error.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	_, err := s.db.Exec("DELETE FROM result_sets WHERE id = ?", id)
	return err
}

// Len returns the number of stored result sets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM result_sets").Scan(&n); err != nil {
		return 0
	}
	return n
}

// Close releases the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
