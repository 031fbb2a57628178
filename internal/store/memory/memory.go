// Package memory implements the record store in process memory. It
// backs tests and offline sessions; nothing survives the process.
package memory

import (
	"context"
	"sync"

	"github.com/cofrinho/backend/internal/store"
)

// Store keeps one record per user in a map.
type Store struct {
	mu      sync.RWMutex
	records map[string]store.Record
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string]store.Record)}
}

func (s *Store) LoadRecord(_ context.Context, userID string) (*store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userID]
	if !ok {
		return nil, nil
	}

	rec.Normalize()
	return &rec, nil
}

func (s *Store) UpsertRecord(_ context.Context, record *store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.UserID] = *record
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
