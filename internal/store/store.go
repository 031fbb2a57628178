// Package store defines the persistence boundary for finance records:
// one document per user, loaded and upserted as a whole. Concrete
// backends live in the subpackages; the rest of the system only sees
// the Store interface.
package store

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("the record store is not available")

// Store is the persistence port. Implementations guarantee single-
// document atomicity for the upsert and nothing beyond that.
type Store interface {
	// LoadRecord returns the user's record, or nil when none exists.
	LoadRecord(ctx context.Context, userID string) (*Record, error)

	// UpsertRecord writes the record, replacing any previous one for
	// the same user.
	UpsertRecord(ctx context.Context, record *Record) error
}

// Unavailable is the degraded store used when no backend is configured
// or reachable: every load finds nothing and every upsert fails with
// ErrUnavailable. Sessions keep working on it, nothing persists.
type Unavailable struct{}

func (Unavailable) LoadRecord(_ context.Context, _ string) (*Record, error) {
	return nil, nil
}

func (Unavailable) UpsertRecord(_ context.Context, _ *Record) error {
	return ErrUnavailable
}
