// Package session binds one user's ledger to the record store through
// the vault.
//
// Mutations follow an optimistic policy: the in-memory change applies
// first and stands even when the following write fails; the failure
// surfaces as an advisory for the consuming layer instead of a rolled
// back mutation. Load is the session bootstrap gate, no mutation is
// accepted before it ran.
//
// A session serves a single logical user and must not be driven by
// two mutations at once; callers serialize access the same way they
// do for the ledger itself.
package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/cofrinho/backend/internal/identity"
	"github.com/cofrinho/backend/internal/ledger"
	"github.com/cofrinho/backend/internal/store"
	"github.com/cofrinho/backend/internal/vault"
)

// Advisory is a standing notice for the consuming layer to surface to
// the user. Advisories are not errors: the operation they accompany
// has succeeded locally.
type Advisory string

const (
	// AdvisoryEphemeralKey warns that amounts are encrypted under a
	// key that dies with the process.
	AdvisoryEphemeralKey Advisory = "ephemeral-key"

	// AdvisoryNotSaved warns that the last mutation could not be
	// persisted online. The local change stands.
	AdvisoryNotSaved Advisory = "not-saved-online"

	// AdvisoryLoadFailed warns that the stored record could not be
	// read and the session started empty.
	AdvisoryLoadFailed Advisory = "load-failed"
)

var (
	ErrNotAuthenticated = errors.New("no authenticated user")
	ErrNotLoaded        = errors.New("the session has not been loaded yet")
)

// Session owns a user's ledger for the duration of one sign-in.
type Session struct {
	ledger   *ledger.Ledger
	store    store.Store
	vault    *vault.Vault
	identity identity.Provider
	loaded   bool
}

// New creates a session over the given collaborators. The ledger
// starts empty and unusable until Load ran.
func New(st store.Store, v *vault.Vault, id identity.Provider) *Session {
	return &Session{
		ledger:   ledger.New(),
		store:    st,
		vault:    v,
		identity: id,
	}
}

// Ledger exposes the aggregate for reads and derived metrics. Mutate
// through the session, not through the ledger, or changes will not be
// persisted.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Load resets the ledger and hydrates it from the user's stored
// record. A missing record or an unreadable store leaves the session
// empty but usable; only a missing user is an error. Load must
// complete before any mutation is accepted.
func (s *Session) Load(ctx context.Context) ([]Advisory, error) {
	s.ledger = ledger.New()
	s.loaded = false

	if !s.identity.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	userID, ok := s.identity.CurrentUserID()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	var advisories []Advisory

	rec, err := s.store.LoadRecord(ctx, userID)
	switch {
	case err != nil:
		log.Error().Err(err).Msg("loading the stored record failed, starting empty")
		advisories = append(advisories, AdvisoryLoadFailed)
	case rec == nil:
		log.Info().Str("user", userID).Msg("no stored record found, starting fresh")
	default:
		s.hydrate(rec)
		log.Info().
			Str("user", userID).
			Int("incomes", len(rec.MonthlyIncome)).
			Msg("loaded stored record")
	}

	s.loaded = true

	if s.vault.UsesEphemeralKey() {
		advisories = append(advisories, AdvisoryEphemeralKey)
	}
	return advisories, nil
}

// AddIncome appends an income source and persists.
func (s *Session) AddIncome(ctx context.Context, name, amount string) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if err := s.ledger.AddIncome(name, amount); err != nil {
		return nil, err
	}
	return s.save(ctx), nil
}

// AddMonthlyExpense appends a monthly expense and persists.
func (s *Session) AddMonthlyExpense(ctx context.Context, name, amount, category string) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if err := s.ledger.AddMonthlyExpense(name, amount, category); err != nil {
		return nil, err
	}
	return s.save(ctx), nil
}

// AddAnnualExpense appends an annual expense and persists.
func (s *Session) AddAnnualExpense(ctx context.Context, name, amount, category string) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if err := s.ledger.AddAnnualExpense(name, amount, category); err != nil {
		return nil, err
	}
	return s.save(ctx), nil
}

// AddInstallment appends an installment purchase and persists.
func (s *Session) AddInstallment(ctx context.Context, name, totalAmount, count, category string) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if err := s.ledger.AddInstallment(name, totalAmount, count, category); err != nil {
		return nil, err
	}
	return s.save(ctx), nil
}

// RemoveIncome removes the income at index. Out-of-range indices are a
// no-op and trigger no write.
func (s *Session) RemoveIncome(ctx context.Context, index int) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if !s.ledger.RemoveIncome(index) {
		return nil, nil
	}
	return s.save(ctx), nil
}

// RemoveMonthlyExpense removes the monthly expense at index.
func (s *Session) RemoveMonthlyExpense(ctx context.Context, index int) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if !s.ledger.RemoveMonthlyExpense(index) {
		return nil, nil
	}
	return s.save(ctx), nil
}

// RemoveAnnualExpense removes the annual expense at index.
func (s *Session) RemoveAnnualExpense(ctx context.Context, index int) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if !s.ledger.RemoveAnnualExpense(index) {
		return nil, nil
	}
	return s.save(ctx), nil
}

// RemoveInstallment removes the installment at index.
func (s *Session) RemoveInstallment(ctx context.Context, index int) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if !s.ledger.RemoveInstallment(index) {
		return nil, nil
	}
	return s.save(ctx), nil
}

// StartEdit opens an edit on the item at index. Nothing is persisted
// until the edit commits.
func (s *Session) StartEdit(itemType ledger.ItemType, index int) (ledger.Fields, error) {
	if !s.loaded {
		return ledger.Fields{}, ErrNotLoaded
	}
	return s.ledger.StartEdit(itemType, index)
}

// CancelEdit drops the open edit, if any.
func (s *Session) CancelEdit() {
	s.ledger.CancelEdit()
}

// CommitEdit validates and writes back the edited item, then
// persists. A stale edit (the item was removed meanwhile) commits
// nothing and triggers no write.
func (s *Session) CommitEdit(ctx context.Context, edited ledger.Fields) ([]Advisory, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}

	changed, err := s.ledger.CommitEdit(edited)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, nil
	}
	return s.save(ctx), nil
}

// save encrypts the current ledger state and upserts it. Failures do
// not roll anything back, they surface as AdvisoryNotSaved.
func (s *Session) save(ctx context.Context) []Advisory {
	userID, ok := s.identity.CurrentUserID()
	if !ok {
		log.Warn().Msg("user signed out mid-session, keeping changes locally")
		return []Advisory{AdvisoryNotSaved}
	}

	if err := s.store.UpsertRecord(ctx, s.encode(userID)); err != nil {
		log.Warn().Err(err).Msg("online save failed, keeping changes locally")
		return []Advisory{AdvisoryNotSaved}
	}
	return nil
}
