package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofrinho/backend/internal/store"
	"github.com/cofrinho/backend/internal/store/sqlite"
)

func testStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.Open(filepath.Join(t.TempDir(), "cofrinho.db"))
	require.NoError(t, err)
	return s
}

func TestOpenBadPath(t *testing.T) {
	_, err := sqlite.Open(filepath.Join(t.TempDir(), "missing", "nested", "cofrinho.db"))
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	s := testStore(t)

	rec, err := s.LoadRecord(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, rec, "a user without a record loads nil, not an error")
}

func TestUpsertRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rec := &store.Record{
		UserID: "ana@example.com",
		MonthlyIncome: []store.IncomeRecord{
			{Name: "Salary", Amount: store.Cipher("token-1")},
		},
		Installments: []store.InstallmentRecord{
			{
				Name:              "Laptop",
				TotalAmount:       store.Cipher("token-2"),
				InstallmentsCount: 12,
				InstallmentValue:  store.Cipher("token-3"),
				Category:          "Leisure",
			},
		},
	}
	require.NoError(t, s.UpsertRecord(ctx, rec))

	got, err := s.LoadRecord(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, got)
}

func TestUpsertReplaces(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertRecord(ctx, &store.Record{
		UserID:        "ana@example.com",
		MonthlyIncome: []store.IncomeRecord{{Name: "Salary", Amount: store.Cipher("old")}},
	}))
	require.NoError(t, s.UpsertRecord(ctx, &store.Record{
		UserID:        "ana@example.com",
		MonthlyIncome: []store.IncomeRecord{{Name: "Salary", Amount: store.Cipher("new")}},
	}))

	got, err := s.LoadRecord(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.MonthlyIncome, 1)
	assert.Equal(t, "new", got.MonthlyIncome[0].Amount.Token)
}

func TestRecordsAreIsolatedPerUser(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertRecord(ctx, &store.Record{UserID: "ana@example.com"}))
	require.NoError(t, s.UpsertRecord(ctx, &store.Record{UserID: "rui@example.com"}))

	rec, err := s.LoadRecord(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "ana@example.com", rec.UserID)
}

func TestLoadNormalizes(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertRecord(ctx, &store.Record{
		UserID:          "ana@example.com",
		MonthlyExpenses: []store.ExpenseRecord{{Name: "Mystery", Category: "Nonexistent"}},
		Installments:    []store.InstallmentRecord{{Name: "Broken", InstallmentsCount: 0}},
	}))

	rec, err := s.LoadRecord(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Other", rec.MonthlyExpenses[0].Category)
	assert.Equal(t, 1, rec.Installments[0].InstallmentsCount)
}
