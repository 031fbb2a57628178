package session

import (
	"github.com/shopspring/decimal"

	"github.com/cofrinho/backend/internal/categories"
	"github.com/cofrinho/backend/internal/ledger"
	"github.com/cofrinho/backend/internal/store"
)

// encode serializes the ledger into a record, encrypting every amount.
func (s *Session) encode(userID string) *store.Record {
	rec := &store.Record{UserID: userID}

	for _, item := range s.ledger.Incomes() {
		rec.MonthlyIncome = append(rec.MonthlyIncome, store.IncomeRecord{
			Name:   item.Name,
			Amount: store.Cipher(s.vault.EncryptAmount(item.Amount)),
		})
	}
	for _, item := range s.ledger.MonthlyExpenses() {
		rec.MonthlyExpenses = append(rec.MonthlyExpenses, s.encodeExpense(item))
	}
	for _, item := range s.ledger.AnnualExpenses() {
		rec.AnnualExpenses = append(rec.AnnualExpenses, s.encodeExpense(item))
	}
	for _, item := range s.ledger.Installments() {
		rec.Installments = append(rec.Installments, store.InstallmentRecord{
			Name:              item.Name,
			TotalAmount:       store.Cipher(s.vault.EncryptAmount(item.TotalAmount)),
			InstallmentsCount: item.InstallmentsCount,
			InstallmentValue:  store.Cipher(s.vault.EncryptAmount(item.InstallmentValue)),
			Category:          string(item.Category),
		})
	}

	return rec
}

func (s *Session) encodeExpense(item ledger.ExpenseItem) store.ExpenseRecord {
	return store.ExpenseRecord{
		Name:     item.Name,
		Amount:   store.Cipher(s.vault.EncryptAmount(item.Amount)),
		Category: string(item.Category),
	}
}

// hydrate fills the ledger from a stored record, decrypting every
// amount. Unreadable amounts come back as zero from the vault; the
// load itself never fails over a single field.
func (s *Session) hydrate(rec *store.Record) {
	incomes := make([]ledger.IncomeItem, 0, len(rec.MonthlyIncome))
	for _, item := range rec.MonthlyIncome {
		incomes = append(incomes, ledger.IncomeItem{
			Name:   item.Name,
			Amount: s.amount(item.Amount),
		})
	}

	monthly := make([]ledger.ExpenseItem, 0, len(rec.MonthlyExpenses))
	for _, item := range rec.MonthlyExpenses {
		monthly = append(monthly, s.hydrateExpense(item))
	}

	annual := make([]ledger.ExpenseItem, 0, len(rec.AnnualExpenses))
	for _, item := range rec.AnnualExpenses {
		annual = append(annual, s.hydrateExpense(item))
	}

	installments := make([]ledger.InstallmentItem, 0, len(rec.Installments))
	for _, item := range rec.Installments {
		installments = append(installments, ledger.InstallmentItem{
			Name:              item.Name,
			TotalAmount:       s.amount(item.TotalAmount),
			InstallmentsCount: item.InstallmentsCount,
			InstallmentValue:  s.amount(item.InstallmentValue),
			Category:          categories.Normalize(item.Category),
		})
	}

	s.ledger.Reset(incomes, monthly, annual, installments)
}

func (s *Session) hydrateExpense(item store.ExpenseRecord) ledger.ExpenseItem {
	return ledger.ExpenseItem{
		Name:     item.Name,
		Amount:   s.amount(item.Amount),
		Category: categories.Normalize(item.Category),
	}
}

// amount resolves a stored scalar: raw numbers pass through
// unchanged, tokens go through the vault's fallback chain.
func (s *Session) amount(scalar store.Scalar) decimal.Decimal {
	if scalar.Plain {
		return scalar.Number
	}
	return s.vault.DecryptAmount(scalar.Token)
}
