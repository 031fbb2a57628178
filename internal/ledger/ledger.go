// Package ledger implements the in-memory aggregate of one user's
// financial collections: monthly income, monthly expenses, annual
// expenses and installment purchases.
//
// The ledger itself never talks to storage. Mutations apply
// synchronously to the in-memory sequences and report whether state
// changed, so that an orchestrating layer can decide when to persist.
// Items have no identifier besides their position: every indexed
// operation re-checks the index against the current sequence length
// and rejects stale indices instead of clamping them.
//
// A ledger must not be mutated concurrently; callers serialize access.
package ledger

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cofrinho/backend/internal/categories"
)

// Ledger owns the four ordered item sequences. The zero value is not
// usable, use New.
type Ledger struct {
	incomes         []IncomeItem
	monthlyExpenses []ExpenseItem
	annualExpenses  []ExpenseItem
	installments    []InstallmentItem

	edit *editSession
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Incomes returns a copy of the income sequence in insertion order.
func (l *Ledger) Incomes() []IncomeItem {
	return append([]IncomeItem(nil), l.incomes...)
}

// MonthlyExpenses returns a copy of the monthly expense sequence.
func (l *Ledger) MonthlyExpenses() []ExpenseItem {
	return append([]ExpenseItem(nil), l.monthlyExpenses...)
}

// AnnualExpenses returns a copy of the annual expense sequence.
func (l *Ledger) AnnualExpenses() []ExpenseItem {
	return append([]ExpenseItem(nil), l.annualExpenses...)
}

// Installments returns a copy of the installment sequence.
func (l *Ledger) Installments() []InstallmentItem {
	return append([]InstallmentItem(nil), l.installments...)
}

// Reset replaces all four sequences at once and drops any edit in
// progress. It exists for session hydration, which is the only
// operation allowed to reset a ledger wholesale.
func (l *Ledger) Reset(incomes []IncomeItem, monthly, annual []ExpenseItem, installments []InstallmentItem) {
	l.incomes = append([]IncomeItem(nil), incomes...)
	l.monthlyExpenses = append([]ExpenseItem(nil), monthly...)
	l.annualExpenses = append([]ExpenseItem(nil), annual...)
	l.installments = append([]InstallmentItem(nil), installments...)
	l.edit = nil
}

// AddIncome validates and appends an income source. The amount arrives
// as entered by the user and must parse as a non-negative decimal.
func (l *Ledger) AddIncome(name, amount string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	value, err := parseAmount(amount)
	if err != nil {
		return err
	}

	l.incomes = append(l.incomes, IncomeItem{Name: name, Amount: value})
	return nil
}

// AddMonthlyExpense validates and appends a monthly expense. Unknown
// categories are normalized to Other.
func (l *Ledger) AddMonthlyExpense(name, amount, category string) error {
	item, err := newExpense(name, amount, category)
	if err != nil {
		return err
	}

	l.monthlyExpenses = append(l.monthlyExpenses, item)
	return nil
}

// AddAnnualExpense validates and appends an annual expense. Unknown
// categories are normalized to Other.
func (l *Ledger) AddAnnualExpense(name, amount, category string) error {
	item, err := newExpense(name, amount, category)
	if err != nil {
		return err
	}

	l.annualExpenses = append(l.annualExpenses, item)
	return nil
}

// AddInstallment validates and appends an installment purchase. A
// count below 1 is silently coerced to 1, not rejected. The monthly
// installment value is computed here and kept consistent by the ledger
// from then on.
func (l *Ledger) AddInstallment(name, totalAmount, count, category string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	total, err := parseAmount(totalAmount)
	if err != nil {
		return err
	}

	n, err := parseCount(count)
	if err != nil {
		return err
	}

	l.installments = append(l.installments, InstallmentItem{
		Name:              name,
		TotalAmount:       total,
		InstallmentsCount: n,
		InstallmentValue:  installmentValue(total, n),
		Category:          categories.Normalize(category),
	})
	return nil
}

// RemoveIncome removes the income at index. Out-of-range indices are a
// no-op; the return value reports whether anything was removed.
func (l *Ledger) RemoveIncome(index int) bool {
	if index < 0 || index >= len(l.incomes) {
		return false
	}
	l.incomes = append(l.incomes[:index], l.incomes[index+1:]...)
	return true
}

// RemoveMonthlyExpense removes the monthly expense at index.
func (l *Ledger) RemoveMonthlyExpense(index int) bool {
	if index < 0 || index >= len(l.monthlyExpenses) {
		return false
	}
	l.monthlyExpenses = append(l.monthlyExpenses[:index], l.monthlyExpenses[index+1:]...)
	return true
}

// RemoveAnnualExpense removes the annual expense at index.
func (l *Ledger) RemoveAnnualExpense(index int) bool {
	if index < 0 || index >= len(l.annualExpenses) {
		return false
	}
	l.annualExpenses = append(l.annualExpenses[:index], l.annualExpenses[index+1:]...)
	return true
}

// RemoveInstallment removes the installment at index.
func (l *Ledger) RemoveInstallment(index int) bool {
	if index < 0 || index >= len(l.installments) {
		return false
	}
	l.installments = append(l.installments[:index], l.installments[index+1:]...)
	return true
}

func newExpense(name, amount, category string) (ExpenseItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ExpenseItem{}, ErrEmptyName
	}

	value, err := parseAmount(amount)
	if err != nil {
		return ExpenseItem{}, err
	}

	return ExpenseItem{
		Name:     name,
		Amount:   value,
		Category: categories.Normalize(category),
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	value, err := decimal.NewFromString(s)
	if err != nil || value.IsNegative() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return value, nil
}

// parseCount parses the installments count. Values below 1 are coerced
// to 1; only non-numeric input is an error.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidCount
	}
	if n < 1 {
		n = 1
	}
	return n, nil
}
