package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cofrinho/backend/internal/categories"
)

// IncomeItem is one recurring monthly income source.
type IncomeItem struct {
	Name   string
	Amount decimal.Decimal
}

// ExpenseItem is a named, categorized expense. The same shape is used
// for monthly and annual expenses; the cadence is decided by the
// sequence that owns the item, not by its type.
type ExpenseItem struct {
	Name     string
	Amount   decimal.Decimal
	Category categories.ID
}

// InstallmentItem is a purchase paid off in equal monthly installments.
//
// InstallmentValue is always TotalAmount / InstallmentsCount. The
// ledger recomputes it whenever either field changes; it is never set
// directly.
type InstallmentItem struct {
	Name              string
	TotalAmount       decimal.Decimal
	InstallmentsCount int
	InstallmentValue  decimal.Decimal
	Category          categories.ID
}

// ItemType designates one of the ledger's four sequences.
type ItemType string

const (
	TypeIncome         ItemType = "income"
	TypeMonthlyExpense ItemType = "monthly_expense"
	TypeAnnualExpense  ItemType = "annual_expense"
	TypeInstallment    ItemType = "installment"
)

// installmentValue splits a total into its monthly share.
func installmentValue(total decimal.Decimal, count int) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(count)))
}
