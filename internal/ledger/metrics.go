package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/cofrinho/backend/internal/categories"
)

var twelve = decimal.NewFromInt(12)

// All derived metrics are pure functions of the current ledger state.
// They are recomputed on every call and never cached.

// TotalMonthlyIncome is the sum of all income amounts.
func (l *Ledger) TotalMonthlyIncome() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l.incomes {
		sum = sum.Add(item.Amount)
	}
	return sum
}

// TotalMonthlyExpenses is the sum of all monthly expense amounts.
func (l *Ledger) TotalMonthlyExpenses() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l.monthlyExpenses {
		sum = sum.Add(item.Amount)
	}
	return sum
}

// TotalAnnualExpensesMonthlyShare is the annual expense sum amortized
// over twelve months.
func (l *Ledger) TotalAnnualExpensesMonthlyShare() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l.annualExpenses {
		sum = sum.Add(item.Amount)
	}
	return sum.Div(twelve)
}

// TotalInstallmentsMonthly is the sum of all monthly installment
// values.
func (l *Ledger) TotalInstallmentsMonthly() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l.installments {
		sum = sum.Add(item.InstallmentValue)
	}
	return sum
}

// TotalMonthlySpending combines monthly expenses, the monthly share of
// annual expenses and the monthly installment load.
func (l *Ledger) TotalMonthlySpending() decimal.Decimal {
	return l.TotalMonthlyExpenses().
		Add(l.TotalAnnualExpensesMonthlyShare()).
		Add(l.TotalInstallmentsMonthly())
}

// MonthlyBalance is income minus spending.
func (l *Ledger) MonthlyBalance() decimal.Decimal {
	return l.TotalMonthlyIncome().Sub(l.TotalMonthlySpending())
}

// CategorySlice is one entry of the spending distribution.
type CategorySlice struct {
	Category categories.ID
	Value    decimal.Decimal // monthly share, rounded to 2 decimal places
	Display  string          // locale-formatted currency, e.g. "R$ 1.234,56"
	Percent  string          // share of the emitted total, e.g. "(32,5%)"
	Fill     string          // chart color for this category
}

// CategoryDistribution aggregates the monthly spending per category:
// monthly expenses in full, annual expenses at a twelfth, installment
// values in full. Categories without spending are omitted entirely.
// The result is sorted by value descending; ties keep catalog order.
func (l *Ledger) CategoryDistribution() []CategorySlice {
	totals := make(map[categories.ID]decimal.Decimal, len(categories.All()))

	for _, item := range l.monthlyExpenses {
		id := categories.Normalize(string(item.Category))
		totals[id] = totals[id].Add(item.Amount)
	}
	for _, item := range l.annualExpenses {
		id := categories.Normalize(string(item.Category))
		totals[id] = totals[id].Add(item.Amount.Div(twelve))
	}
	for _, item := range l.installments {
		id := categories.Normalize(string(item.Category))
		totals[id] = totals[id].Add(item.InstallmentValue)
	}

	total := decimal.Zero
	for _, value := range totals {
		if value.IsPositive() {
			total = total.Add(value)
		}
	}

	slices := make([]CategorySlice, 0, len(totals))
	for _, id := range categories.All() {
		value, ok := totals[id]
		if !ok || !value.IsPositive() {
			continue
		}

		pct := decimal.Zero
		if total.IsPositive() {
			pct = value.Div(total).Mul(decimal.NewFromInt(100))
		}

		slices = append(slices, CategorySlice{
			Category: id,
			Value:    value.Round(2),
			Display:  formatCurrency(value),
			Percent:  formatPercent(pct),
			Fill:     categories.Lookup(id).ChartHex,
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})

	return slices
}

// ptBR renders numbers with "." as thousands separator and "," as
// decimal separator, matching the presentation locale of the app.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

func formatCurrency(value decimal.Decimal) string {
	f, _ := value.Round(2).Float64()
	return ptBR.Sprintf("R$ %v", number.Decimal(f, number.Scale(2)))
}

func formatPercent(pct decimal.Decimal) string {
	f, _ := pct.Float64()
	return ptBR.Sprintf("(%v%%)", number.Decimal(f, number.Scale(1)))
}
