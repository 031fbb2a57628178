package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofrinho/backend/internal/categories"
	"github.com/cofrinho/backend/internal/ledger"
)

func (suite *TestSuiteStandard) TestMonthlySummary() {
	suite.addIncome("Salary", "5000")
	suite.addMonthlyExpense("Rent", "1500", "Housing")
	suite.addAnnualExpense("Insurance", "1200", "Other")
	suite.addInstallment("Laptop", "2400", "12", "Leisure")

	tests := []struct {
		name  string
		value decimal.Decimal
		want  int64
	}{
		{"income", suite.ledger.TotalMonthlyIncome(), 5000},
		{"monthly expenses", suite.ledger.TotalMonthlyExpenses(), 1500},
		{"annual share", suite.ledger.TotalAnnualExpensesMonthlyShare(), 100},
		{"installments", suite.ledger.TotalInstallmentsMonthly(), 200},
		{"spending", suite.ledger.TotalMonthlySpending(), 1800},
		{"balance", suite.ledger.MonthlyBalance(), 3200},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.value.Equal(decimal.NewFromInt(tt.want)),
				"%s is %s, want %d", tt.name, tt.value, tt.want)
		})
	}
}

// The balance identity holds after every mutation, not only in the
// final state.
func (suite *TestSuiteStandard) TestBalanceIdentity() {
	check := func() {
		want := suite.ledger.TotalMonthlyIncome().Sub(suite.ledger.TotalMonthlySpending())
		suite.Assert().True(suite.ledger.MonthlyBalance().Equal(want))
	}

	check()
	suite.addIncome("Salary", "5000")
	check()
	suite.addMonthlyExpense("Rent", "1500", "Housing")
	check()
	suite.addInstallment("Laptop", "2400", "12", "Leisure")
	check()
	suite.ledger.RemoveMonthlyExpense(0)
	check()

	fields, err := suite.ledger.StartEdit(ledger.TypeInstallment, 0)
	suite.Require().NoError(err)
	fields.TotalAmount = "3600"
	_, err = suite.ledger.CommitEdit(fields)
	suite.Require().NoError(err)
	check()
}

func (suite *TestSuiteStandard) TestCategoryDistribution() {
	suite.addMonthlyExpense("Rent", "1500", "Housing")
	suite.addMonthlyExpense("Groceries", "800", "Food")
	suite.addAnnualExpense("Insurance", "1200", "Other")
	suite.addInstallment("Laptop", "2400", "12", "Leisure")

	slices := suite.ledger.CategoryDistribution()
	require.Len(suite.T(), slices, 4, "categories without spending are omitted")

	// Sorted by value descending: 1500, 800, 200, 100.
	assert.Equal(suite.T(), categories.Housing, slices[0].Category)
	assert.Equal(suite.T(), categories.Food, slices[1].Category)
	assert.Equal(suite.T(), categories.Leisure, slices[2].Category)
	assert.Equal(suite.T(), categories.Other, slices[3].Category)

	assert.True(suite.T(), slices[0].Value.Equal(decimal.NewFromInt(1500)))
	assert.Equal(suite.T(), "R$ 1.500,00", slices[0].Display)
	assert.Equal(suite.T(), "(57,7%)", slices[0].Percent)
	assert.Equal(suite.T(), "#3b82f6", slices[0].Fill)

	assert.Equal(suite.T(), "R$ 100,00", slices[3].Display)
	assert.Equal(suite.T(), "(3,8%)", slices[3].Percent)
}

func (suite *TestSuiteStandard) TestCategoryDistributionAccumulates() {
	// Spending for the same category from all three sources.
	suite.addMonthlyExpense("Netflix", "50", "Leisure")
	suite.addAnnualExpense("Club fee", "600", "Leisure")
	suite.addInstallment("Console", "1800", "12", "Leisure")

	slices := suite.ledger.CategoryDistribution()
	require.Len(suite.T(), slices, 1)

	// 50 + 600/12 + 150
	assert.True(suite.T(), slices[0].Value.Equal(decimal.NewFromInt(250)),
		"leisure total is %s, want 250", slices[0].Value)
	assert.Equal(suite.T(), "(100,0%)", slices[0].Percent)
}

func (suite *TestSuiteStandard) TestCategoryDistributionEmpty() {
	assert.Empty(suite.T(), suite.ledger.CategoryDistribution())

	// Income alone produces no spending slices.
	suite.addIncome("Salary", "5000")
	assert.Empty(suite.T(), suite.ledger.CategoryDistribution())
}

func (suite *TestSuiteStandard) TestCategoryDistributionPercentSum() {
	suite.addMonthlyExpense("Rent", "1234.56", "Housing")
	suite.addMonthlyExpense("Bus", "333.33", "Transport")
	suite.addMonthlyExpense("Pharmacy", "77.77", "Health")

	total := decimal.Zero
	for _, s := range suite.ledger.CategoryDistribution() {
		total = total.Add(s.Value)
	}

	want := decimal.RequireFromString("1645.66")
	assert.True(suite.T(), total.Equal(want), "rounded values sum to %s, want %s", total, want)
}

func (suite *TestSuiteStandard) TestCategoryDistributionGrouping() {
	suite.addMonthlyExpense("Mortgage", "12345.67", "Housing")

	slices := suite.ledger.CategoryDistribution()
	require.Len(suite.T(), slices, 1)
	assert.Equal(suite.T(), "R$ 12.345,67", slices[0].Display)
	assert.Equal(suite.T(), "(100,0%)", slices[0].Percent)
}
