package ledger_test

import (
	"github.com/shopspring/decimal"

	"github.com/cofrinho/backend/internal/categories"
	"github.com/cofrinho/backend/internal/ledger"
)

func (suite *TestSuiteStandard) TestStartEditSnapshot() {
	suite.addInstallment("Laptop", "2400", "12", "Leisure")

	fields, err := suite.ledger.StartEdit(ledger.TypeInstallment, 0)
	suite.Require().NoError(err)

	suite.Assert().Equal("Laptop", fields.Name)
	suite.Assert().Equal("2400", fields.TotalAmount)
	suite.Assert().Equal("12", fields.Count)
	suite.Assert().Equal("Leisure", fields.Category)

	itemType, index, editing := suite.ledger.Editing()
	suite.Assert().True(editing)
	suite.Assert().Equal(ledger.TypeInstallment, itemType)
	suite.Assert().Equal(0, index)
}

func (suite *TestSuiteStandard) TestStartEditOutOfRange() {
	suite.addIncome("Salary", "5000")

	_, err := suite.ledger.StartEdit(ledger.TypeIncome, 1)
	suite.Assert().ErrorIs(err, ledger.ErrIndexOutOfRange)

	_, _, editing := suite.ledger.Editing()
	suite.Assert().False(editing)
}

func (suite *TestSuiteStandard) TestCancelEditIdempotent() {
	suite.addIncome("Salary", "5000")

	_, err := suite.ledger.StartEdit(ledger.TypeIncome, 0)
	suite.Require().NoError(err)

	suite.ledger.CancelEdit()
	suite.ledger.CancelEdit()

	_, _, editing := suite.ledger.Editing()
	suite.Assert().False(editing)
}

// Editing an installment's total recomputes the monthly value, it is
// never left at the stale amount.
func (suite *TestSuiteStandard) TestCommitEditRecomputesInstallmentValue() {
	suite.addInstallment("Laptop", "2400", "12", "Leisure")

	fields, err := suite.ledger.StartEdit(ledger.TypeInstallment, 0)
	suite.Require().NoError(err)

	fields.TotalAmount = "3600"
	changed, err := suite.ledger.CommitEdit(fields)
	suite.Require().NoError(err)
	suite.Assert().True(changed)

	item := suite.ledger.Installments()[0]
	suite.Assert().True(item.TotalAmount.Equal(decimal.NewFromInt(3600)))
	suite.Assert().Equal(12, item.InstallmentsCount)
	suite.Assert().True(item.InstallmentValue.Equal(decimal.NewFromInt(300)),
		"installment value is %s, want 300", item.InstallmentValue)

	_, _, editing := suite.ledger.Editing()
	suite.Assert().False(editing, "commit clears the edit session")
}

func (suite *TestSuiteStandard) TestCommitEditNormalizesCategory() {
	suite.addMonthlyExpense("Rent", "1500", "Housing")

	fields, err := suite.ledger.StartEdit(ledger.TypeMonthlyExpense, 0)
	suite.Require().NoError(err)

	fields.Category = "Nonexistent"
	changed, err := suite.ledger.CommitEdit(fields)
	suite.Require().NoError(err)
	suite.Assert().True(changed)

	suite.Assert().Equal(categories.Other, suite.ledger.MonthlyExpenses()[0].Category)
}

func (suite *TestSuiteStandard) TestCommitEditInvalidAmount() {
	suite.addIncome("Salary", "5000")

	fields, err := suite.ledger.StartEdit(ledger.TypeIncome, 0)
	suite.Require().NoError(err)

	fields.Amount = "not a number"
	_, err = suite.ledger.CommitEdit(fields)
	suite.Assert().ErrorIs(err, ledger.ErrInvalidAmount)

	// State and edit session stay untouched so the user can retry.
	suite.Assert().True(suite.ledger.Incomes()[0].Amount.Equal(decimal.NewFromInt(5000)))
	_, _, editing := suite.ledger.Editing()
	suite.Assert().True(editing)
}

// A remove between edit start and commit invalidates the captured
// index; the commit must not write into a shifted slot.
func (suite *TestSuiteStandard) TestCommitEditStaleIndex() {
	suite.addIncome("Salary", "5000")

	fields, err := suite.ledger.StartEdit(ledger.TypeIncome, 0)
	suite.Require().NoError(err)

	suite.Require().True(suite.ledger.RemoveIncome(0))

	fields.Amount = "6000"
	changed, err := suite.ledger.CommitEdit(fields)
	suite.Require().NoError(err)
	suite.Assert().False(changed)
	suite.Assert().Empty(suite.ledger.Incomes())

	_, _, editing := suite.ledger.Editing()
	suite.Assert().False(editing)
}

func (suite *TestSuiteStandard) TestCommitEditWithoutSession() {
	_, err := suite.ledger.CommitEdit(ledger.Fields{Name: "x", Amount: "1"})
	suite.Assert().ErrorIs(err, ledger.ErrNoActiveEdit)
}
