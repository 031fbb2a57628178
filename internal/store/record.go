package store

import "github.com/cofrinho/backend/internal/categories"

// Record is the single document persisted per user. The field names
// form the stored layout and must not change, records written by
// earlier versions of the app still use them.
type Record struct {
	UserID          string              `json:"userId" bson:"user_id"`
	MonthlyIncome   []IncomeRecord      `json:"monthly_income" bson:"monthly_income"`
	MonthlyExpenses []ExpenseRecord     `json:"monthly_expenses" bson:"monthly_expenses"`
	AnnualExpenses  []ExpenseRecord     `json:"annual_expenses" bson:"annual_expenses"`
	Installments    []InstallmentRecord `json:"installments" bson:"installments"`
}

// IncomeRecord is one stored income source.
type IncomeRecord struct {
	Name   string `json:"name" bson:"name"`
	Amount Scalar `json:"amount" bson:"amount"`
}

// ExpenseRecord is one stored expense, monthly or annual depending on
// the collection it sits in.
type ExpenseRecord struct {
	Name     string `json:"name" bson:"name"`
	Amount   Scalar `json:"amount" bson:"amount"`
	Category string `json:"category" bson:"category"`
}

// InstallmentRecord is one stored installment purchase.
type InstallmentRecord struct {
	Name              string `json:"name" bson:"name"`
	TotalAmount       Scalar `json:"total_amount" bson:"total_amount"`
	InstallmentsCount int    `json:"installments_count" bson:"installments_count"`
	InstallmentValue  Scalar `json:"installment_value" bson:"installment_value"`
	Category          string `json:"category" bson:"category"`
}

// Normalize repairs a freshly decoded record: unknown categories
// become Other and non-positive installment counts become 1. Stored
// shapes are never trusted as-is; every backend normalizes records on
// the way out.
func (r *Record) Normalize() {
	for i := range r.MonthlyExpenses {
		r.MonthlyExpenses[i].Category = string(categories.Normalize(r.MonthlyExpenses[i].Category))
	}
	for i := range r.AnnualExpenses {
		r.AnnualExpenses[i].Category = string(categories.Normalize(r.AnnualExpenses[i].Category))
	}
	for i := range r.Installments {
		r.Installments[i].Category = string(categories.Normalize(r.Installments[i].Category))
		if r.Installments[i].InstallmentsCount < 1 {
			r.Installments[i].InstallmentsCount = 1
		}
	}
}
