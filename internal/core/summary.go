package core

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// MonthSummary holds the totals and per-category breakdowns for one
// year-month filter.
type MonthSummary struct {
	Month             string // filter as given, e.g. "2025-05"
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	NetSavings        decimal.Decimal
	IncomeByCategory  map[string]decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal
}

// NewMonthSummary returns an all-zero summary with empty maps.
func NewMonthSummary(month string) MonthSummary {
	return MonthSummary{
		Month:             month,
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		NetSavings:        decimal.Zero,
		IncomeByCategory:  map[string]decimal.Decimal{},
		ExpenseByCategory: map[string]decimal.Decimal{},
	}
}

// IsEmpty reports whether no record contributed to the summary.
func (s MonthSummary) IsEmpty() bool {
	return len(s.IncomeByCategory) == 0 && len(s.ExpenseByCategory) == 0
}

// IncomeCategories returns the income breakdown sorted by category name.
func (s MonthSummary) IncomeCategories() []CategoryAmount {
	return sortedCategories(s.IncomeByCategory)
}

// ExpenseCategories returns the expense breakdown sorted by category name.
func (s MonthSummary) ExpenseCategories() []CategoryAmount {
	return sortedCategories(s.ExpenseByCategory)
}

func sortedCategories(m map[string]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(m))
	for name, amount := range m {
		out = append(out, CategoryAmount{Name: name, Amount: amount})
	}
	slices.SortFunc(out, func(a, b CategoryAmount) int { return cmp.Compare(a.Name, b.Name) })
	return out
}
