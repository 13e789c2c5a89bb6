package ledger

import "bilancio/internal/core"

// Summarize computes the totals and category breakdowns of every record
// whose ISO date starts with yearMonth. The match is a plain text
// comparison of the first seven characters, so a malformed filter such
// as "2025-5" matches nothing.
func Summarize(l *Ledger, yearMonth string) core.MonthSummary {
	s := core.NewMonthSummary(yearMonth)
	if l == nil {
		return s
	}

	for _, r := range l.records {
		if r.Date().YearMonth() != yearMonth {
			continue
		}
		switch r.Kind() {
		case core.Income:
			s.TotalIncome = s.TotalIncome.Add(r.Amount())
			s.IncomeByCategory[r.Category()] = s.IncomeByCategory[r.Category()].Add(r.Amount())
		case core.Expense:
			s.TotalExpense = s.TotalExpense.Add(r.Amount())
			s.ExpenseByCategory[r.Category()] = s.ExpenseByCategory[r.Category()].Add(r.Amount())
		}
	}

	s.NetSavings = s.TotalIncome.Sub(s.TotalExpense)
	return s
}
