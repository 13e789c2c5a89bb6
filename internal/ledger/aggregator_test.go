package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func scenarioLedger(t *testing.T) *Ledger {
	t.Helper()
	l := New()
	if err := l.LoadFrom([]string{
		"INCOME,50000,Salary,2025-05-01",
		"EXPENSE,450,Food,2025-05-12",
		"EXPENSE,1200,Rent,2025-06-01",
	}); err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	return l
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarizeScenario(t *testing.T) {
	l := scenarioLedger(t)

	may := Summarize(l, "2025-05")
	if !may.TotalIncome.Equal(dec("50000")) {
		t.Errorf("TotalIncome = %s, want 50000", may.TotalIncome)
	}
	if !may.TotalExpense.Equal(dec("450")) {
		t.Errorf("TotalExpense = %s, want 450", may.TotalExpense)
	}
	if !may.NetSavings.Equal(dec("49550")) {
		t.Errorf("NetSavings = %s, want 49550", may.NetSavings)
	}
	if len(may.IncomeByCategory) != 1 || !may.IncomeByCategory["Salary"].Equal(dec("50000")) {
		t.Errorf("IncomeByCategory = %v, want {Salary:50000}", may.IncomeByCategory)
	}
	if len(may.ExpenseByCategory) != 1 || !may.ExpenseByCategory["Food"].Equal(dec("450")) {
		t.Errorf("ExpenseByCategory = %v, want {Food:450}", may.ExpenseByCategory)
	}

	june := Summarize(l, "2025-06")
	if !june.TotalIncome.IsZero() {
		t.Errorf("June TotalIncome = %s, want 0", june.TotalIncome)
	}
	if !june.TotalExpense.Equal(dec("1200")) {
		t.Errorf("June TotalExpense = %s, want 1200", june.TotalExpense)
	}
	if !june.NetSavings.Equal(dec("-1200")) {
		t.Errorf("June NetSavings = %s, want -1200", june.NetSavings)
	}
}

func TestSummarizeNoMatch(t *testing.T) {
	l := scenarioLedger(t)
	for _, filter := range []string{"2025-5", "2025", "", "2024-05", "2025-05-01"} {
		t.Run(filter, func(t *testing.T) {
			s := Summarize(l, filter)
			if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.NetSavings.IsZero() {
				t.Errorf("filter %q: expected zero totals, got %+v", filter, s)
			}
			if !s.IsEmpty() {
				t.Errorf("filter %q: expected empty breakdowns", filter)
			}
		})
	}
}

func TestSummarizeEmptyLedger(t *testing.T) {
	for _, l := range []*Ledger{New(), nil} {
		s := Summarize(l, "2025-05")
		if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.NetSavings.IsZero() {
			t.Fatalf("expected zero totals, got %+v", s)
		}
		if s.IncomeByCategory == nil || s.ExpenseByCategory == nil || !s.IsEmpty() {
			t.Fatalf("expected empty non-nil maps")
		}
	}
}

func TestSummarizeAccumulatesCategories(t *testing.T) {
	l := New()
	if err := l.LoadFrom([]string{
		"INCOME,1000.50,Salary,2025-05-01",
		"INCOME,200,Business,2025-05-03",
		"INCOME,0.50,Salary,2025-05-20",
		"EXPENSE,10,Food,2025-05-02",
		"EXPENSE,15.25,Food,2025-05-09",
		"EXPENSE,-5,Food,2025-05-10",
		"EXPENSE,99,food,2025-05-11",
		"EXPENSE,500,Rent,2025-04-30",
	}); err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	s := Summarize(l, "2025-05")
	if !s.TotalIncome.Equal(dec("1201")) {
		t.Errorf("TotalIncome = %s, want 1201", s.TotalIncome)
	}
	if !s.IncomeByCategory["Salary"].Equal(dec("1001")) {
		t.Errorf("Salary = %s, want 1001", s.IncomeByCategory["Salary"])
	}
	if !s.ExpenseByCategory["Food"].Equal(dec("20.25")) {
		t.Errorf("Food = %s, want 20.25 (negative amounts propagate)", s.ExpenseByCategory["Food"])
	}
	if !s.ExpenseByCategory["food"].Equal(dec("99")) {
		t.Errorf("food = %s, want 99 (case-sensitive)", s.ExpenseByCategory["food"])
	}
	if _, ok := s.ExpenseByCategory["Rent"]; ok {
		t.Error("April rent must not be included")
	}
	if !s.TotalIncome.Sub(s.TotalExpense).Equal(s.NetSavings) {
		t.Errorf("NetSavings %s != income - expense", s.NetSavings)
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	l := scenarioLedger(t)
	a := Summarize(l, "2025-05")
	b := Summarize(l, "2025-05")
	if !a.TotalIncome.Equal(b.TotalIncome) || !a.TotalExpense.Equal(b.TotalExpense) || !a.NetSavings.Equal(b.NetSavings) {
		t.Fatalf("summaries differ: %+v vs %+v", a, b)
	}
	if len(a.IncomeByCategory) != len(b.IncomeByCategory) || len(a.ExpenseByCategory) != len(b.ExpenseByCategory) {
		t.Fatalf("breakdowns differ")
	}
	if l.Size() != 3 {
		t.Fatalf("Summarize must not modify the ledger")
	}
}
