package report

import (
	"testing"

	"fintrack/internal/core"
)

func tx(id int64, cents int64, typ core.TransactionType, category string) core.Transaction {
	return core.Transaction{
		ID:           id,
		Amount:       core.Money{Cents: cents},
		Type:         typ,
		CategoryName: category,
		Date:         core.NewDate(2025, 8, 1),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.IncomeTotal.Cents != 0 || s.ExpenseTotal.Cents != 0 || s.Balance.Cents != 0 {
		t.Fatalf("totals not zero: %+v", s)
	}
	if s.BudgetSet {
		t.Fatal("nil budget must report BudgetSet=false")
	}
	if len(s.ExpensesByCategory) != 0 {
		t.Fatalf("breakdown not empty: %+v", s.ExpensesByCategory)
	}
}

func TestSummarizeScenario(t *testing.T) {
	transactions := []core.Transaction{
		tx(1, 10000, core.Income, "Salary"),
		tx(2, 4000, core.Expense, "Food"),
		tx(3, 1000, core.Expense, "Food"),
	}
	budget := &core.Budget{ID: 1, Month: 8, Year: 2025, Amount: core.Money{Cents: 10000}}

	s := Summarize(transactions, budget)

	if s.IncomeTotal.Cents != 10000 {
		t.Fatalf("income = %d", s.IncomeTotal.Cents)
	}
	if s.ExpenseTotal.Cents != 5000 {
		t.Fatalf("expenses = %d", s.ExpenseTotal.Cents)
	}
	if s.Balance.Cents != 5000 {
		t.Fatalf("balance = %d", s.Balance.Cents)
	}
	if !s.BudgetSet || s.BudgetAmount.Cents != 10000 {
		t.Fatalf("budget = %+v", s)
	}
	if s.BudgetRemaining.Cents != 5000 {
		t.Fatalf("remaining = %d", s.BudgetRemaining.Cents)
	}
	if len(s.ExpensesByCategory) != 1 {
		t.Fatalf("breakdown = %+v", s.ExpensesByCategory)
	}
	if got := s.ExpensesByCategory[0]; got.Category != "Food" || got.Total.Cents != 5000 {
		t.Fatalf("breakdown[0] = %+v", got)
	}
}

func TestSummarizeBalanceIdentity(t *testing.T) {
	transactions := []core.Transaction{
		tx(1, 12345, core.Income, "Salary"),
		tx(2, 678, core.Expense, "Misc"),
		tx(3, 999999, core.Expense, "Rent"),
		tx(4, 1, core.Income, "Interest"),
	}
	s := Summarize(transactions, nil)
	if s.Balance.Cents != s.IncomeTotal.Cents-s.ExpenseTotal.Cents {
		t.Fatalf("balance %d != income %d - expenses %d", s.Balance.Cents, s.IncomeTotal.Cents, s.ExpenseTotal.Cents)
	}
}

func TestSummarizeNegativeRemaining(t *testing.T) {
	transactions := []core.Transaction{tx(1, 15000, core.Expense, "Rent")}
	budget := &core.Budget{Amount: core.Money{Cents: 10000}}
	s := Summarize(transactions, budget)
	if s.BudgetRemaining.Cents != -5000 {
		t.Fatalf("remaining = %d, want -5000", s.BudgetRemaining.Cents)
	}
}

func TestSummarizeZeroBudgetDistinctFromMissing(t *testing.T) {
	zero := &core.Budget{Amount: core.Money{Cents: 0}}
	withZero := Summarize(nil, zero)
	without := Summarize(nil, nil)

	if !withZero.BudgetSet {
		t.Fatal("explicit zero budget must report BudgetSet=true")
	}
	if without.BudgetSet {
		t.Fatal("missing budget must report BudgetSet=false")
	}
	if withZero.BudgetAmount != without.BudgetAmount {
		t.Fatal("amounts agree; only the flag distinguishes them")
	}
}

func TestSummarizeStableCategoryOrder(t *testing.T) {
	transactions := []core.Transaction{
		tx(1, 100, core.Expense, "B"),
		tx(2, 100, core.Expense, "A"),
		tx(3, 100, core.Expense, "B"),
		tx(4, 100, core.Expense, "C"),
	}
	want := []string{"B", "A", "C"}
	for i := 0; i < 5; i++ {
		s := Summarize(transactions, nil)
		for j, ct := range s.ExpensesByCategory {
			if ct.Category != want[j] {
				t.Fatalf("run %d: order = %+v, want %v", i, s.ExpensesByCategory, want)
			}
		}
	}
}

func TestMemoReusesResultForIdenticalInput(t *testing.T) {
	transactions := []core.Transaction{
		tx(1, 100, core.Income, "Salary"),
		tx(2, 40, core.Expense, "Food"),
	}
	var m Memo
	first := m.Summarize(transactions, nil)
	second := m.Summarize(transactions, nil)
	if first.IncomeTotal != second.IncomeTotal || first.Balance != second.Balance {
		t.Fatalf("memo changed result: %+v vs %+v", first, second)
	}

	// A changed amount must invalidate the cached entry.
	transactions[1].Amount = core.Money{Cents: 90}
	third := m.Summarize(transactions, nil)
	if third.ExpenseTotal.Cents != 90 {
		t.Fatalf("memo served stale result: %+v", third)
	}

	// Adding a budget changes the fingerprint too.
	fourth := m.Summarize(transactions, &core.Budget{ID: 9, Amount: core.Money{Cents: 500}})
	if !fourth.BudgetSet || fourth.BudgetRemaining.Cents != 410 {
		t.Fatalf("budget not applied: %+v", fourth)
	}
}
