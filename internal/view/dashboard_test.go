package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/api"
	"fintrack/internal/core"
)

func TestDashboardBudgetSet(t *testing.T) {
	summary := core.Summary{
		IncomeTotal:  core.Money{Cents: 10000},
		ExpenseTotal: core.Money{Cents: 5000},
		Balance:      core.Money{Cents: 5000},
	}
	tests := []struct {
		name    string
		budget  *core.Budget
		wantSet bool
	}{
		{"no budget row", nil, false},
		{"zero budget row", &core.Budget{ID: 1, Month: 8, Year: 2025}, true},
		{"funded budget row", &core.Budget{ID: 1, Month: 8, Year: 2025, Amount: core.Money{Cents: 10000}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{summary: summary, budget: tt.budget}
			d := NewDashboard(src, testLogger(), 5*time.Second)
			if err := d.Load(context.Background()); err != nil {
				t.Fatalf("load: %v", err)
			}
			got, state, err := d.Snapshot()
			if state != Ready || err != nil {
				t.Fatalf("state=%v err=%v", state, err)
			}
			if got.BudgetSet != tt.wantSet {
				t.Fatalf("BudgetSet = %v, want %v", got.BudgetSet, tt.wantSet)
			}
		})
	}
}

func TestDashboardEitherFailureFailsWhole(t *testing.T) {
	src := &fakeSource{budgetErr: errors.New("budget endpoint down")}
	d := NewDashboard(src, testLogger(), 5*time.Second)
	if err := d.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if _, state, err := d.Snapshot(); state != Failed || err == nil {
		t.Fatalf("state=%v err=%v", state, err)
	}
}

func TestDashboardStaleResponseDiscarded(t *testing.T) {
	src := &fakeSource{
		summary: core.Summary{IncomeTotal: core.Money{Cents: 100}},
		budget:  &core.Budget{ID: 1, Month: 8, Year: 2025},
	}
	d := NewDashboard(src, testLogger(), 5*time.Second)
	d.SetMonth(8, 2025)

	// The user switches month while the fetch is in flight; the response
	// for the old month must be dropped on the floor.
	fired := false
	src.onSummary = func() {
		if !fired {
			fired = true
			d.SetMonth(7, 2025)
		}
	}
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, state, _ := d.Snapshot()
	if got.BudgetSet || got.IncomeTotal.Cents != 0 {
		t.Fatalf("stale summary applied: %+v", got)
	}
	if state != Loading {
		t.Fatalf("state = %v, want still Loading", state)
	}

	src.onSummary = nil
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got, state, _ := d.Snapshot(); state != Ready || got.IncomeTotal.Cents != 100 {
		t.Fatalf("fresh fetch: state=%v summary=%+v", state, got)
	}
}

func TestBudgetViewRecomputesLocally(t *testing.T) {
	month := []core.Transaction{
		{ID: 1, Amount: core.Money{Cents: 10000}, Type: core.Income, CategoryName: "Salary", Date: core.NewDate(2025, 8, 1)},
		{ID: 2, Amount: core.Money{Cents: 4000}, Type: core.Expense, CategoryName: "Food", Date: core.NewDate(2025, 8, 10)},
		{ID: 3, Amount: core.Money{Cents: 1000}, Type: core.Expense, CategoryName: "Food", Date: core.NewDate(2025, 8, 12)},
	}
	src := &fakeSource{
		listing: api.Page[core.Transaction]{Results: month, Count: len(month)},
		budget:  &core.Budget{ID: 1, Month: 8, Year: 2025, Amount: core.Money{Cents: 10000}},
	}
	b := NewBudget(src, testLogger(), 5*time.Second)
	b.SetMonth(8, 2025)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, state, err := b.Snapshot()
	if state != Ready || err != nil {
		t.Fatalf("state=%v err=%v", state, err)
	}
	if got.ExpenseTotal.Cents != 5000 || got.IncomeTotal.Cents != 10000 {
		t.Fatalf("totals: income=%d expense=%d", got.IncomeTotal.Cents, got.ExpenseTotal.Cents)
	}
	if got.BudgetRemaining.Cents != 5000 || !got.BudgetSet {
		t.Fatalf("remaining=%d set=%v", got.BudgetRemaining.Cents, got.BudgetSet)
	}
	if len(got.ExpensesByCategory) != 1 || got.ExpensesByCategory[0].Category != "Food" {
		t.Fatalf("breakdown: %+v", got.ExpensesByCategory)
	}
}

func TestBudgetViewCollectsAllPages(t *testing.T) {
	pageOne := make([]core.Transaction, budgetFetchPageSize)
	for i := range pageOne {
		pageOne[i] = core.Transaction{ID: int64(i + 1), Amount: core.Money{Cents: 100}, Type: core.Expense, CategoryName: "Misc"}
	}
	pageTwo := []core.Transaction{
		{ID: 200, Amount: core.Money{Cents: 100}, Type: core.Expense, CategoryName: "Misc"},
	}
	total := len(pageOne) + len(pageTwo)
	src := &fakeSource{pages: map[int]api.Page[core.Transaction]{
		1: {Results: pageOne, Count: total},
		2: {Results: pageTwo, Count: total},
	}}
	b := NewBudget(src, testLogger(), 5*time.Second)
	b.SetMonth(8, 2025)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, _, _ := b.Snapshot()
	wantCents := int64(total) * 100
	if got.ExpenseTotal.Cents != wantCents {
		t.Fatalf("expense total = %d, want %d (all pages collected)", got.ExpenseTotal.Cents, wantCents)
	}
	if src.listCalls != 2 {
		t.Fatalf("list calls = %d, want 2", src.listCalls)
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		month, year int
		first, last string
	}{
		{8, 2025, "2025-08-01", "2025-08-31"},
		{2, 2024, "2024-02-01", "2024-02-29"},
		{2, 2025, "2025-02-01", "2025-02-28"},
		{12, 2025, "2025-12-01", "2025-12-31"},
	}
	for _, tt := range tests {
		first, last := monthBounds(tt.month, tt.year)
		if first.String() != tt.first || last.String() != tt.last {
			t.Errorf("monthBounds(%d, %d) = %s..%s, want %s..%s",
				tt.month, tt.year, first, last, tt.first, tt.last)
		}
	}
}
