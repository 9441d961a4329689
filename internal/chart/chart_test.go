package chart

import (
	"math"
	"testing"

	"fintrack/internal/core"
)

func TestToBarSeriesParameterized(t *testing.T) {
	s := core.Summary{
		IncomeTotal:  core.Money{Cents: 10000},
		ExpenseTotal: core.Money{Cents: 5000},
		BudgetAmount: core.Money{Cents: 20000},
	}

	bars := ToBarSeries(s, IncomeVsExpenses)
	if len(bars) != 2 {
		t.Fatalf("len = %d", len(bars))
	}
	if bars[0].Label != "Income" || bars[0].Value != 100 {
		t.Fatalf("bars[0] = %+v", bars[0])
	}
	if bars[1].Label != "Expenses" || bars[1].Value != 50 {
		t.Fatalf("bars[1] = %+v", bars[1])
	}

	bars = ToBarSeries(s, BudgetVsExpenses)
	if bars[0].Label != "Budget" || bars[0].Value != 200 {
		t.Fatalf("budget bars = %+v", bars)
	}
}

func TestToPieSeriesProportionsSumToOne(t *testing.T) {
	breakdown := []core.CategoryTotal{
		{Category: "Food", Total: core.Money{Cents: 5000}},
		{Category: "Rent", Total: core.Money{Cents: 90000}},
		{Category: "Fun", Total: core.Money{Cents: 333}},
	}
	slices := ToPieSeries(breakdown)
	if len(slices) != 3 {
		t.Fatalf("len = %d", len(slices))
	}
	var sum float64
	for _, s := range slices {
		if s.Proportion < 0 || s.Proportion > 1 {
			t.Fatalf("proportion out of range: %+v", s)
		}
		sum += s.Proportion
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("proportions sum to %f, want 1", sum)
	}
}

func TestToPieSeriesZeroTotal(t *testing.T) {
	breakdown := []core.CategoryTotal{
		{Category: "A", Total: core.Money{Cents: 0}},
		{Category: "B", Total: core.Money{Cents: 0}},
	}
	for _, s := range ToPieSeries(breakdown) {
		if s.Proportion != 0 {
			t.Fatalf("zero total must give zero proportions: %+v", s)
		}
	}
	if got := ToPieSeries(nil); len(got) != 0 {
		t.Fatalf("nil breakdown: %+v", got)
	}
}
