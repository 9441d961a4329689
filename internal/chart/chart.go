// Package chart shapes aggregated totals into renderer-agnostic series.
// It performs no drawing and holds no reference to any output surface;
// the terminal renderer (or an export) consumes what it produces.
package chart

import "fintrack/internal/core"

// Bar is one labeled value in a bar comparison.
type Bar struct {
	Label string
	Value float64
}

// Slice is one pie segment. Proportion is the share of the total, in
// [0, 1]; when the whole pie sums to zero every proportion is zero.
type Slice struct {
	Category   string
	Value      float64
	Proportion float64
}

// BarExtractor picks the two labeled values a bar comparison shows. The
// transformer is parameterized this way instead of hardcoding one pairing.
type BarExtractor func(core.Summary) (Bar, Bar)

// IncomeVsExpenses compares the dashboard's two flow totals.
func IncomeVsExpenses(s core.Summary) (Bar, Bar) {
	return Bar{Label: "Income", Value: s.IncomeTotal.Float()},
		Bar{Label: "Expenses", Value: s.ExpenseTotal.Float()}
}

// BudgetVsExpenses compares the month's ceiling against what was spent.
func BudgetVsExpenses(s core.Summary) (Bar, Bar) {
	return Bar{Label: "Budget", Value: s.BudgetAmount.Float()},
		Bar{Label: "Expenses", Value: s.ExpenseTotal.Float()}
}

// ToBarSeries extracts a two-bar comparison from a summary.
func ToBarSeries(s core.Summary, extract BarExtractor) []Bar {
	a, b := extract(s)
	return []Bar{a, b}
}

// ToPieSeries converts a category breakdown into pie slices with
// proportions. A zero total yields zero proportions rather than dividing
// by zero.
func ToPieSeries(breakdown []core.CategoryTotal) []Slice {
	var totalCents int64
	for _, ct := range breakdown {
		totalCents += ct.Total.Cents
	}

	slices := make([]Slice, 0, len(breakdown))
	for _, ct := range breakdown {
		s := Slice{
			Category: ct.Category,
			Value:    ct.Total.Float(),
		}
		if totalCents != 0 {
			s.Proportion = float64(ct.Total.Cents) / float64(totalCents)
		}
		slices = append(slices, s)
	}
	return slices
}
