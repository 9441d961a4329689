// Package report turns a transaction set and a budget into dashboard
// totals. Summarize is a pure function: it owns no state, performs no I/O
// and works entirely in integer cents.
package report

import "fintrack/internal/core"

// Summarize computes the dashboard totals for a transaction set.
//
// A nil budget means "not configured" and yields a zero budget amount with
// Summary.BudgetSet false, which is how the presentation layer tells it
// apart from an explicit zero budget. BudgetRemaining may go negative;
// overspending is a valid state, not an error.
//
// The category breakdown lists expense categories in first-seen order, so
// repeated calls on identical input produce identical output.
func Summarize(transactions []core.Transaction, budget *core.Budget) core.Summary {
	var income, expense core.Money

	order := make([]string, 0, 8)
	byCategory := make(map[string]core.Money, 8)

	for _, tx := range transactions {
		switch tx.Type {
		case core.Income:
			income = income.Add(tx.Amount)
		case core.Expense:
			expense = expense.Add(tx.Amount)
			name := tx.CategoryName
			if _, seen := byCategory[name]; !seen {
				order = append(order, name)
			}
			byCategory[name] = byCategory[name].Add(tx.Amount)
		}
	}

	s := core.Summary{
		IncomeTotal:        income,
		ExpenseTotal:       expense,
		Balance:            income.Sub(expense),
		ExpensesByCategory: make([]core.CategoryTotal, 0, len(order)),
	}
	for _, name := range order {
		s.ExpensesByCategory = append(s.ExpensesByCategory, core.CategoryTotal{
			Category: name,
			Total:    byCategory[name],
		})
	}

	if budget != nil {
		s.BudgetSet = true
		s.BudgetAmount = budget.Amount
	}
	s.BudgetRemaining = s.BudgetAmount.Sub(expense)

	return s
}
