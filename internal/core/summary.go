package core

// CategoryTotal is an expense total aggregated under one category name.
type CategoryTotal struct {
	Category string `json:"category_name"`
	Total    Money  `json:"total"`
}

// Summary holds the aggregated totals a dashboard is built from. It is
// derived data: recomputed from its inputs, never persisted client-side.
//
// BudgetSet distinguishes "no budget configured" from an explicit budget
// of zero; BudgetAmount alone cannot tell those apart.
type Summary struct {
	IncomeTotal        Money           `json:"income_total"`
	ExpenseTotal       Money           `json:"expense_total"`
	Balance            Money           `json:"balance"`
	BudgetAmount       Money           `json:"budget_amount"`
	BudgetRemaining    Money           `json:"budget_remaining"`
	BudgetSet          bool            `json:"budget_set"`
	ExpensesByCategory []CategoryTotal `json:"expenses_by_category"`
}
