package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"fintrack/internal/core"
)

// ListCategories fetches the category reference list, optionally narrowed
// to one transaction type. Categories are read-only for this client.
func (c *Client) ListCategories(ctx context.Context, typ core.TransactionType) ([]core.Category, error) {
	var q url.Values
	if typ != "" {
		q = url.Values{"type": {string(typ)}}
	}
	var out Page[core.Category]
	if err := c.do(ctx, http.MethodGet, "categories/", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// BudgetForMonth returns the budget configured for (month, year), or nil
// when none exists. The endpoint answers with an array; at most one entry
// exists per month, so the first element wins.
func (c *Client) BudgetForMonth(ctx context.Context, month, year int) (*core.Budget, error) {
	q := url.Values{
		"month": {strconv.Itoa(month)},
		"year":  {strconv.Itoa(year)},
	}
	var out []core.Budget
	if err := c.do(ctx, http.MethodGet, "budgets/", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	b := out[0]
	return &b, nil
}

// wireSummary matches the dashboard endpoint's response shape. The
// category key carries the ORM's double-underscore join name.
type wireSummary struct {
	IncomeTotal  core.Money `json:"income_total"`
	ExpenseTotal core.Money `json:"expense_total"`
	Balance      core.Money `json:"balance"`
	BudgetAmount core.Money `json:"budget_amount"`
	BudgetLeft   core.Money `json:"budget_remaining"`
	ByCategory   []struct {
		Name  string     `json:"category__name"`
		Total core.Money `json:"total"`
	} `json:"expenses_by_category"`
}

// DashboardSummary fetches the server-computed summary for a month. Pass
// zero month/year to let the server default to the current month. The
// endpoint cannot distinguish a missing budget from a zero one, so
// Summary.BudgetSet is left false here; callers that need the distinction
// pair this with BudgetForMonth.
func (c *Client) DashboardSummary(ctx context.Context, month, year int) (core.Summary, error) {
	var q url.Values
	if month > 0 && year > 0 {
		q = url.Values{
			"month": {strconv.Itoa(month)},
			"year":  {strconv.Itoa(year)},
		}
	}
	var wire wireSummary
	if err := c.do(ctx, http.MethodGet, "dashboard/", q, nil, &wire); err != nil {
		return core.Summary{}, err
	}

	s := core.Summary{
		IncomeTotal:     wire.IncomeTotal,
		ExpenseTotal:    wire.ExpenseTotal,
		Balance:         wire.Balance,
		BudgetAmount:    wire.BudgetAmount,
		BudgetRemaining: wire.BudgetLeft,
	}
	for _, e := range wire.ByCategory {
		s.ExpensesByCategory = append(s.ExpensesByCategory, core.CategoryTotal{
			Category: e.Name,
			Total:    e.Total,
		})
	}
	return s, nil
}
