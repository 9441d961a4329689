package view

import (
	"context"

	"fintrack/internal/api"
	"fintrack/internal/core"
)

// DataSource is the remote store as the views consume it. *api.Client
// implements it; tests substitute fakes.
type DataSource interface {
	ListTransactions(ctx context.Context, f api.Filters, page, pageSize int) (api.Page[core.Transaction], error)
	GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
	CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, tx core.Transaction) (core.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, typ core.TransactionType) ([]core.Category, error)
	BudgetForMonth(ctx context.Context, month, year int) (*core.Budget, error)
	DashboardSummary(ctx context.Context, month, year int) (core.Summary, error)
}

// State tells "still loading", "data ready" and "load failed" apart, so an
// error is never rendered as a legitimately empty result.
type State int

const (
	Loading State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}
