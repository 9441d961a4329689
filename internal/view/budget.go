package view

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/api"
	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/report"
)

// budgetFetchPageSize is the page size used when collecting a whole month
// of transactions for client-side aggregation.
const budgetFetchPageSize = 100

// Budget drives the monthly budget overview. Unlike the dashboard it does
// not trust a server-side summary: it pulls the month's transactions and
// recomputes the totals locally, memoized on the fetched data.
type Budget struct {
	source  DataSource
	logger  *log.Logger
	timeout time.Duration

	mu         sync.Mutex
	generation uint64
	month      int
	year       int
	budget     *core.Budget
	rows       []core.Transaction
	memo       report.Memo
	state      State
	err        error
}

func NewBudget(source DataSource, logger *log.Logger, timeout time.Duration) *Budget {
	now := time.Now()
	return &Budget{
		source:  source,
		logger:  logger.WithComponent(log.ComponentView),
		timeout: timeout,
		month:   int(now.Month()),
		year:    now.Year(),
		state:   Loading,
	}
}

// SetMonth switches the overview to another month.
func (b *Budget) SetMonth(month, year int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if month == b.month && year == b.year {
		return
	}
	b.month = month
	b.year = year
	b.generation++
}

// monthBounds returns the first and last calendar day of (month, year).
func monthBounds(month, year int) (core.Date, core.Date) {
	first := core.NewDate(year, month, 1)
	last := core.Date{Time: first.AddDate(0, 1, -1)}
	return first, last
}

// Load fetches the month's budget row and every transaction dated inside
// the month, then recomputes the summary locally.
func (b *Budget) Load(ctx context.Context) error {
	b.mu.Lock()
	b.generation++
	gen := b.generation
	month, year := b.month, b.year
	b.state = Loading
	b.err = nil
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	first, last := monthBounds(month, year)
	filters := api.Filters{StartDate: first.String(), EndDate: last.String()}

	var (
		budget *core.Budget
		rows   []core.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budget, err = b.source.BudgetForMonth(gctx, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = b.collectMonth(gctx, filters)
		return err
	})
	err := g.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		b.logger.DebugContext(ctx, "discarding stale budget response",
			log.FieldGeneration, gen,
			log.FieldMonth, month,
			log.FieldYear, year)
		return nil
	}
	if err != nil {
		b.state = Failed
		b.err = err
		return err
	}
	b.budget = budget
	b.rows = rows
	b.state = Ready
	return nil
}

// collectMonth pages through the filtered listing until the whole month
// is gathered.
func (b *Budget) collectMonth(ctx context.Context, filters api.Filters) ([]core.Transaction, error) {
	var rows []core.Transaction
	for pageNum := 1; ; pageNum++ {
		pg, err := b.source.ListTransactions(ctx, filters, pageNum, budgetFetchPageSize)
		if err != nil {
			return nil, err
		}
		rows = append(rows, pg.Results...)
		if len(pg.Results) == 0 || len(rows) >= pg.Count {
			return rows, nil
		}
	}
}

// Snapshot returns the recomputed summary. BudgetSet comes straight from
// whether a budget row exists, never from the amount.
func (b *Budget) Snapshot() (core.Summary, State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != Ready {
		return core.Summary{}, b.state, b.err
	}
	return b.memo.Summarize(b.rows, b.budget), Ready, nil
}

// Data exposes the fetched month for persistence. It returns copies; nil
// rows until the view is Ready.
func (b *Budget) Data() ([]core.Transaction, *core.Budget) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != Ready {
		return nil, nil
	}
	rows := make([]core.Transaction, len(b.rows))
	copy(rows, b.rows)
	if b.budget == nil {
		return rows, nil
	}
	budget := *b.budget
	return rows, &budget
}

// Month returns the selected (month, year).
func (b *Budget) Month() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.month, b.year
}
