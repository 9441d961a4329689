package view

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// Dashboard drives the summary screen. The totals come from the server's
// summary endpoint; the month's budget row is fetched alongside because
// the summary alone cannot distinguish a missing budget from a zero one.
type Dashboard struct {
	source  DataSource
	logger  *log.Logger
	timeout time.Duration

	mu         sync.Mutex
	generation uint64
	month      int
	year       int
	summary    core.Summary
	state      State
	err        error
}

func NewDashboard(source DataSource, logger *log.Logger, timeout time.Duration) *Dashboard {
	now := time.Now()
	return &Dashboard{
		source:  source,
		logger:  logger.WithComponent(log.ComponentView),
		timeout: timeout,
		month:   int(now.Month()),
		year:    now.Year(),
		state:   Loading,
	}
}

// SetMonth switches the dashboard to another month, invalidating any
// fetch still in flight.
func (d *Dashboard) SetMonth(month, year int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if month == d.month && year == d.year {
		return
	}
	d.month = month
	d.year = year
	d.generation++
}

// Load fetches the server summary and the month's budget concurrently and
// combines them. Either failing marks the view Failed; partial data is
// never shown.
func (d *Dashboard) Load(ctx context.Context) error {
	d.mu.Lock()
	d.generation++
	gen := d.generation
	month, year := d.month, d.year
	d.state = Loading
	d.err = nil
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var (
		summary core.Summary
		budget  *core.Budget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = d.source.DashboardSummary(gctx, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		budget, err = d.source.BudgetForMonth(gctx, month, year)
		return err
	})
	err := g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		d.logger.DebugContext(ctx, "discarding stale summary response",
			log.FieldGeneration, gen,
			log.FieldMonth, month,
			log.FieldYear, year)
		return nil
	}
	if err != nil {
		d.state = Failed
		d.err = err
		return err
	}
	summary.BudgetSet = budget != nil
	d.summary = summary
	d.state = Ready
	return nil
}

// Snapshot returns the current summary state for rendering.
func (d *Dashboard) Snapshot() (core.Summary, State, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary, d.state, d.err
}

// Month returns the selected (month, year).
func (d *Dashboard) Month() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.month, d.year
}
