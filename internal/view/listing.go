// Package view holds the controllers behind each screen: the filtered
// transaction listing, the dashboard and the monthly budget overview.
//
// Every controller tags its fetches with a generation number. Filter and
// page changes bump the generation, so a response that arrives for an
// older combination is discarded instead of overwriting newer state.
package view

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/api"
	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/page"
)

const categoryCacheKey = "categories"

// Listing drives the paginated, filtered transaction list. It owns the
// listing slice exclusively: a successful fetch replaces it wholesale and
// a successful delete removes one entry; nothing else mutates it.
type Listing struct {
	source  DataSource
	logger  *log.Logger
	muts    *Coordinator
	timeout time.Duration

	mu         sync.Mutex
	generation uint64
	filters    api.Filters
	pager      *page.Controller
	rows       []core.Transaction
	count      int
	state      State
	err        error

	categories *cache.Store[[]core.Category]
}

func NewListing(source DataSource, logger *log.Logger, pageSize int, timeout, categoryTTL time.Duration) *Listing {
	return &Listing{
		source:     source,
		logger:     logger.WithComponent(log.ComponentView),
		muts:       NewCoordinator(source, logger),
		timeout:    timeout,
		pager:      page.NewController(pageSize),
		state:      Loading,
		categories: cache.New[[]core.Category](1, categoryTTL),
	}
}

// SetFilters replaces the filter state and resets to page 1. Any in-flight
// fetch is invalidated; the caller follows up with Load.
func (l *Listing) SetFilters(f api.Filters) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f == l.filters {
		return
	}
	l.filters = f
	l.pager.Reset()
	l.generation++
}

// GoToPage moves to targetPage and reports whether a refetch is needed.
func (l *Listing) GoToPage(targetPage int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.pager.GoTo(targetPage) {
		return false
	}
	l.generation++
	return true
}

// Load fetches the current page and the category reference list. The two
// requests run concurrently; they populate disjoint state, so their
// relative order does not matter. A category failure is logged and
// tolerated, a listing failure puts the view into the Failed state.
func (l *Listing) Load(ctx context.Context) error {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	f := l.filters
	pageNum := l.pager.Page()
	pageSize := l.pager.PageSize()
	l.state = Loading
	l.err = nil
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	var listing api.Page[core.Transaction]
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		listing, err = l.source.ListTransactions(gctx, f, pageNum, pageSize)
		return err
	})
	g.Go(func() error {
		if _, ok := l.categories.Get(categoryCacheKey); ok {
			return nil
		}
		cats, err := l.source.ListCategories(gctx, "")
		if err != nil {
			l.logger.WarnContext(gctx, "category fetch failed", log.FieldError, err)
			return nil
		}
		l.categories.Set(categoryCacheKey, cats)
		return nil
	})
	err := g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		l.logger.DebugContext(ctx, "discarding stale listing response",
			log.FieldGeneration, gen, log.FieldPage, pageNum)
		return nil
	}
	if err != nil {
		l.state = Failed
		l.err = err
		return err
	}
	l.rows = listing.Results
	l.count = listing.Count
	l.pager.ApplyResult(listing.Count)
	l.state = Ready
	l.logger.DebugContext(ctx, "listing loaded",
		log.FieldPage, pageNum,
		log.FieldCount, listing.Count)
	return nil
}

// Snapshot returns the current listing state for rendering.
func (l *Listing) Snapshot() (rows []core.Transaction, count int, state State, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rows, l.count, l.state, l.err
}

func (l *Listing) Page() int       { return l.pageField(func(p *page.Controller) int { return p.Page() }) }
func (l *Listing) TotalPages() int { return l.pageField(func(p *page.Controller) int { return p.TotalPages() }) }

func (l *Listing) pageField(get func(*page.Controller) int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return get(l.pager)
}

// Filters returns the active filter state.
func (l *Listing) Filters() api.Filters {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filters
}

// Categories returns the cached reference list, fetching it on a miss.
func (l *Listing) Categories(ctx context.Context) ([]core.Category, error) {
	if cats, ok := l.categories.Get(categoryCacheKey); ok {
		return cats, nil
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	cats, err := l.source.ListCategories(ctx, "")
	if err != nil {
		return nil, err
	}
	l.categories.Set(categoryCacheKey, cats)
	return cats, nil
}

// Create validates and submits a new transaction. A nil error is the
// signal to route back to the listing.
func (l *Listing) Create(ctx context.Context, draft core.Draft) (core.Transaction, error) {
	cats, err := l.Categories(ctx)
	if err != nil {
		return core.Transaction{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	return l.muts.Create(ctx, draft, cats)
}

// Update validates and submits changes to an existing transaction.
func (l *Listing) Update(ctx context.Context, id int64, draft core.Draft) (core.Transaction, error) {
	cats, err := l.Categories(ctx)
	if err != nil {
		return core.Transaction{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	return l.muts.Update(ctx, id, draft, cats)
}

// Delete removes a transaction remotely and prunes it from the local
// listing without refetching. The local count drops with it; the server's
// authoritative count catches up on the next paginated fetch.
func (l *Listing) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	if err := l.muts.Remove(ctx, id); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.rows[:0]
	for _, tx := range l.rows {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	if len(kept) < len(l.rows) {
		l.rows = kept
		l.count--
	}
	return nil
}

// Get fetches one transaction for edit pre-fill.
func (l *Listing) Get(ctx context.Context, id int64) (core.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	return l.source.GetTransaction(ctx, id)
}
