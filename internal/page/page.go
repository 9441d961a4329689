// Package page tracks listing pagination state. A Controller is the single
// source of truth for the current page; nothing else derives or stores it.
package page

type Controller struct {
	page       int
	pageSize   int
	totalPages int
}

// NewController starts on page 1 with an unknown result set, which counts
// as a single page so navigation controls stay well-defined.
func NewController(pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Controller{page: 1, pageSize: pageSize, totalPages: 1}
}

// ApplyResult derives the page count from a result envelope's total row
// count. An empty result set still reports one page.
func (c *Controller) ApplyResult(count int) {
	if count < 0 {
		count = 0
	}
	pages := (count + c.pageSize - 1) / c.pageSize
	if pages < 1 {
		pages = 1
	}
	c.totalPages = pages
	if c.page > c.totalPages {
		c.page = c.totalPages
	}
}

// GoTo moves to targetPage and reports whether a refetch is required.
// Out-of-range targets are rejected without changing state.
func (c *Controller) GoTo(targetPage int) bool {
	if targetPage < 1 || targetPage > c.totalPages || targetPage == c.page {
		return false
	}
	c.page = targetPage
	return true
}

// Reset returns to page 1, as any filter change invalidates pagination.
func (c *Controller) Reset() {
	c.page = 1
	c.totalPages = 1
}

func (c *Controller) Page() int       { return c.page }
func (c *Controller) PageSize() int   { return c.pageSize }
func (c *Controller) TotalPages() int { return c.totalPages }
