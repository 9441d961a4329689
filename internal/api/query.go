package api

import (
	"net/url"
	"strconv"
)

// Filters is the listing filter state. Every field is optional; empty
// strings mean "not filtering on this". Values stay strings as entered so
// the query builder never has to distinguish unset from zero.
type Filters struct {
	StartDate string
	EndDate   string
	Category  string
	MinAmount string
	MaxAmount string
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// BuildListQuery translates filter and pagination state into request
// parameters. Empty filter values are omitted entirely rather than sent as
// empty parameters, so the remote store never sees "" as a literal filter.
// page and page_size are always present.
func BuildListQuery(f Filters, page, pageSize int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))

	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("start_date", f.StartDate)
	set("end_date", f.EndDate)
	set("category", f.Category)
	set("min_amount", f.MinAmount)
	set("max_amount", f.MaxAmount)

	return q
}
