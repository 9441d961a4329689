package api

import (
	"context"
	"net/http"
	"strconv"

	"fintrack/internal/core"
)

// Page is the pagination envelope list endpoints return. Count is the
// total matching rows across all pages, not len(Results).
type Page[T any] struct {
	Results []T `json:"results"`
	Count   int `json:"count"`
}

// ListTransactions fetches one page of the filtered listing.
func (c *Client) ListTransactions(ctx context.Context, f Filters, page, pageSize int) (Page[core.Transaction], error) {
	var out Page[core.Transaction]
	q := BuildListQuery(f, page, pageSize)
	if err := c.do(ctx, http.MethodGet, "transactions/", q, nil, &out); err != nil {
		return Page[core.Transaction]{}, err
	}
	return out, nil
}

// GetTransaction fetches a single transaction, typically to pre-fill an
// edit form. A missing id surfaces as ErrNotFound.
func (c *Client) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	var out core.Transaction
	path := "transactions/" + strconv.FormatInt(id, 10) + "/"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return core.Transaction{}, err
	}
	return out, nil
}

func (c *Client) CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	var out core.Transaction
	if err := c.do(ctx, http.MethodPost, "transactions/", nil, tx, &out); err != nil {
		return core.Transaction{}, err
	}
	return out, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id int64, tx core.Transaction) (core.Transaction, error) {
	var out core.Transaction
	path := "transactions/" + strconv.FormatInt(id, 10) + "/"
	if err := c.do(ctx, http.MethodPut, path, nil, tx, &out); err != nil {
		return core.Transaction{}, err
	}
	return out, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	path := "transactions/" + strconv.FormatInt(id, 10) + "/"
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
