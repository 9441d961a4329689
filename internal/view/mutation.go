package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// ErrMutationInFlight is returned when a create/update/delete is requested
// for a transaction that already has a mutation running. Concurrent
// mutations on one id are rejected rather than queued; the caller retries
// once the first settles.
var ErrMutationInFlight = errors.New("a change for this transaction is already in flight")

// Coordinator sequences transaction mutations against the remote store.
// Drafts are validated locally before anything touches the network, and
// the transaction type is derived from the selected category, never from
// user input.
type Coordinator struct {
	source DataSource
	logger *log.Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

func NewCoordinator(source DataSource, logger *log.Logger) *Coordinator {
	return &Coordinator{
		source:   source,
		logger:   logger.WithComponent(log.ComponentView),
		inFlight: make(map[int64]struct{}),
	}
}

func (c *Coordinator) acquire(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[id]; busy {
		return ErrMutationInFlight
	}
	c.inFlight[id] = struct{}{}
	return nil
}

func (c *Coordinator) release(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, id)
}

// Create validates the draft against the category list and posts it. On
// success the caller routes back to the listing.
func (c *Coordinator) Create(ctx context.Context, draft core.Draft, categories []core.Category) (core.Transaction, error) {
	payload, err := draft.Resolve(categories)
	if err != nil {
		return core.Transaction{}, err
	}
	created, err := c.source.CreateTransaction(ctx, payload)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	c.logger.InfoContext(ctx, "transaction created",
		log.FieldOperation, log.OpCreate,
		log.FieldTransactionID, created.ID,
		log.FieldAmountCents, created.Amount.Cents)
	return created, nil
}

// Update validates and replaces an existing transaction. Only one mutation
// per id may be in flight.
func (c *Coordinator) Update(ctx context.Context, id int64, draft core.Draft, categories []core.Category) (core.Transaction, error) {
	payload, err := draft.Resolve(categories)
	if err != nil {
		return core.Transaction{}, err
	}
	if err := c.acquire(id); err != nil {
		return core.Transaction{}, err
	}
	defer c.release(id)

	updated, err := c.source.UpdateTransaction(ctx, id, payload)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}
	c.logger.InfoContext(ctx, "transaction updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldTransactionID, id)
	return updated, nil
}

// Remove deletes a transaction. The caller prunes its cached listing on
// success instead of refetching.
func (c *Coordinator) Remove(ctx context.Context, id int64) error {
	if err := c.acquire(id); err != nil {
		return err
	}
	defer c.release(id)

	if err := c.source.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	c.logger.InfoContext(ctx, "transaction deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldTransactionID, id)
	return nil
}
