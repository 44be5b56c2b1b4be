// Package ports defines repository and gateway interfaces for the order
// fulfillment core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and updating orders, plus the
// storefront-specific operations: order numbering and the one-shot
// preparation time change.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextSequenceNumber reserves and returns the next customer-facing
	// order number. Numbers are monotonic and never reused, including
	// for orders that are later cancelled.
	NextSequenceNumber(ctx context.Context) (int64, error)

	// UpdatePrepTime persists a preparation time change only if the
	// order's prep time has never been changed before. The check and the
	// write happen in a single statement, so two concurrent attempts
	// cannot both succeed. Returns order.ErrPrepTimeAlreadyChanged when
	// the one-shot window was already consumed.
	UpdatePrepTime(ctx context.Context, aggregate *order.Order) error

	// GetAllStaleAwaitingPayment retrieves orders that have been sitting
	// in awaiting payment since before the given cutoff. Used by the
	// stale checkout sweeper.
	GetAllStaleAwaitingPayment(ctx context.Context, before time.Time) ([]*order.Order, error)
}
