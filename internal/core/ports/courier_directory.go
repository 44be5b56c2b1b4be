package ports

import (
	"context"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"
)

// CourierDirectory is the read-side contract over the courier roster.
// The fulfillment core never mutates couriers; it only looks them up when
// an order becomes ready for pickup.
type CourierDirectory interface {
	// Get retrieves a courier by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves every courier that is active and marked
	// available. Callers still filter for a reported position before
	// dispatching.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
