package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/restaurant"
)

// RestaurantDirectory is the read-side contract over the restaurant
// catalog. The fulfillment core reads restaurant defaults (preparation
// time, delivery fee) and the pickup location for courier dispatch.
type RestaurantDirectory interface {
	// Get retrieves a restaurant by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
