// Package restaurant provides the read model over the restaurant directory.
// The order core consumes a restaurant's coordinates for courier dispatch
// and its default preparation time and delivery fee at checkout; it never
// mutates restaurants.
package restaurant

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrRestaurantIsNotConstructed is returned when using an improperly
// initialized Restaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the directory entry the order core reads at checkout and
// during courier dispatch. A nil location means the restaurant was never
// geocoded; dispatch then quietly skips courier assignment.
type Restaurant struct {
	id                  kernel.UUID
	name                string
	location            *kernel.GeoPoint
	defaultPrepTimeMins int
	deliveryFee         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant directory entry.
func NewRestaurant(
	id kernel.UUID,
	name string,
	location *kernel.GeoPoint,
	defaultPrepTimeMins int,
	deliveryFee decimal.Decimal,
) (*Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Restaurant{
		id:                  id,
		name:                name,
		location:            location,
		defaultPrepTimeMins: defaultPrepTimeMins,
		deliveryFee:         deliveryFee,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Restaurant was built via NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Location returns the restaurant's coordinates, or nil when not geocoded.
func (r *Restaurant) Location() *kernel.GeoPoint {
	return r.location
}

// DefaultPrepTimeMinutes returns the restaurant's default preparation time.
func (r *Restaurant) DefaultPrepTimeMinutes() int {
	return r.defaultPrepTimeMins
}

// DeliveryFee returns the restaurant's configured delivery fee.
func (r *Restaurant) DeliveryFee() decimal.Decimal {
	return r.deliveryFee
}
