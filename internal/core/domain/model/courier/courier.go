package courier

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

// ErrCourierIsNotConstructed is returned when using an improperly initialized
// Courier. Couriers must be created via NewCourier.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Status is the courier's account state in the directory.
type Status string

const (
	// Active couriers may be considered for dispatch.
	Active Status = "active"
	// Inactive couriers are off shift and never dispatched.
	Inactive Status = "inactive"
	// Suspended couriers are blocked by the platform.
	Suspended Status = "suspended"
)

// Courier is a read model over the courier directory: account state,
// momentary availability, last reported position and delivery record.
// This core never mutates couriers; it only selects among them.
type Courier struct {
	id              kernel.UUID
	name            string
	status          Status
	available       bool
	location        *kernel.GeoPoint
	rating          float64
	totalDeliveries int

	guard guard.ConstructorGuard
}

// NewCourier creates a courier directory entry.
// A nil location means the courier has not reported a position; such couriers
// are never dispatch candidates.
func NewCourier(
	id kernel.UUID,
	name string,
	status Status,
	available bool,
	location *kernel.GeoPoint,
	rating float64,
	totalDeliveries int,
) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Courier{
		id:              id,
		name:            name,
		status:          status,
		available:       available,
		location:        location,
		rating:          rating,
		totalDeliveries: totalDeliveries,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Courier was built via NewCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Status returns the courier's account state.
func (c *Courier) Status() Status {
	return c.status
}

// Available reports momentary availability for new deliveries.
func (c *Courier) Available() bool {
	return c.available
}

// Location returns the last reported position, or nil when unknown.
func (c *Courier) Location() *kernel.GeoPoint {
	return c.location
}

// Rating returns the courier's average customer rating.
func (c *Courier) Rating() float64 {
	return c.rating
}

// TotalDeliveries returns the courier's completed delivery count.
func (c *Courier) TotalDeliveries() int {
	return c.totalDeliveries
}

// IsDispatchable reports whether the courier can be considered for a new
// delivery: an active account, currently available, with a known position.
func (c *Courier) IsDispatchable() bool {
	return c.status == Active && c.available && c.location != nil
}
