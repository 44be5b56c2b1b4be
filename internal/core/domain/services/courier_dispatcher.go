package services

import (
	"errors"

	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"
)

// ErrNoCourierAvailable is returned when no courier can be dispatched:
// either no candidates were supplied or none of them is active, available
// and reporting a position. Callers treat this as a normal business outcome,
// not a failure; assignment is best-effort.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierDispatcher selects the courier best placed to pick up an order:
// the dispatchable candidate nearest to the restaurant by great-circle
// distance.
//
// The scan is a single O(n) pass over the candidate set; ties are broken by
// directory iteration order, first seen wins. Selection is best-effort and
// not exclusive: two orders becoming ready concurrently may pick the same
// courier, which the platform accepts.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// FindNearest returns the dispatchable courier closest to the pickup point.
//
// Candidates that are not active, not available, or without a reported
// position are skipped. Returns ErrNoCourierAvailable when nothing remains,
// or a validation error if a candidate was not properly constructed.
func (d CourierDispatcher) FindNearest(
	pickup kernel.GeoPoint,
	couriers []*courier.Courier,
) (*courier.Courier, error) {
	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	var (
		nearest  *courier.Courier
		bestDist float64
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsDispatchable() {
			continue
		}

		dist, err := c.Location().DistanceKm(pickup)
		if err != nil {
			return nil, err
		}

		if nearest == nil || dist < bestDist {
			nearest = c
			bestDist = dist
		}
	}

	if nearest == nil {
		return nil, ErrNoCourierAvailable
	}

	return nearest, nil
}
