// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs; they never load full aggregates or modify state.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders matching a filter, narrowed to the
// requesting actor's visibility. The filter the caller supplies can only
// shrink under scoping, never widen: a customer asking for another
// restaurant's orders gets their own orders or a denial, never a leak.
type ListOrdersQuery struct {
	filter order.Filter
	actor  actor.Actor

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query for the given actor.
// The filter may be zero-valued to list everything the actor can see.
func NewListOrdersQuery(filter order.Filter, a actor.Actor) ListOrdersQuery {
	return ListOrdersQuery{
		filter: filter,
		actor:  a,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the caller-supplied filter before scoping.
func (q ListOrdersQuery) Filter() order.Filter {
	return q.filter
}

// Actor returns who is asking.
func (q ListOrdersQuery) Actor() actor.Actor {
	return q.actor
}
