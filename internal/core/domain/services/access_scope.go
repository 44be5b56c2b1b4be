package services

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ErrAccessDenied is returned when an actor has no resolvable access scope.
// Callers must surface this as an outright denial, never as an empty result
// set: "you may not query this" must stay distinguishable from "the query
// matched nothing".
var ErrAccessDenied = errors.New("access denied")

// AccessScope decides which orders an actor may see or mutate.
//
// Rules, in precedence order:
//  1. admin role or admin user type: full access, no narrowing
//  2. restaurant operators: only orders of their own restaurant
//  3. couriers: only orders assigned to them
//  4. customers (or the generic user role): only orders matching their
//     email, compared case-insensitively on single records
//  5. anything else: denied
type AccessScope struct{}

// NewAccessScope creates a new AccessScope instance.
func NewAccessScope() AccessScope {
	return AccessScope{}
}

// ScopeFilter narrows a caller-supplied listing filter to the actor's
// visible slice. Admins pass the filter through untouched; every other
// recognized actor has the relevant constraint overwritten with their own
// identity, so a hand-crafted base filter can never widen the scope.
// Returns ErrAccessDenied for actors with no resolvable scope.
func (s AccessScope) ScopeFilter(base order.Filter, a actor.Actor) (order.Filter, error) {
	if a.IsAdmin() {
		return base, nil
	}

	switch a.UserType {
	case actor.TypeRestaurant:
		if a.RestaurantID == nil || a.RestaurantID.Validate() != nil {
			return order.Filter{}, ErrAccessDenied
		}
		base.RestaurantIDs = []kernel.UUID{*a.RestaurantID}
		return base, nil

	case actor.TypeCourier:
		if a.ID.Validate() != nil {
			return order.Filter{}, ErrAccessDenied
		}
		base.CourierIDs = []kernel.UUID{a.ID}
		return base, nil

	case actor.TypeCustomer:
		return s.customerFilter(base, a)

	default:
		if a.Role == actor.RoleUser {
			return s.customerFilter(base, a)
		}
		return order.Filter{}, ErrAccessDenied
	}
}

func (s AccessScope) customerFilter(base order.Filter, a actor.Actor) (order.Filter, error) {
	email := strings.ToLower(strings.TrimSpace(a.Email))
	if email == "" {
		return order.Filter{}, ErrAccessDenied
	}
	base.CustomerEmails = []string{email}
	return base, nil
}

// CanView reports whether the actor may read the given order.
func (s AccessScope) CanView(o *order.Order, a actor.Actor) bool {
	if o == nil {
		return false
	}
	return s.CanViewRecord(o.RestaurantID(), o.Courier(), o.Customer().Email(), a)
}

// CanViewRecord decides single-record visibility from the order's raw scope
// fields, so read models can check access without loading the aggregate.
// The customer email comparison is case-insensitive.
func (s AccessScope) CanViewRecord(
	restaurantID kernel.UUID, courierID *kernel.UUID, customerEmail string, a actor.Actor,
) bool {
	if a.IsAdmin() {
		return true
	}

	switch a.UserType {
	case actor.TypeRestaurant:
		return a.RestaurantID != nil &&
			a.RestaurantID.Validate() == nil &&
			restaurantID.IsEqual(*a.RestaurantID)

	case actor.TypeCourier:
		return a.ID.Validate() == nil &&
			courierID != nil &&
			courierID.IsEqual(a.ID)

	case actor.TypeCustomer:
		return s.emailMatches(customerEmail, a)

	default:
		return a.Role == actor.RoleUser && s.emailMatches(customerEmail, a)
	}
}

// CanModify reports whether the actor may mutate the given order.
// Mutation visibility follows read visibility: whoever may see an order
// through their scope may act on it, and nobody else.
func (s AccessScope) CanModify(o *order.Order, a actor.Actor) bool {
	return s.CanView(o, a)
}

func (s AccessScope) emailMatches(customerEmail string, a actor.Actor) bool {
	email := strings.TrimSpace(a.Email)
	if email == "" || customerEmail == "" {
		return false
	}
	return strings.EqualFold(customerEmail, email)
}
