// Package actor describes the authenticated caller driving access-control
// decisions. An Actor is request-scoped context supplied by the API layer;
// it is never persisted by the order core.
package actor

import "storefront/internal/core/domain/model/kernel"

// Role is the coarse authorization role carried by an authentication token.
type Role string

const (
	// RoleAdmin grants unrestricted access to every order.
	RoleAdmin Role = "admin"
	// RoleUser is the default role for non-administrative callers.
	RoleUser Role = "user"
)

// UserType refines a caller into one of the storefront participant kinds.
type UserType string

const (
	// TypeAdmin marks back-office staff.
	TypeAdmin UserType = "admin"
	// TypeRestaurant marks restaurant operators, scoped to their restaurant.
	TypeRestaurant UserType = "restaurant"
	// TypeCustomer marks ordering customers, scoped to their own orders.
	TypeCustomer UserType = "customer"
	// TypeCourier marks delivery couriers, scoped to orders assigned to them.
	TypeCourier UserType = "courier"
)

// Actor is the authenticated identity behind a request.
// The zero value carries no identity and resolves to no access scope.
type Actor struct {
	// ID is the caller's identifier. For couriers it must match the
	// courier directory entry the caller authenticates as.
	ID kernel.UUID

	// Email identifies customers; compared case-insensitively against the
	// order's customer email.
	Email string

	// Role is the token-level role.
	Role Role

	// UserType is the participant kind.
	UserType UserType

	// RestaurantID scopes restaurant operators to a single restaurant.
	// Nil for every other user type.
	RestaurantID *kernel.UUID
}

// IsAdmin reports whether the actor has unrestricted access.
// Either an admin role or an admin user type is sufficient.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.UserType == TypeAdmin
}
