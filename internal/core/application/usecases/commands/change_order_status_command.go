package commands

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an actor.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	note    *string
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change command. An optional
// note replaces the order notes alongside the status change.
// Validates the order ID and that the target status is a known one; whether
// the transition itself is legal is decided by the order aggregate.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID, status order.Status, note *string, a actor.Actor,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.status = status
	cmd.note = note
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status changes.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// Note returns the replacement order notes, if any.
func (c ChangeOrderStatusCommand) Note() *string {
	return c.note
}

// Actor returns who requested the change.
func (c ChangeOrderStatusCommand) Actor() actor.Actor {
	return c.actor
}
