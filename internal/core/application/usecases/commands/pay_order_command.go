package commands

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a customer's payment attempt for an order
// sitting in awaiting payment status.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a payment command for the given order on
// behalf of the given actor.
func NewPayOrderCommand(orderID kernel.UUID, a actor.Actor) (PayOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PayOrderCommand{}, err
	}

	return PayOrderCommand{
		orderID: orderID,
		actor:   a,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who is paying.
func (c PayOrderCommand) Actor() actor.Actor {
	return c.actor
}
