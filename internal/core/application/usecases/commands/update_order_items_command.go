package commands

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand represents a full replacement of an order's line
// items. The whole monetary breakdown is recomputed by the pricing engine;
// any totals the caller sends alongside the items are ignored.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []services.ItemInput

	deliveryFee any
	serviceFee  any
	discount    any

	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates an item replacement command.
// Requires at least one item; fee fields may be nil to keep the order's
// current charges.
func NewUpdateOrderItemsCommand(
	orderID kernel.UUID,
	items []services.ItemInput,
	deliveryFee, serviceFee, discount any,
	a actor.Actor,
) (UpdateOrderItemsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	if len(items) == 0 {
		return UpdateOrderItemsCommand{}, ErrOrderItemsAreRequired
	}

	return UpdateOrderItemsCommand{
		orderID:     orderID,
		items:       items,
		deliveryFee: deliveryFee,
		serviceFee:  serviceFee,
		discount:    discount,
		actor:       a,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the order whose items are replaced.
func (c UpdateOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement line items as submitted.
func (c UpdateOrderItemsCommand) Items() []services.ItemInput {
	return c.items
}

// DeliveryFee returns the delivery fee input, or nil to keep the current
// fee.
func (c UpdateOrderItemsCommand) DeliveryFee() any {
	return c.deliveryFee
}

// ServiceFee returns the service fee input, or nil to keep the current fee.
func (c UpdateOrderItemsCommand) ServiceFee() any {
	return c.serviceFee
}

// Discount returns the discount input, or nil to keep the current discount.
func (c UpdateOrderItemsCommand) Discount() any {
	return c.discount
}

// Actor returns who requested the replacement.
func (c UpdateOrderItemsCommand) Actor() actor.Actor {
	return c.actor
}
