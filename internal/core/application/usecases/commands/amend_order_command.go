package commands

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAmendOrderCommandIsNotConstructed = errors.New(
		"AmendOrderCommand must be created via NewAmendOrderCommand constructor",
	)
	ErrNothingToAmend = errors.New("at least one field to amend is required")
)

// AmendOrderCommand represents a partial update of an order's operational
// fields: the assigned courier, the delivery timestamp, the delivery fee
// or the notes. Nil fields are left untouched. Amending never re-prices
// the order; changing items goes through UpdateOrderItemsCommand instead.
type AmendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierID   *kernel.UUID
	deliveredAt *time.Time
	deliveryFee any
	notes       *string
	actor       actor.Actor

	guard guard.ConstructorGuard
}

// NewAmendOrderCommand creates a partial order update command.
// At least one amendable field must be present.
func NewAmendOrderCommand(
	orderID kernel.UUID,
	courierID *kernel.UUID,
	deliveredAt *time.Time,
	deliveryFee any,
	notes *string,
	a actor.Actor,
) (AmendOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AmendOrderCommand{}, err
	}

	if courierID == nil && deliveredAt == nil && deliveryFee == nil && notes == nil {
		return AmendOrderCommand{}, ErrNothingToAmend
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return AmendOrderCommand{}, err
		}
	}

	return AmendOrderCommand{
		orderID:     orderID,
		courierID:   courierID,
		deliveredAt: deliveredAt,
		deliveryFee: deliveryFee,
		notes:       notes,
		actor:       a,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AmendOrderCommand) Validate() error {
	return c.guard.Validate(ErrAmendOrderCommandIsNotConstructed)
}

// OrderID returns the order being amended.
func (c AmendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier to assign, or nil to leave unchanged.
func (c AmendOrderCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// DeliveredAt returns the delivery timestamp to set, or nil to leave
// unchanged.
func (c AmendOrderCommand) DeliveredAt() *time.Time {
	return c.deliveredAt
}

// DeliveryFee returns the delivery fee to set, or nil to leave unchanged.
func (c AmendOrderCommand) DeliveryFee() any {
	return c.deliveryFee
}

// Notes returns the notes to set, or nil to leave unchanged.
func (c AmendOrderCommand) Notes() *string {
	return c.notes
}

// Actor returns who requested the amendment.
func (c AmendOrderCommand) Actor() actor.Actor {
	return c.actor
}
