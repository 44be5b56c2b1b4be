package commands

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrChangePrepTimeCommandIsNotConstructed = errors.New(
		"ChangePrepTimeCommand must be created via NewChangePrepTimeCommand constructor",
	)
	ErrPrepTimeMustBePositive  = errors.New("preparation time must be greater than 0")
	ErrExtraMinutesAreNegative = errors.New("extra preparation minutes must not be negative")
)

// ChangePrepTimeCommand represents the restaurant's one-shot adjustment of
// an order's promised preparation time.
type ChangePrepTimeCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	minutes      int
	extraMinutes int
	actor        actor.Actor

	guard guard.ConstructorGuard
}

// NewChangePrepTimeCommand creates a preparation time change command.
// The new total must be positive; the extra minutes on top of the original
// promise must not be negative.
func NewChangePrepTimeCommand(
	orderID kernel.UUID, minutes, extraMinutes int, a actor.Actor,
) (ChangePrepTimeCommand, error) {
	cmd := ChangePrepTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		cmd.checkMinutes(minutes),
		cmd.checkExtraMinutes(extraMinutes),
	); err != nil {
		return ChangePrepTimeCommand{}, err
	}

	cmd.orderID = orderID
	cmd.minutes = minutes
	cmd.extraMinutes = extraMinutes
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePrepTimeCommand) Validate() error {
	return c.guard.Validate(ErrChangePrepTimeCommandIsNotConstructed)
}

// OrderID returns the order whose preparation time changes.
func (c ChangePrepTimeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Minutes returns the new total preparation time in minutes.
func (c ChangePrepTimeCommand) Minutes() int {
	return c.minutes
}

// ExtraMinutes returns the minutes added on top of the original promise.
func (c ChangePrepTimeCommand) ExtraMinutes() int {
	return c.extraMinutes
}

// Actor returns who requested the change.
func (c ChangePrepTimeCommand) Actor() actor.Actor {
	return c.actor
}

func (c ChangePrepTimeCommand) checkMinutes(minutes int) error {
	if minutes <= 0 {
		return ErrPrepTimeMustBePositive
	}
	return nil
}

func (c ChangePrepTimeCommand) checkExtraMinutes(extraMinutes int) error {
	if extraMinutes < 0 {
		return ErrExtraMinutesAreNegative
	}
	return nil
}
