package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrStaleTTLIsInvalid = errors.New("stale order TTL must be greater than 0")
)

// CancelStaleOrdersCommand represents a sweep over abandoned checkouts:
// orders that have been awaiting payment longer than the TTL get cancelled.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a stale order sweep command.
// The TTL must be positive.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	if olderThan <= 0 {
		return CancelStaleOrdersCommand{}, ErrStaleTTLIsInvalid
	}

	return CancelStaleOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns how long an order may sit in awaiting payment before
// the sweep cancels it.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
