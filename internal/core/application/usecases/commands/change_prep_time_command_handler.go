package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/services"
)

// ChangePrepTimeCommandHandler applies the one-shot preparation time
// change. The aggregate enforces the lock in memory and the repository
// enforces it again in the database with a conditional write, so two
// concurrent attempts can never both succeed.
type ChangePrepTimeCommandHandler struct {
	uowFactory OrderUoWFactory
	scope      services.AccessScope
}

// NewChangePrepTimeCommandHandler creates a handler for preparation time
// changes.
func NewChangePrepTimeCommandHandler(uowFactory OrderUoWFactory) ChangePrepTimeCommandHandler {
	return ChangePrepTimeCommandHandler{
		uowFactory: uowFactory,
		scope:      services.NewAccessScope(),
	}
}

// Handle processes the preparation time change.
// Returns order.ErrPrepTimeAlreadyChanged when the one-shot window was
// already consumed, whether that happened in this process or concurrently.
func (h ChangePrepTimeCommandHandler) Handle(ctx context.Context, cmd ChangePrepTimeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !h.scope.CanModify(o, cmd.Actor()) {
		return services.ErrAccessDenied
	}

	if err = o.ChangePrepTime(cmd.Minutes(), cmd.ExtraMinutes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdatePrepTime(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
