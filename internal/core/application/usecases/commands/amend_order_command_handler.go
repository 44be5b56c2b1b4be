package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/services"
)

// AmendOrderCommandHandler applies partial order updates. Only the fields
// present on the command are touched; monetary fields other than the
// delivery fee are never modified here.
type AmendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	scope      services.AccessScope
}

// NewAmendOrderCommandHandler creates a handler for partial order updates.
func NewAmendOrderCommandHandler(uowFactory OrderUoWFactory) AmendOrderCommandHandler {
	return AmendOrderCommandHandler{
		uowFactory: uowFactory,
		scope:      services.NewAccessScope(),
	}
}

// Handle processes the amendment command.
func (h AmendOrderCommandHandler) Handle(ctx context.Context, cmd AmendOrderCommand) error {
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

	now := time.Now().UTC()

	if cmd.CourierID() != nil {
		if err = o.AssignCourier(*cmd.CourierID(), now); err != nil {
			return err
		}
	}

	if cmd.DeliveredAt() != nil {
		if err = o.SetDeliveredAt(*cmd.DeliveredAt(), now); err != nil {
			return err
		}
	}

	if cmd.DeliveryFee() != nil {
		if err = o.SetDeliveryFee(services.ResolveAmount(cmd.DeliveryFee()), now); err != nil {
			return err
		}
	}

	if cmd.Notes() != nil {
		if err = o.SetNotes(*cmd.Notes(), now); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
