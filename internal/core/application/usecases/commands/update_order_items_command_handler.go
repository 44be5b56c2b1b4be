package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/services"
)

// UpdateOrderItemsCommandHandler replaces an order's line items and reruns
// the pricing engine over the result, so the stored totals always match
// the stored items.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	scope      services.AccessScope
}

// NewUpdateOrderItemsCommandHandler creates a handler for item replacement
// operations.
func NewUpdateOrderItemsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
		scope:      services.NewAccessScope(),
	}
}

// Handle processes the item replacement command.
// Fee inputs left nil fall back to the charges already on the order, so a
// pure item change keeps the agreed delivery fee.
func (h UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) error {
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

	deliveryFee := cmd.DeliveryFee()
	if deliveryFee == nil {
		deliveryFee = o.Totals().DeliveryFee
	}
	serviceFee := cmd.ServiceFee()
	if serviceFee == nil {
		serviceFee = o.Totals().ServiceFee
	}
	discount := cmd.Discount()
	if discount == nil {
		discount = o.Totals().Discount
	}

	items, totals := services.ComputeTotals(cmd.Items(), deliveryFee, serviceFee, discount)

	if err = o.Reprice(items, totals, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
