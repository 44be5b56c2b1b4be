package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// PayOrderCommandHandler settles payment for an order awaiting it.
// Card orders are charged through the payment gateway before the status
// moves to paid; cash orders skip the gateway entirely.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	scope      services.AccessScope
}

// NewPayOrderCommandHandler creates a handler for payment operations.
func NewPayOrderCommandHandler(
	uowFactory OrderUoWFactory, gateway ports.PaymentGateway,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		scope:      services.NewAccessScope(),
	}
}

// Handle processes the payment command.
// The gateway charge happens before the status write: if the charge fails
// the order stays in awaiting payment and the customer can retry.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	if o.Payment().Method() == order.PaymentCard {
		if _, err = h.gateway.Charge(ctx, o.ID(), o.Totals().Total); err != nil {
			return err
		}
	}

	if err = o.ChangeStatus(order.Paid, time.Now().UTC()); err != nil {
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
