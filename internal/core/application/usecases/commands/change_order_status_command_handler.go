package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"go.uber.org/zap"
)

// ChangeOrderStatusCommandHandler moves orders through their lifecycle and
// runs the status side effects:
//
//   - entering confirmed stamps the confirmation time, once
//   - entering ready triggers the one-shot courier dispatch and records
//     the kitchen delay against the promised preparation time
//   - entering delivered stamps the delivery time
//   - cancelling or rejecting a paid card order refunds it
//
// Dispatch and refund are best-effort: their failure is logged but never
// blocks the status change itself.
type ChangeOrderStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	gateway    ports.PaymentGateway
	dispatcher services.CourierDispatcher
	scope      services.AccessScope
	logger     *zap.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status change
// operations.
func NewChangeOrderStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	gateway ports.PaymentGateway,
	logger *zap.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		dispatcher: services.NewCourierDispatcher(),
		scope:      services.NewAccessScope(),
		logger:     logger,
	}
}

// Handle processes the status change command.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	wasPaid := o.Status() != order.AwaitingPayment

	now := time.Now().UTC()
	if err = o.ChangeStatus(cmd.Status(), now); err != nil {
		return err
	}

	switch cmd.Status() {
	case order.Ready:
		h.dispatchCourier(ctx, uow, o, now)
	case order.Delivered:
		if err = o.SetDeliveredAt(now, now); err != nil {
			return err
		}
	case order.Cancelled, order.Rejected:
		h.refundIfCharged(ctx, o, wasPaid)
	}

	if cmd.Note() != nil {
		if err = o.SetNotes(*cmd.Note(), now); err != nil {
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

// dispatchCourier assigns the nearest available courier when an order
// becomes ready. This is a one-shot attempt: when no courier or no pickup
// location is available the order simply stays unassigned, and the failed
// attempt is never retried for this transition.
func (h ChangeOrderStatusCommandHandler) dispatchCourier(
	ctx context.Context, uow FulfillmentUoW, o *order.Order, now time.Time,
) {
	if o.Courier() != nil {
		return
	}

	restaurant, err := uow.RestaurantDirectory().Get(ctx, o.RestaurantID())
	if err != nil {
		h.logger.Warn("courier dispatch skipped: restaurant lookup failed",
			zap.String("orderId", o.ID().String()), zap.Error(err))
		return
	}
	if restaurant.Location() == nil {
		h.logger.Warn("courier dispatch skipped: restaurant has no location",
			zap.String("orderId", o.ID().String()))
		return
	}

	couriers, err := uow.CourierDirectory().GetAllAvailable(ctx)
	if err != nil {
		h.logger.Warn("courier dispatch skipped: courier lookup failed",
			zap.String("orderId", o.ID().String()), zap.Error(err))
		return
	}

	nearest, err := h.dispatcher.FindNearest(*restaurant.Location(), couriers)
	if errors.Is(err, services.ErrNoCourierAvailable) {
		h.logger.Info("no courier available for ready order",
			zap.String("orderId", o.ID().String()))
		return
	}
	if err != nil {
		h.logger.Warn("courier dispatch failed",
			zap.String("orderId", o.ID().String()), zap.Error(err))
		return
	}

	if err = o.AssignCourier(nearest.ID(), now); err != nil {
		h.logger.Warn("courier assignment rejected",
			zap.String("orderId", o.ID().String()), zap.Error(err))
		return
	}

	h.logger.Info("courier assigned",
		zap.String("orderId", o.ID().String()),
		zap.String("courierId", nearest.ID().String()))
}

// refundIfCharged refunds a cancelled or rejected order that was already
// charged to a card. Refund failures are logged for manual follow-up; the
// cancellation itself must never be blocked by the payment provider.
func (h ChangeOrderStatusCommandHandler) refundIfCharged(
	ctx context.Context, o *order.Order, wasPaid bool,
) {
	if !wasPaid || o.Payment().Method() != order.PaymentCard {
		return
	}

	if err := h.gateway.Refund(ctx, o.ID(), o.Totals().Total); err != nil {
		h.logger.Error("refund failed, manual follow-up required",
			zap.String("orderId", o.ID().String()),
			zap.String("amount", o.Totals().Total.String()),
			zap.Error(err))
	}
}
