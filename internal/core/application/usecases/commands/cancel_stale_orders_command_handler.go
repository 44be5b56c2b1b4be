package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// CancelStaleOrdersCommandHandler cancels checkouts abandoned before
// payment. One failing order does not abort the sweep; it is logged and
// the rest of the batch proceeds.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *zap.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale
// checkout sweep.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory, logger *zap.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the sweep command.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
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

	now := time.Now().UTC()
	cutoff := now.Add(-cmd.OlderThan())

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllStaleAwaitingPayment(ctx, cutoff)
	if err != nil {
		return err
	}

	cancelled := 0
	for _, o := range stale {
		if err = o.ChangeStatus(order.Cancelled, now); err != nil {
			h.logger.Warn("stale order could not be cancelled",
				zap.String("orderId", o.ID().String()), zap.Error(err))
			continue
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cancelled > 0 {
		h.logger.Info("cancelled stale checkouts", zap.Int("count", cancelled))
	}

	return nil
}
