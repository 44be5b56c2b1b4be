package commands

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for checkout.
// Resolves restaurant defaults, prices the submitted items through the
// pricing engine, reserves an order number and persists the new order in
// awaiting payment status.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Monetary fields are always derived by the pricing engine; caller-supplied
// totals are never trusted. The delivery fee and preparation time fall back
// to the restaurant's defaults when the caller omitted them.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := order.NewCustomer(cmd.Customer().Name, cmd.Customer().Phone, cmd.Customer().Email)
	if err != nil {
		return err
	}

	address, err := buildAddress(cmd.Address())
	if err != nil {
		return err
	}

	payment, err := buildPayment(cmd.Payment())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantDirectory().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	deliveryFee := cmd.DeliveryFee()
	if deliveryFee == nil {
		deliveryFee = restaurant.DeliveryFee()
	}

	prepTimeMinutes := cmd.PrepTimeMinutes()
	if prepTimeMinutes == 0 {
		prepTimeMinutes = restaurant.DefaultPrepTimeMinutes()
	}

	items, totals := services.ComputeTotals(cmd.Items(), deliveryFee, cmd.ServiceFee(), cmd.Discount())

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextSequenceNumber(ctx)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), number, cmd.RestaurantID(), customer, address,
		items, totals, payment, prepTimeMinutes, cmd.Notes(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func buildAddress(in AddressInput) (order.Address, error) {
	var location *kernel.GeoPoint
	if in.Lat != nil && in.Lon != nil {
		point, err := kernel.NewGeoPoint(*in.Lat, *in.Lon)
		if err != nil {
			return order.Address{}, err
		}
		location = &point
	}

	return order.NewAddress(in.Street, in.Number, in.City, in.PostalCode, location)
}

func buildPayment(in PaymentInput) (order.Payment, error) {
	switch order.PaymentMethod(in.Method) {
	case order.PaymentCash:
		return order.NewCashPayment(
			services.ResolveAmount(in.Tendered), services.ResolveAmount(in.Change))
	case order.PaymentCard:
		return order.NewCardPayment(in.CardBrand, in.CardLast4, in.CardHolder)
	case order.PaymentUnspecified:
		return order.Payment{}, nil
	default:
		return order.Payment{}, fmt.Errorf("unknown payment method %q", in.Method)
	}
}
