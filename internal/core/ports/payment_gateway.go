package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// PaymentGateway is the outbound contract to the payment provider.
// Card orders are charged when the customer pays and refunded when a paid
// order is cancelled or rejected. Cash orders never reach the gateway.
type PaymentGateway interface {
	// Charge captures the given amount for an order. Returns the
	// provider's transaction reference on success.
	Charge(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal) (string, error)

	// Refund returns the given amount for a previously charged order.
	Refund(ctx context.Context, orderID kernel.UUID, amount decimal.Decimal) error
}
