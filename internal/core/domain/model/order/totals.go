package order

import "github.com/shopspring/decimal"

// Totals is the complete monetary breakdown of an order, produced by the
// pricing engine and never trusted from callers. All amounts carry exactly
// two decimal places and are non-negative; the grand total is clamped at
// zero when the discount exceeds everything else.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	ServiceFee  decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}
