package services

import (
	"encoding/json"
	"math"
	"strings"

	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// AddOnInput is one paid extra as received from a caller. The price is kept
// untyped because checkout payloads arrive from heterogeneous clients;
// the pricing engine coerces it on read.
type AddOnInput struct {
	Name  string
	Price any
}

// ItemInput is one line item as received from a caller, before any
// normalization. Priced fields are untyped: historical clients send the unit
// price under different names and occasionally as strings, and the engine
// resolves them through a fixed-priority fallback chain instead of failing
// the whole checkout over one malformed entry.
type ItemInput struct {
	ItemID string
	Name   string

	// Unit price aliases, resolved in this order: UnitPrice, Price,
	// BasePrice, ItemPrice. The first coercible value wins.
	UnitPrice any
	Price     any
	BasePrice any
	ItemPrice any

	Quantity           any
	AddOns             []AddOnInput
	Customizations     map[string]string
	CustomizationPrice any
	RemovedIngredients []string
	Notes              string
}

// ComputeTotals derives the complete monetary breakdown of an order from raw
// caller input. It is the only path through which monetary fields enter an
// order; caller-supplied subtotals and totals are never trusted.
//
// Per item:
//   - a non-positive or malformed quantity contributes nothing
//   - the unit price is resolved through the alias chain; malformed or
//     missing values resolve to zero
//   - the item total is (unit price + add-on prices + customization
//     surcharge) multiplied by quantity, kept unrounded
//
// The subtotal is rounded half-up to two decimals exactly once, after the
// full summation, so per-item rounding error cannot compound. Delivery fee,
// service fee and discount are independently coerced to non-negative
// two-decimal values (invalid input becomes zero), and the grand total is
// clamped at zero when the discount exceeds everything else.
//
// Malformed item data never raises an error: a bad line item degrades to a
// zero contribution rather than rejecting the whole checkout.
func ComputeTotals(
	items []ItemInput,
	deliveryFee, serviceFee, discount any,
) ([]order.LineItem, order.Totals) {
	lineItems := make([]order.LineItem, 0, len(items))
	subtotal := decimal.Zero

	for _, in := range items {
		quantity := coerceQuantity(in.Quantity)
		if quantity < 0 {
			quantity = 0
		}

		unitPrice := ResolveAmount(in.UnitPrice, in.Price, in.BasePrice, in.ItemPrice)
		customizationPrice := ResolveAmount(in.CustomizationPrice)

		addOns := make([]order.AddOn, 0, len(in.AddOns))
		for _, a := range in.AddOns {
			addOns = append(addOns, order.AddOn{Name: a.Name, Price: ResolveAmount(a.Price)})
		}

		item, err := order.NewLineItem(
			in.ItemID, in.Name, unitPrice, quantity,
			addOns, in.Customizations, customizationPrice,
			in.RemovedIngredients, in.Notes)
		if err != nil {
			// Malformed line items contribute nothing instead of
			// failing the whole checkout.
			continue
		}

		lineItems = append(lineItems, item)
		subtotal = subtotal.Add(item.Total())
	}

	totals := order.Totals{
		Subtotal:    subtotal.Round(2),
		DeliveryFee: normalizeCharge(deliveryFee),
		ServiceFee:  normalizeCharge(serviceFee),
		Discount:    normalizeCharge(discount),
	}

	total := totals.Subtotal.
		Add(totals.DeliveryFee).
		Add(totals.ServiceFee).
		Sub(totals.Discount).
		Round(2)
	if total.IsNegative() {
		total = decimal.Zero
	}
	totals.Total = total

	return lineItems, totals
}

// ResolveAmount walks the alias values in priority order and returns the
// first coercible amount, clamped to be non-negative. When nothing is
// coercible it resolves to zero.
func ResolveAmount(aliases ...any) decimal.Decimal {
	for _, v := range aliases {
		if amount, ok := coerceAmount(v); ok {
			if amount.IsNegative() {
				return decimal.Zero
			}
			return amount
		}
	}
	return decimal.Zero
}

// normalizeCharge coerces a fee or discount input to a finite non-negative
// amount rounded to two decimals. Absent or invalid input becomes zero.
func normalizeCharge(v any) decimal.Decimal {
	amount, ok := coerceAmount(v)
	if !ok || amount.IsNegative() {
		return decimal.Zero
	}
	return amount.Round(2)
}

// coerceAmount converts the value shapes seen in real checkout payloads
// into a decimal amount. It reports false for anything non-numeric or
// non-finite.
func coerceAmount(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case nil:
		return decimal.Decimal{}, false
	case decimal.Decimal:
		return value, true
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(value), true
	case float32:
		return coerceAmount(float64(value))
	case int:
		return decimal.NewFromInt(int64(value)), true
	case int64:
		return decimal.NewFromInt(value), true
	case json.Number:
		return coerceAmount(string(value))
	case string:
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return amount, true
	default:
		return decimal.Decimal{}, false
	}
}

// coerceQuantity converts a quantity input to a whole unit count.
// Malformed input coerces to zero, which the engine treats as "skip".
func coerceQuantity(v any) int {
	switch value := v.(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0
		}
		return int(value)
	case json.Number:
		amount, err := value.Float64()
		if err != nil {
			return 0
		}
		return int(amount)
	case string:
		amount, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return int(amount.IntPart())
	default:
		return 0
	}
}
