package order

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AddOn is an optional paid extra attached to a line item, such as extra
// cheese or a sauce. The price is charged once per ordered unit.
type AddOn struct {
	Name  string
	Price decimal.Decimal
}

// LineItem is one ordered product instance within an order: the menu item,
// the quantity, and every price-affecting modifier selected by the customer.
// Line items are immutable once created; a full order update replaces the
// whole list.
type LineItem struct {
	itemID             string
	name               string
	unitPrice          decimal.Decimal
	quantity           int
	addOns             []AddOn
	customizations     map[string]string
	customizationPrice decimal.Decimal
	removedIngredients []string
	notes              string
}

// NewLineItem creates a line item with validated monetary fields.
// unitPrice and customizationPrice must be non-negative; quantity must be
// non-negative (zero-quantity items are tolerated and contribute nothing to
// the order total). Add-on prices must be non-negative.
func NewLineItem(
	itemID string,
	name string,
	unitPrice decimal.Decimal,
	quantity int,
	addOns []AddOn,
	customizations map[string]string,
	customizationPrice decimal.Decimal,
	removedIngredients []string,
	notes string,
) (LineItem, error) {
	if unitPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	if quantity < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}
	if customizationPrice.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"customizationPrice", fmt.Errorf("%s is negative", customizationPrice))
	}
	for _, addOn := range addOns {
		if addOn.Price.IsNegative() {
			return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
				"addOnPrice", fmt.Errorf("%s: %s is negative", addOn.Name, addOn.Price))
		}
	}

	item := LineItem{
		itemID:             itemID,
		name:               name,
		unitPrice:          unitPrice,
		quantity:           quantity,
		customizationPrice: customizationPrice,
		notes:              notes,
	}

	// Copy the mutable inputs so the line item stays immutable.
	if len(addOns) > 0 {
		item.addOns = append([]AddOn(nil), addOns...)
	}
	if len(customizations) > 0 {
		item.customizations = make(map[string]string, len(customizations))
		for group, selection := range customizations {
			item.customizations[group] = selection
		}
	}
	if len(removedIngredients) > 0 {
		item.removedIngredients = append([]string(nil), removedIngredients...)
	}

	return item, nil
}

// ItemID returns the referenced menu item identifier.
func (i LineItem) ItemID() string {
	return i.itemID
}

// Name returns the menu item name snapshotted at order time.
func (i LineItem) Name() string {
	return i.name
}

// UnitPrice returns the per-unit base price.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns the ordered unit count.
func (i LineItem) Quantity() int {
	return i.quantity
}

// AddOns returns the selected paid extras.
func (i LineItem) AddOns() []AddOn {
	return append([]AddOn(nil), i.addOns...)
}

// Customizations returns the named choices (e.g. size) keyed by group name.
func (i LineItem) Customizations() map[string]string {
	if i.customizations == nil {
		return nil
	}
	out := make(map[string]string, len(i.customizations))
	for group, selection := range i.customizations {
		out[group] = selection
	}
	return out
}

// CustomizationPrice returns the additive per-unit customization surcharge.
func (i LineItem) CustomizationPrice() decimal.Decimal {
	return i.customizationPrice
}

// RemovedIngredients returns the ingredients the customer asked to leave out.
func (i LineItem) RemovedIngredients() []string {
	return append([]string(nil), i.removedIngredients...)
}

// Notes returns the free-form instructions for this item.
func (i LineItem) Notes() string {
	return i.notes
}

// Total returns the unrounded contribution of this line item to the order
// subtotal: (unit price + add-ons + customization surcharge) per unit,
// multiplied by quantity. A zero quantity contributes exactly zero.
func (i LineItem) Total() decimal.Decimal {
	if i.quantity <= 0 {
		return decimal.Zero
	}

	perUnit := i.unitPrice.Add(i.customizationPrice)
	for _, addOn := range i.addOns {
		perUnit = perUnit.Add(addOn.Price)
	}

	return perUnit.Mul(decimal.NewFromInt(int64(i.quantity)))
}
