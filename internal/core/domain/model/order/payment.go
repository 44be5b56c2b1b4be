package order

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how the customer pays for an order.
type PaymentMethod string

const (
	// PaymentUnspecified marks orders created without a payment method.
	PaymentUnspecified PaymentMethod = ""
	// PaymentCash marks cash-on-delivery orders.
	PaymentCash PaymentMethod = "cash"
	// PaymentCard marks card orders charged through the payment gateway.
	PaymentCard PaymentMethod = "card"
)

// Payment carries the payment method chosen at checkout together with its
// method-specific details: the tendered amount and change for cash orders,
// or the masked card data for card orders. Only the masked brand, last four
// digits and holder name are ever stored; full card data never reaches this
// system.
type Payment struct {
	method PaymentMethod

	cashTendered decimal.Decimal
	cashChange   decimal.Decimal

	cardBrand  string
	cardLast4  string
	cardHolder string
}

// NewCashPayment creates a cash-on-delivery payment record.
// The tendered amount must be non-negative; change is what the courier owes
// back and must be non-negative as well.
func NewCashPayment(tendered, change decimal.Decimal) (Payment, error) {
	if tendered.IsNegative() {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"cashTendered", fmt.Errorf("%s is negative", tendered))
	}
	if change.IsNegative() {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"cashChange", fmt.Errorf("%s is negative", change))
	}

	return Payment{
		method:       PaymentCash,
		cashTendered: tendered,
		cashChange:   change,
	}, nil
}

// NewCardPayment creates a card payment record from masked card data.
func NewCardPayment(brand, last4, holder string) (Payment, error) {
	if len(last4) != 4 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"cardLast4", fmt.Errorf("%q is not four digits", last4))
	}

	return Payment{
		method:     PaymentCard,
		cardBrand:  brand,
		cardLast4:  last4,
		cardHolder: holder,
	}, nil
}

// Method returns the chosen payment method. The zero Payment reports
// PaymentUnspecified.
func (p Payment) Method() PaymentMethod {
	return p.method
}

// CashTendered returns the amount the customer hands over for cash orders.
func (p Payment) CashTendered() decimal.Decimal {
	return p.cashTendered
}

// CashChange returns the change owed back for cash orders.
func (p Payment) CashChange() decimal.Decimal {
	return p.cashChange
}

// CardBrand returns the masked card brand for card orders.
func (p Payment) CardBrand() string {
	return p.cardBrand
}

// CardLast4 returns the last four digits for card orders.
func (p Payment) CardLast4() string {
	return p.cardLast4
}

// CardHolder returns the card holder name for card orders.
func (p Payment) CardHolder() string {
	return p.cardHolder
}
