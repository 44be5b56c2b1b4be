package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
	ErrPrepTimeIsInvalid     = errors.New("preparation time must not be negative")
)

// CreateOrderCommand represents a checkout request: who is ordering what
// from which restaurant, where it goes, and how it will be paid.
//
// Customer, address and payment details arrive as already-validated value
// objects. Line items stay raw: the pricing engine normalizes them, and a
// malformed item degrades instead of failing checkout.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	customer     CustomerInput
	address      AddressInput
	items        []services.ItemInput
	paymentInput PaymentInput

	// deliveryFee nil means "use the restaurant's default fee".
	deliveryFee any
	serviceFee  any
	discount    any

	// prepTimeMinutes 0 means "use the restaurant's default".
	prepTimeMinutes int
	notes           string

	guard guard.ConstructorGuard
}

// CustomerInput carries the checkout customer fields before validation.
type CustomerInput struct {
	Name  string
	Phone string
	Email string
}

// AddressInput carries the delivery address fields before validation.
// Lat and Lon are optional; both must be present to record a location.
type AddressInput struct {
	Street     string
	Number     string
	City       string
	PostalCode string
	Lat        *float64
	Lon        *float64
}

// PaymentInput carries the payment fields before validation.
// Method selects which of the remaining fields matter.
type PaymentInput struct {
	Method string

	// Cash fields.
	Tendered any
	Change   any

	// Card fields.
	CardBrand  string
	CardLast4  string
	CardHolder string
}

// NewCreateOrderCommand creates a checkout command.
// Validates that the identifiers are valid, at least one item was supplied,
// and the requested preparation time is not negative. Item contents are not
// validated here; the pricing engine handles malformed items.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	restaurantID kernel.UUID,
	customer CustomerInput,
	address AddressInput,
	items []services.ItemInput,
	payment PaymentInput,
	deliveryFee, serviceFee, discount any,
	prepTimeMinutes int,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setPrepTimeMinutes(prepTimeMinutes),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customer = customer
	cmd.address = address
	cmd.paymentInput = payment
	cmd.deliveryFee = deliveryFee
	cmd.serviceFee = serviceFee
	cmd.discount = discount
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order is placed with.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Customer returns the raw customer fields.
func (c CreateOrderCommand) Customer() CustomerInput {
	return c.customer
}

// Address returns the raw delivery address fields.
func (c CreateOrderCommand) Address() AddressInput {
	return c.address
}

// Items returns the raw line items as submitted.
func (c CreateOrderCommand) Items() []services.ItemInput {
	return c.items
}

// Payment returns the raw payment fields.
func (c CreateOrderCommand) Payment() PaymentInput {
	return c.paymentInput
}

// DeliveryFee returns the requested delivery fee, or nil to use the
// restaurant's default.
func (c CreateOrderCommand) DeliveryFee() any {
	return c.deliveryFee
}

// ServiceFee returns the requested service fee.
func (c CreateOrderCommand) ServiceFee() any {
	return c.serviceFee
}

// Discount returns the requested discount.
func (c CreateOrderCommand) Discount() any {
	return c.discount
}

// PrepTimeMinutes returns the requested preparation time, or 0 to use the
// restaurant's default.
func (c CreateOrderCommand) PrepTimeMinutes() int {
	return c.prepTimeMinutes
}

// Notes returns free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.ItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPrepTimeMinutes(minutes int) error {
	if minutes < 0 {
		return ErrPrepTimeIsInvalid
	}

	c.prepTimeMinutes = minutes
	return nil
}
