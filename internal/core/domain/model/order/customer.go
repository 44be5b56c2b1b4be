package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for customer contact details.
var (
	// ErrCustomerNameIsRequired is returned when the customer name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCustomerPhoneIsRequired is returned when the customer phone is empty.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customerPhone")
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
		"customer must be created via NewCustomer constructor")
)

// Customer holds the contact details captured at checkout.
// Name and phone are required; email is optional but, when present, drives
// customer-facing access scoping and is therefore stored lowercased.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	email string
	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer contact record.
func NewCustomer(name, phone, email string) (Customer, error) {
	customer := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
	); err != nil {
		return Customer{}, err
	}

	customer.email = strings.ToLower(strings.TrimSpace(email))
	return customer, nil
}

// Validate checks that the Customer was built via NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the lowercased contact email, or an empty string when the
// customer checked out without one.
func (c Customer) Email() string {
	return c.email
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.phone = phone
	return nil
}
