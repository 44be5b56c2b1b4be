package order

import (
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// Domain errors for delivery addresses.
var (
	// ErrStreetIsRequired is returned when the street is empty.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
	// ErrAddressIsNotConstructed is returned when using an improperly
	// initialized Address.
	ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
		"address must be created via NewAddress constructor")
)

// Address is the structured delivery destination of an order.
// Street is required; the remaining components and the geographic location
// are optional.
type Address struct {
	street     string
	number     string
	city       string
	postalCode string
	location   *kernel.GeoPoint
	guard      guard.ConstructorGuard
}

// NewAddress creates a validated delivery address.
// A non-nil location must itself be a properly constructed GeoPoint.
func NewAddress(street, number, city, postalCode string, location *kernel.GeoPoint) (Address, error) {
	if strings.TrimSpace(street) == "" {
		return Address{}, ErrStreetIsRequired
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return Address{}, err
		}
	}

	return Address{
		street:     street,
		number:     number,
		city:       city,
		postalCode: postalCode,
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Address was built via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number, possibly empty.
func (a Address) Number() string {
	return a.number
}

// City returns the city, possibly empty.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code, possibly empty.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Location returns the geocoded delivery coordinates, or nil when the
// address was never geocoded.
func (a Address) Location() *kernel.GeoPoint {
	return a.location
}
