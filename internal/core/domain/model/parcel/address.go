package parcel

import (
	"errors"
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Address validation errors.
var (
	ErrNeighborhoodIsRequired = errs.NewValueIsRequiredError("neighborhood")
	ErrStreetIsRequired       = errs.NewValueIsRequiredError("street")
	ErrStreetNumberIsInvalid  = errs.NewValueIsInvalidError("number")
	ErrPostalCodeIsRequired   = errs.NewValueIsRequiredError("postalCode")
	ErrAddressNotConstructed  = errors.New("Address must be created via NewAddress constructor")
)

// Address is a value object holding the destination of a parcel:
// neighborhood ("colonia"), street, street number, and postal code.
type Address struct {
	neighborhood string
	street       string
	number       int
	postalCode   string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated destination address. Neighborhood, street,
// and postal code must be non-blank; the street number must be positive.
func NewAddress(neighborhood, street string, number int, postalCode string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setNeighborhood(neighborhood),
		address.setStreet(street),
		address.setNumber(number),
		address.setPostalCode(postalCode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressNotConstructed)
}

// Neighborhood returns the neighborhood (colonia) of the destination.
func (a Address) Neighborhood() string {
	return a.neighborhood
}

// Street returns the destination street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() int {
	return a.number
}

// PostalCode returns the destination postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// String renders the address in a single display line.
func (a Address) String() string {
	return fmt.Sprintf("%s %d, %s, CP %s", a.street, a.number, a.neighborhood, a.postalCode)
}

func (a *Address) setNeighborhood(neighborhood string) error {
	if strings.TrimSpace(neighborhood) == "" {
		return ErrNeighborhoodIsRequired
	}
	a.neighborhood = neighborhood
	return nil
}

func (a *Address) setStreet(street string) error {
	if strings.TrimSpace(street) == "" {
		return ErrStreetIsRequired
	}
	a.street = street
	return nil
}

func (a *Address) setNumber(number int) error {
	if number <= 0 {
		return ErrStreetNumberIsInvalid
	}
	a.number = number
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if strings.TrimSpace(postalCode) == "" {
		return ErrPostalCodeIsRequired
	}
	a.postalCode = postalCode
	return nil
}
