package courier

import (
	"errors"
	"net/mail"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsInvalid is returned when the email is empty or not parseable as an address.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPasswordHashIsRequired is returned when the credential hash is missing.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier ("repartidor") in the system.
// It is an aggregate root owning the courier's identity and login credential.
// Parcels reference couriers by ID; the assignment itself lives on the Parcel
// aggregate.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and a well-formed email
//   - Email is unique across all couriers (enforced by the entity store)
//   - The credential is stored only as a bcrypt hash, never in plaintext
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the courier's display name
	name string
	// email is the courier's login identity, unique system-wide
	email string
	// passwordHash is the bcrypt hash of the courier's password
	passwordHash string
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a valid Courier instance. The password must
// already be hashed by the caller; the domain never sees plaintext credentials.
//
// All validation errors are aggregated, so a completely invalid input reports
// every problem at once.
func NewCourier(id kernel.UUID, name, email, passwordHash string) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setEmail(email),
		courier.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// It applies the same validation as NewCourier so corrupted rows are caught
// at the repository boundary.
func RestoreCourier(id kernel.UUID, name, email, passwordHash string) (*Courier, error) {
	return NewCourier(id, name, email, passwordHash)
}

// Validate ensures the Courier instance was properly constructed via NewCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Email returns the courier's login email.
func (c *Courier) Email() string {
	return c.email
}

// PasswordHash returns the stored credential hash.
func (c *Courier) PasswordHash() string {
	return c.passwordHash
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailIsInvalid
	}
	c.email = strings.ToLower(email)
	return nil
}

func (c *Courier) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	c.passwordHash = passwordHash
	return nil
}
