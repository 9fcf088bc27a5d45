// Package admin implements the Admin entity: a back-office user independent
// of the courier/parcel graph, used only for administrative login.
package admin

import (
	"errors"
	"net/mail"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create an admin without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsInvalid is returned when the email is empty or not parseable as an address.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPasswordHashIsRequired is returned when the credential hash is missing.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrAdminIsNotConstructed is returned when using an improperly initialized Admin.
	ErrAdminIsNotConstructed = errors.New("Admin must be created via NewAdmin constructor")
)

// Admin is a back-office user with a login credential. Admins have no
// relationship to couriers, parcels, or delivery events.
type Admin struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string

	guard guard.ConstructorGuard
}

// NewAdmin creates a new Admin. The password must already be hashed.
func NewAdmin(id kernel.UUID, name, email, passwordHash string) (*Admin, error) {
	a := &Admin{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAdmin reconstructs an Admin from persistent storage.
func RestoreAdmin(id kernel.UUID, name, email, passwordHash string) (*Admin, error) {
	return NewAdmin(id, name, email, passwordHash)
}

// Validate ensures the Admin instance was properly constructed via NewAdmin.
func (a *Admin) Validate() error {
	if a == nil {
		return ErrAdminIsNotConstructed
	}
	return a.guard.Validate(ErrAdminIsNotConstructed)
}

// ID returns the admin's unique identifier.
func (a *Admin) ID() kernel.UUID {
	return a.id
}

// Name returns the admin's display name.
func (a *Admin) Name() string {
	return a.name
}

// Email returns the admin's login email.
func (a *Admin) Email() string {
	return a.email
}

// PasswordHash returns the stored credential hash.
func (a *Admin) PasswordHash() string {
	return a.passwordHash
}

func (a *Admin) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Admin) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Admin) setEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailIsInvalid
	}
	a.email = strings.ToLower(email)
	return nil
}

func (a *Admin) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	a.passwordHash = passwordHash
	return nil
}
