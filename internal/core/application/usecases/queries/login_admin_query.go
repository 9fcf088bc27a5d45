package queries

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrLoginAdminQueryIsNotConstructed = errors.New(
	"LoginAdminQuery must be created via NewLoginAdminQuery constructor",
)

// LoginAdminQuery checks an admin's credentials.
type LoginAdminQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginAdminQuery creates a credential check query for an admin.
func NewLoginAdminQuery(email, password string) (LoginAdminQuery, error) {
	query := LoginAdminQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setEmail(email),
		query.setPassword(password),
	); err != nil {
		return LoginAdminQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginAdminQuery) Validate() error {
	return q.guard.Validate(ErrLoginAdminQueryIsNotConstructed)
}

// Email returns the normalized login email from the query.
func (q LoginAdminQuery) Email() string {
	return q.email
}

// Password returns the plain-text password from the query.
func (q LoginAdminQuery) Password() string {
	return q.password
}

func (q *LoginAdminQuery) setEmail(email string) error {
	if email == "" {
		return ErrLoginEmailIsRequired
	}

	q.email = strings.ToLower(email)
	return nil
}

func (q *LoginAdminQuery) setPassword(password string) error {
	if password == "" {
		return ErrLoginPasswordIsRequired
	}

	q.password = password
	return nil
}

// LoginAdminQueryResponse identifies the authenticated admin.
type LoginAdminQueryResponse struct {
	AdminID kernel.UUID
	Name    string
}
