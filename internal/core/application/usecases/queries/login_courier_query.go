package queries

import (
	"errors"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrLoginCourierQueryIsNotConstructed = errors.New(
		"LoginCourierQuery must be created via NewLoginCourierQuery constructor",
	)
	ErrLoginEmailIsRequired    = errors.New("email is required")
	ErrLoginPasswordIsRequired = errors.New("password is required")
)

// LoginCourierQuery checks a courier's credentials. A read operation: it
// never changes state, it only verifies the presented password against the
// stored hash.
type LoginCourierQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCourierQuery creates a credential check query for a courier.
// The email is normalized to lower case to match registration.
func NewLoginCourierQuery(email, password string) (LoginCourierQuery, error) {
	query := LoginCourierQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setEmail(email),
		query.setPassword(password),
	); err != nil {
		return LoginCourierQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginCourierQuery) Validate() error {
	return q.guard.Validate(ErrLoginCourierQueryIsNotConstructed)
}

// Email returns the normalized login email from the query.
func (q LoginCourierQuery) Email() string {
	return q.email
}

// Password returns the plain-text password from the query.
func (q LoginCourierQuery) Password() string {
	return q.password
}

func (q *LoginCourierQuery) setEmail(email string) error {
	if email == "" {
		return ErrLoginEmailIsRequired
	}

	q.email = strings.ToLower(email)
	return nil
}

func (q *LoginCourierQuery) setPassword(password string) error {
	if password == "" {
		return ErrLoginPasswordIsRequired
	}

	q.password = password
	return nil
}

// LoginCourierQueryResponse identifies the authenticated courier.
type LoginCourierQueryResponse struct {
	CourierID kernel.UUID
	Name      string
}
