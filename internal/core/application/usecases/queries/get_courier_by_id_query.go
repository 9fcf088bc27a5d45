package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetCourierByIDQueryIsNotConstructed = errors.New(
	"GetCourierByIDQuery must be created via NewGetCourierByIDQuery constructor",
)

// GetCourierByIDQuery retrieves a single courier's profile by identifier.
type GetCourierByIDQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierByIDQuery creates a query to retrieve one courier.
func NewGetCourierByIDQuery(courierID kernel.UUID) (GetCourierByIDQuery, error) {
	query := GetCourierByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierByIDQueryIsNotConstructed)
}

// CourierID returns the courier ID from the query.
func (q GetCourierByIDQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetCourierByIDQuery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.courierID = id
	return nil
}

// GetCourierByIDQueryResponse represents one courier's profile in the read
// model.
type GetCourierByIDQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}
