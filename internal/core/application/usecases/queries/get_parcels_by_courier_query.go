package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelsByCourierQueryIsNotConstructed = errors.New(
	"GetParcelsByCourierQuery must be created via NewGetParcelsByCourierQuery constructor",
)

// GetParcelsByCourierQuery retrieves every parcel assigned to one courier.
// This is the courier's work list: destination addresses, recipients, and
// current statuses.
type GetParcelsByCourierQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelsByCourierQuery creates a query for a courier's parcel list.
func NewGetParcelsByCourierQuery(courierID kernel.UUID) (GetParcelsByCourierQuery, error) {
	query := GetParcelsByCourierQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetParcelsByCourierQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsByCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsByCourierQueryIsNotConstructed)
}

// CourierID returns the courier ID from the query.
func (q GetParcelsByCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetParcelsByCourierQuery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.courierID = id
	return nil
}

// GetParcelsByCourierQueryResponse represents one assigned parcel in the
// courier's work list.
type GetParcelsByCourierQueryResponse struct {
	ID           kernel.UUID
	Recipient    string
	Neighborhood string
	Street       string
	Number       int
	PostalCode   string
	Status       string
}
