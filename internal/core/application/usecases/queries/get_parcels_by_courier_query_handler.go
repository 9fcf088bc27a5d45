package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsByCourierQueryHandler retrieves a courier's assigned parcels from
// the database.
type GetParcelsByCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsByCourierQueryHandler creates a handler for courier work-list
// queries.
func NewGetParcelsByCourierQueryHandler(db *gorm.DB) GetParcelsByCourierQueryHandler {
	return GetParcelsByCourierQueryHandler{db: db}
}

// Handle executes the query to retrieve a courier's parcels.
// Returns an ObjectNotFoundError when the courier does not exist; a courier
// with no parcels gets an empty list, not an error.
func (h GetParcelsByCourierQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsByCourierQuery,
) ([]GetParcelsByCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var courierCount int64
	if err := h.db.WithContext(ctx).
		Table("couriers").
		Where("id = ?", query.CourierID().Bytes()).
		Count(&courierCount).Error; err != nil {
		return nil, err
	}
	if courierCount == 0 {
		return nil, errs.NewObjectNotFoundError("courier", query.CourierID().String())
	}

	parcels := make([]GetParcelsByCourierQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			recipient,
			address_neighborhood,
			address_street,
			address_number,
			address_postal_code,
			status
		FROM parcels
		WHERE courier_id = ?
		ORDER BY recipient
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetParcelsByCourierQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&response.Recipient,
			&response.Neighborhood,
			&response.Street,
			&response.Number,
			&response.PostalCode,
			&status,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = parcelID
		response.Status = parcel.Status(status).String()
		parcels = append(parcels, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
