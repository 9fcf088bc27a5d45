package queries

import (
	"context"
	"database/sql"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierByIDQueryHandler retrieves one courier's profile from the
// database.
type GetCourierByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierByIDQueryHandler creates a handler for single-courier queries.
func NewGetCourierByIDQueryHandler(db *gorm.DB) GetCourierByIDQueryHandler {
	return GetCourierByIDQueryHandler{db: db}
}

// Handle executes the query to retrieve one courier.
// Returns an ObjectNotFoundError when the courier does not exist.
func (h GetCourierByIDQueryHandler) Handle(
	ctx context.Context,
	query GetCourierByIDQuery,
) (GetCourierByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierByIDQueryResponse{}, err
	}

	var response GetCourierByIDQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM couriers
		WHERE id = ?
	`, query.CourierID().Bytes()).Row()

	if err := row.Scan(&id, &response.Name, &response.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCourierByIDQueryResponse{}, errs.NewObjectNotFoundError(
				"courier", query.CourierID().String(),
			)
		}
		return GetCourierByIDQueryResponse{}, err
	}

	courierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCourierByIDQueryResponse{}, err
	}
	response.ID = courierID

	return response, nil
}
