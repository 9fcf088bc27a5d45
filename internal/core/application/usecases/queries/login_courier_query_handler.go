package queries

import (
	"context"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// LoginCourierQueryHandler verifies courier credentials against the stored
// password hash. An unknown email surfaces as NotFound, a wrong password as
// Unauthorized.
type LoginCourierQueryHandler struct {
	courierRepo ports.CourierRepository
	hasher      ports.PasswordHasher
}

// NewLoginCourierQueryHandler creates a handler for courier credential
// checks.
func NewLoginCourierQueryHandler(
	courierRepo ports.CourierRepository, hasher ports.PasswordHasher,
) LoginCourierQueryHandler {
	return LoginCourierQueryHandler{
		courierRepo: courierRepo,
		hasher:      hasher,
	}
}

// Handle executes the credential check.
// Returns errs.ObjectNotFoundError when the email is unknown and
// errs.UnauthorizedError when the password does not match.
func (h LoginCourierQueryHandler) Handle(
	ctx context.Context,
	query LoginCourierQuery,
) (LoginCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginCourierQueryResponse{}, err
	}

	courierEntity, err := h.courierRepo.GetByEmail(ctx, query.Email())
	if err != nil {
		return LoginCourierQueryResponse{}, err
	}

	if !h.hasher.Check(query.Password(), courierEntity.PasswordHash()) {
		return LoginCourierQueryResponse{}, errs.NewUnauthorizedError("courier")
	}

	return LoginCourierQueryResponse{
		CourierID: courierEntity.ID(),
		Name:      courierEntity.Name(),
	}, nil
}
