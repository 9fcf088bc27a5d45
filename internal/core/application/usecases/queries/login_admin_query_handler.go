package queries

import (
	"context"

	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// LoginAdminQueryHandler verifies admin credentials against the stored
// password hash. An unknown email surfaces as NotFound, a wrong password as
// Unauthorized.
type LoginAdminQueryHandler struct {
	adminRepo ports.AdminRepository
	hasher    ports.PasswordHasher
}

// NewLoginAdminQueryHandler creates a handler for admin credential checks.
func NewLoginAdminQueryHandler(
	adminRepo ports.AdminRepository, hasher ports.PasswordHasher,
) LoginAdminQueryHandler {
	return LoginAdminQueryHandler{
		adminRepo: adminRepo,
		hasher:    hasher,
	}
}

// Handle executes the credential check.
// Returns errs.ObjectNotFoundError when the email is unknown and
// errs.UnauthorizedError when the password does not match.
func (h LoginAdminQueryHandler) Handle(
	ctx context.Context,
	query LoginAdminQuery,
) (LoginAdminQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginAdminQueryResponse{}, err
	}

	adminEntity, err := h.adminRepo.GetByEmail(ctx, query.Email())
	if err != nil {
		return LoginAdminQueryResponse{}, err
	}

	if !h.hasher.Check(query.Password(), adminEntity.PasswordHash()) {
		return LoginAdminQueryResponse{}, errs.NewUnauthorizedError("admin")
	}

	return LoginAdminQueryResponse{
		AdminID: adminEntity.ID(),
		Name:    adminEntity.Name(),
	}, nil
}
