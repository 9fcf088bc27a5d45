package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// CreateCourierCommandHandler handles the business logic for courier
// registration. Hashes the password, rejects duplicate emails, and persists
// the new courier within a transaction.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory, hasher)
//	cmd, _ := NewCreateCourierCommand("Juan Pérez", "juan@example.com", "s3cret")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("courier registration failed: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
// Requires a CourierUoWFactory for transactional persistence and a
// PasswordHasher for credential storage.
func NewCreateCourierCommandHandler(
	uowFactory CourierUoWFactory, hasher ports.PasswordHasher,
) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the courier creation command.
// Returns errs.ConflictError when a courier with the same email already
// exists. Automatically rolls back on any error to prevent partial data.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	// Pre-check keeps the common duplicate path on a clean error; the unique
	// index in the repository still backstops concurrent registrations.
	if _, err = courierRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return errs.NewConflictError("email", cmd.Email())
	}

	courierEntity, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Email(), passwordHash)
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
