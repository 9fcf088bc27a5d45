package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles parcel registration. Verifies the
// assigned courier exists before persisting the new parcel.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// Returns errs.ObjectNotFoundError when the assigned courier does not exist.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	parcelEntity, err := parcel.NewParcel(cmd.ParcelID(), cmd.Address(), cmd.Recipient(), cmd.CourierID())
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, parcelEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
