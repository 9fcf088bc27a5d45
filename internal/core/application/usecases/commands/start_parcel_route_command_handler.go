package commands

import (
	"context"
)

// StartParcelRouteCommandHandler transitions a parcel to the en-route state.
type StartParcelRouteCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewStartParcelRouteCommandHandler creates a handler for starting parcel routes.
func NewStartParcelRouteCommandHandler(uowFactory ParcelUoWFactory) StartParcelRouteCommandHandler {
	return StartParcelRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route start command.
// Returns errs.ObjectNotFoundError when the parcel does not exist and the
// domain transition error when the parcel is not in the undelivered state.
func (h *StartParcelRouteCommandHandler) Handle(ctx context.Context, cmd StartParcelRouteCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	parcelEntity, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = parcelEntity.StartRoute(); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, parcelEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
