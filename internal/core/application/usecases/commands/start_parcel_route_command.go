package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrStartParcelRouteCommandIsNotConstructed = errors.New(
	"StartParcelRouteCommand must be created via NewStartParcelRouteCommand constructor",
)

// StartParcelRouteCommand represents a request to move a parcel from the
// undelivered state to en-route, marking the start of its delivery trip.
type StartParcelRouteCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartParcelRouteCommand creates a command to start a parcel's route.
func NewStartParcelRouteCommand(parcelID kernel.UUID) (StartParcelRouteCommand, error) {
	command := StartParcelRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setParcelID(parcelID); err != nil {
		return StartParcelRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartParcelRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartParcelRouteCommandIsNotConstructed)
}

// ParcelID returns the parcel ID from the command.
func (c StartParcelRouteCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *StartParcelRouteCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}
