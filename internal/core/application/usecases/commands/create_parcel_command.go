package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrRecipientIsRequired = errors.New("recipient is required")
)

// CreateParcelCommand represents a request to register a parcel and assign it
// to a courier. The parcel starts in the undelivered state.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	courierID kernel.UUID
	recipient string
	address   parcel.Address

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Automatically generates a unique ID for the parcel.
func NewCreateParcelCommand(
	courierID kernel.UUID, recipient string, address parcel.Address,
) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(kernel.NewUUID()),
		command.setCourierID(courierID),
		command.setRecipient(recipient),
		command.setAddress(address),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the generated parcel ID from the command.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CourierID returns the assigned courier ID from the command.
func (c CreateParcelCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Recipient returns the recipient name from the command.
func (c CreateParcelCommand) Recipient() string {
	return c.recipient
}

// Address returns the destination address from the command.
func (c CreateParcelCommand) Address() parcel.Address {
	return c.address
}

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateParcelCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return ErrRecipientIsRequired
	}

	c.recipient = recipient
	return nil
}

func (c *CreateParcelCommand) setAddress(address parcel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
