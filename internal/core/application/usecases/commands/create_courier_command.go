package commands

import (
	"errors"
	"net/mail"
	"strings"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrEmailIsInvalid     = errors.New("email must be a valid address")
	ErrPasswordIsRequired = errors.New("password is required")
)

// CreateCourierCommand represents a request to register a new courier.
// Carries the plain-text password; hashing happens in the handler so the
// domain model only ever sees the hash.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("Juan Pérez", "juan@example.com", "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory, hasher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
//	fmt.Printf("Created courier with ID: %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	email     string
	password  string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier.
// Automatically generates a unique ID for the courier.
// Validates that name and password are not empty and the email parses.
func NewCreateCourierCommand(name, email, password string) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setEmail(email),
		command.setPassword(password),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCourierCommandIsNotConstructed if validation fails.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the generated courier ID from the command.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier name from the command.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Email returns the normalized courier email from the command.
func (c CreateCourierCommand) Email() string {
	return c.email
}

// Password returns the plain-text password from the command.
func (c CreateCourierCommand) Password() string {
	return c.password
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailIsInvalid
	}

	c.email = strings.ToLower(email)
	return nil
}

func (c *CreateCourierCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
