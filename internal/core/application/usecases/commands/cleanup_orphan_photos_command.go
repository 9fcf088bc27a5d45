package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

// CleanupOrphanPhotosCommand triggers removal of stored photos that no
// delivery event references. Photos become orphaned when a delivery attempt
// fails after the upload but the best-effort compensation could not run.
type CleanupOrphanPhotosCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrCleanupOrphanPhotosCommandIsNotConstructed = errors.New(
		"CleanupOrphanPhotosCommand must be created via NewCleanupOrphanPhotosCommand constructor",
	)
)

// NewCleanupOrphanPhotosCommand creates a command to trigger orphan photo
// cleanup. This is a parameterless command; the retention window is owned by
// the handler.
func NewCleanupOrphanPhotosCommand() CleanupOrphanPhotosCommand {
	command := CleanupOrphanPhotosCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrCleanupOrphanPhotosCommandIsNotConstructed if validation fails.
func (c *CleanupOrphanPhotosCommand) Validate() error {
	return c.guard.Validate(ErrCleanupOrphanPhotosCommandIsNotConstructed)
}
