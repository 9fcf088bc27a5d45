package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/admin"
)

// AdminRepository defines the persistence contract for admin users.
// Admins are provisioned out of band, so the interface is read-only.
type AdminRepository interface {
	// GetByEmail retrieves an admin by login email.
	// Returns an ObjectNotFoundError when no admin uses the email.
	GetByEmail(ctx context.Context, email string) (*admin.Admin, error)
}
