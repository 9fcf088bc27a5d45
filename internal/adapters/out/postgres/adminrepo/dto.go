// Package adminrepo provides data transfer objects and mapping functions for
// admin user persistence. Admin accounts are provisioned out of band, so the
// repository only reads.
package adminrepo

import (
	"parceltrack/internal/core/domain/model/admin"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AdminDTO represents the database structure for admin users.
type AdminDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_admins_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for admin entities.
// Overrides GORM's default naming convention to use "admins" instead of "admin_dtos".
func (AdminDTO) TableName() string {
	return "admins"
}

// toDomain converts a database DTO to an admin domain entity.
func toDomain(dto AdminDTO) (*admin.Admin, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return admin.RestoreAdmin(id, dto.Name, dto.Email, dto.PasswordHash)
}
