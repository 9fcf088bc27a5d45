package adminrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/admin"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAdminRepository implements AdminRepository using GORM.
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GORM admin repository.
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// GetByEmail retrieves an admin by login email.
func (r *GormAdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var dto AdminDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
