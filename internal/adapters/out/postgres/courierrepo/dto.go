// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. This package implements the repository pattern for
// the courier domain aggregate, handling the conversion between domain
// entities and database representations.
package courierrepo

import (
	"parceltrack/internal/core/domain/model/courier"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. The email carries a unique index so duplicate registrations
// are rejected at the database level.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_couriers_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:           courier.ID().Bytes(),
		Name:         courier.Name(),
		Email:        courier.Email(),
		PasswordHash: courier.PasswordHash(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Email, dto.PasswordHash)
}
