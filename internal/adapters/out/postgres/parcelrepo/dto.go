// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. This package implements the repository pattern for
// the parcel domain aggregate, handling the conversion between domain
// entities and database representations.
package parcelrepo

import (
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The destination address is embedded into the parcels table.
type ParcelDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID  `gorm:"type:uuid;not null;index:idx_parcels_courier_id"`
	Recipient string     `gorm:"type:varchar(255);not null"`
	Address   AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status    int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels" instead of "parcel_dtos".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// AddressDTO represents the embedded destination address within the parcels
// table.
type AddressDTO struct {
	Neighborhood string `gorm:"type:varchar(255);not null"`
	Street       string `gorm:"type:varchar(255);not null"`
	Number       int    `gorm:"type:int;not null"`
	PostalCode   string `gorm:"type:varchar(16);not null"`
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(parcel *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:        parcel.ID().Bytes(),
		CourierID: parcel.CourierID().Bytes(),
		Recipient: parcel.Recipient(),
		Address: AddressDTO{
			Neighborhood: parcel.Address().Neighborhood(),
			Street:       parcel.Address().Street(),
			Number:       parcel.Address().Number(),
			PostalCode:   parcel.Address().PostalCode(),
		},
		Status: int(parcel.Status()),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	address, err := parcel.NewAddress(
		dto.Address.Neighborhood,
		dto.Address.Street,
		dto.Address.Number,
		dto.Address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, address, dto.Recipient, courierID, parcel.Status(dto.Status))
}
