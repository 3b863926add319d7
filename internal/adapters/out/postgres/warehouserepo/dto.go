// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse location persistence.
package warehouserepo

import (
	"github.com/google/uuid"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/warehouse"
)

// LocationDTO represents the database structure for persisting warehouse
// locations with their capacity ledger state.
type LocationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"uniqueIndex"`
	Description    string
	CapacityVolume float64
	UsedVolume     float64
}

// TableName specifies the database table name for warehouse locations.
func (LocationDTO) TableName() string {
	return "warehouse_locations"
}

// fromDomain converts a location aggregate to its database representation.
func fromDomain(aggregate *warehouse.Location) LocationDTO {
	return LocationDTO{
		ID:             aggregate.ID().Bytes(),
		Code:           aggregate.Code(),
		Description:    aggregate.Description(),
		CapacityVolume: aggregate.CapacityVolume(),
		UsedVolume:     aggregate.UsedVolume(),
	}
}

// toDomain converts a database DTO to a location aggregate.
func toDomain(dto LocationDTO) (*warehouse.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreLocation(id, dto.Code, dto.Description, dto.CapacityVolume, dto.UsedVolume)
}
