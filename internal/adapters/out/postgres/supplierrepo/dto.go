// Package supplierrepo provides data transfer objects and mapping functions
// for supplier persistence.
package supplierrepo

import (
	"github.com/google/uuid"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
)

// SupplierDTO represents the database structure for persisting suppliers.
type SupplierDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"index"`
	TaxID   string
	Email   string
	Address string
	Notes   string
}

// TableName specifies the database table name for suppliers.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// fromDomain converts a supplier aggregate to its database representation.
func fromDomain(aggregate *supplier.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		TaxID:   aggregate.TaxID(),
		Email:   aggregate.Email(),
		Address: aggregate.Address(),
		Notes:   aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a supplier aggregate.
func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return supplier.RestoreSupplier(id, dto.Name, dto.TaxID, dto.Email, dto.Address, dto.Notes)
}
