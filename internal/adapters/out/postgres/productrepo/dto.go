// Package productrepo provides data transfer objects and mapping functions
// for product catalog persistence.
package productrepo

import (
	"github.com/google/uuid"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting catalog products.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU          string    `gorm:"column:sku;uniqueIndex"`
	Name         string
	Description  string
	UnitVolume   *float64
	Unit         string
	DefaultPrice float64
	Active       bool
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Bytes(),
		SKU:          aggregate.SKU(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		UnitVolume:   aggregate.UnitVolume(),
		Unit:         aggregate.Unit(),
		DefaultPrice: aggregate.DefaultPrice(),
		Active:       aggregate.Active(),
	}
}

// toDomain converts a database DTO to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.SKU, dto.Name, dto.Description,
		dto.UnitVolume, dto.Unit, dto.DefaultPrice, dto.Active,
	)
}
