package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for supplier entries.
type SupplierRepository interface {
	// Add persists a new supplier.
	Add(ctx context.Context, aggregate *supplier.Supplier) error

	// Update persists changes to an existing supplier.
	Update(ctx context.Context, aggregate *supplier.Supplier) error

	// Get retrieves a supplier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)
}
