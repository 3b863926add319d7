package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/warehouse"
)

// LocationRepository defines the persistence contract for warehouse locations.
type LocationRepository interface {
	// Add persists a new warehouse location.
	Add(ctx context.Context, aggregate *warehouse.Location) error

	// Update persists changes to an existing warehouse location,
	// in particular its used volume.
	Update(ctx context.Context, aggregate *warehouse.Location) error

	// Get retrieves a warehouse location by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Location, error)

	// GetForUpdate retrieves a warehouse location and locks its row for the
	// duration of the current transaction. Concurrent allocations against the
	// same location serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Location, error)

	// GetByCode retrieves a warehouse location by its unique code.
	GetByCode(ctx context.Context, code string) (*warehouse.Location, error)
}
