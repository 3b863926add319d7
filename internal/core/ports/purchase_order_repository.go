package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// PurchaseOrderRepository defines the persistence contract for purchase order
// aggregates. Provides methods for storing, retrieving, and querying orders
// based on their lifecycle status.
type PurchaseOrderRepository interface {
	// Add persists a new purchase order aggregate with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Update persists changes to an existing purchase order aggregate,
	// including its full item collection.
	Update(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Get retrieves a purchase order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error)

	// GetForUpdate retrieves a purchase order and locks its row for the
	// duration of the current transaction. Concurrent receipts against the
	// same order serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error)

	// GetAllInStatus retrieves all purchase orders in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.PurchaseOrder, error)

	// Delete removes a purchase order and its items from storage.
	// Previously recorded stock movements are kept for audit.
	Delete(ctx context.Context, id kernel.UUID) error
}
