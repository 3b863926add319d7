package ports

import (
	"context"

	"procurement/internal/core/domain/model/warehouse"
)

// MovementRepository defines the persistence contract for the stock movement
// log. Movements are append-only audit records; there is no update or delete.
type MovementRepository interface {
	// Add appends a stock movement to the log.
	Add(ctx context.Context, aggregate *warehouse.Movement) error
}
