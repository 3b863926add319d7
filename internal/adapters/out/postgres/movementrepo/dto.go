// Package movementrepo provides data transfer objects and mapping functions
// for the append-only stock movement log.
package movementrepo

import (
	"time"

	"github.com/google/uuid"

	"procurement/internal/core/domain/model/warehouse"
)

// MovementDTO represents the database structure for persisting stock movements.
type MovementDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;index"`
	LocationID uuid.UUID `gorm:"type:uuid;index"`
	Quantity   float64
	Direction  string
	Reference  string `gorm:"index"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for stock movements.
func (MovementDTO) TableName() string {
	return "stock_movements"
}

// fromDomain converts a movement record to its database representation.
func fromDomain(aggregate *warehouse.Movement) MovementDTO {
	return MovementDTO{
		ID:         aggregate.ID().Bytes(),
		ProductID:  aggregate.ProductID().Bytes(),
		LocationID: aggregate.LocationID().Bytes(),
		Quantity:   aggregate.Quantity(),
		Direction:  aggregate.Direction().String(),
		Reference:  aggregate.Reference(),
		OccurredAt: aggregate.OccurredAt(),
	}
}
