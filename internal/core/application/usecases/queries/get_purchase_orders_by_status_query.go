package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrGetPurchaseOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetPurchaseOrdersByStatusQuery must be created via NewGetPurchaseOrdersByStatusQuery constructor",
)

// GetPurchaseOrdersByStatusQuery retrieves purchase order summaries filtered
// by lifecycle status.
type GetPurchaseOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrdersByStatusQuery creates a query for orders in the given status.
func NewGetPurchaseOrdersByStatusQuery(status order.Status) (GetPurchaseOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetPurchaseOrdersByStatusQuery{}, err
	}

	return GetPurchaseOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter by.
func (q GetPurchaseOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// PurchaseOrderSummaryResponse represents one order in list read models.
// Items are omitted; use GetPurchaseOrderQuery for the full order.
type PurchaseOrderSummaryResponse struct {
	ID            kernel.UUID
	Code          string
	SupplierID    kernel.UUID
	OrderDate     time.Time
	ExpectedDate  *time.Time
	Status        string
	TotalAmount   float64
	FullyReceived bool
}
