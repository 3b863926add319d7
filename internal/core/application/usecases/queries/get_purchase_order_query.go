// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
	"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
)

// GetPurchaseOrderQuery retrieves one purchase order with its line items.
//
// Example:
//
//	query, _ := NewGetPurchaseOrderQuery(orderID)
//	handler := NewGetPurchaseOrderQueryHandler(db)
//
//	po, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("Order %s: %s, %.2f\n", po.Code, po.Status, po.TotalAmount)
type GetPurchaseOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrderQuery creates a query to retrieve the given order.
func NewGetPurchaseOrderQuery(orderID kernel.UUID) (GetPurchaseOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPurchaseOrderQuery{}, err
	}

	return GetPurchaseOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

// OrderID returns the purchase order to retrieve.
func (q GetPurchaseOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// PurchaseOrderItemResponse represents one order line in the read model.
type PurchaseOrderItemResponse struct {
	ID               kernel.UUID
	ProductID        kernel.UUID
	Description      string
	OrderedQuantity  float64
	ReceivedQuantity float64
	UnitPrice        float64
	LocationID       *kernel.UUID
}

// PurchaseOrderResponse represents a purchase order in the read model,
// including its derived totals and receiving progress.
type PurchaseOrderResponse struct {
	ID            kernel.UUID
	Code          string
	SupplierID    kernel.UUID
	OrderDate     time.Time
	ExpectedDate  *time.Time
	DeliveryDate  *time.Time
	Status        string
	TotalAmount   float64
	FullyReceived bool
	Items         []PurchaseOrderItemResponse
}
