// Package orderrepo provides data transfer objects and mapping functions for
// purchase order persistence. This package implements the repository pattern
// for the purchase order aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// PurchaseOrderDTO represents the database structure for persisting purchase
// order aggregates. Items are mapped to a child table owned by the order;
// deleting an order cascades to its items.
//
// Code is nullable so the unique index only applies to orders that carry a
// code: an empty code maps to NULL, and any number of codeless orders may
// coexist.
type PurchaseOrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          *string   `gorm:"uniqueIndex"`
	SupplierID    uuid.UUID `gorm:"type:uuid;index"`
	OrderDate     time.Time
	ExpectedDate  *time.Time
	DeliveryDate  *time.Time
	Status        string `gorm:"index"`
	TotalAmount   float64
	FullyReceived bool
	Items         []PurchaseOrderItemDTO `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for purchase order entities.
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItemDTO represents one order line in the database.
type PurchaseOrderItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID  uuid.UUID `gorm:"type:uuid;index"`
	ProductID        uuid.UUID `gorm:"type:uuid;index"`
	Description      string
	OrderedQuantity  float64
	ReceivedQuantity float64
	UnitPrice        float64
	LocationID       *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order line entities.
func (PurchaseOrderItemDTO) TableName() string {
	return "purchase_order_items"
}

// fromDomain converts a purchase order aggregate to its database representation.
func fromDomain(aggregate *order.PurchaseOrder) PurchaseOrderDTO {
	items := make([]PurchaseOrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var locationID *uuid.UUID
		if id := item.LocationID(); id != nil {
			raw := id.Bytes()
			locationID = &raw
		}

		items = append(items, PurchaseOrderItemDTO{
			ID:               item.ID().Bytes(),
			PurchaseOrderID:  aggregate.ID().Bytes(),
			ProductID:        item.ProductID().Bytes(),
			Description:      item.Description(),
			OrderedQuantity:  item.OrderedQuantity(),
			ReceivedQuantity: item.ReceivedQuantity(),
			UnitPrice:        item.UnitPrice(),
			LocationID:       locationID,
		})
	}

	var code *string
	if aggregate.Code() != "" {
		c := aggregate.Code()
		code = &c
	}

	return PurchaseOrderDTO{
		ID:            aggregate.ID().Bytes(),
		Code:          code,
		SupplierID:    aggregate.SupplierID().Bytes(),
		OrderDate:     aggregate.OrderDate(),
		ExpectedDate:  aggregate.ExpectedDate(),
		DeliveryDate:  aggregate.DeliveryDate(),
		Status:        aggregate.Status().String(),
		TotalAmount:   aggregate.TotalAmount(),
		FullyReceived: aggregate.FullyReceived(),
		Items:         items,
	}
}

// toDomain converts a database DTO to a purchase order aggregate.
// Reconstructs the complete aggregate including receiving progress using
// RestorePurchaseOrder, which re-derives the total and fully-received flag.
func toDomain(dto PurchaseOrderDTO) (*order.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	code := ""
	if dto.Code != nil {
		code = *dto.Code
	}

	return order.RestorePurchaseOrder(
		id, code, supplierID,
		dto.OrderDate, dto.ExpectedDate, dto.DeliveryDate,
		status, items,
	)
}

func itemToDomain(dto PurchaseOrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	var locationID *kernel.UUID
	if dto.LocationID != nil {
		lID, locErr := kernel.UUIDFromBytes((*dto.LocationID)[:])
		if locErr != nil {
			return nil, locErr
		}
		locationID = &lID
	}

	return order.RestoreItem(
		id, productID,
		dto.OrderedQuantity, dto.ReceivedQuantity, dto.UnitPrice,
		dto.Description, locationID,
	)
}
