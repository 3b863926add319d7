package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// GetPurchaseOrderQueryHandler retrieves a single purchase order with its
// items from the database. Uses direct SQL queries for optimal read
// performance in the CQRS pattern.
type GetPurchaseOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrderQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetPurchaseOrderQueryHandler(db *gorm.DB) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one purchase order.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetPurchaseOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (PurchaseOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return PurchaseOrderResponse{}, err
	}

	var (
		response PurchaseOrderResponse
		id       uuid.UUID
		supplier uuid.UUID
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			COALESCE(code, ''),
			supplier_id,
			order_date,
			expected_date,
			delivery_date,
			status,
			total_amount,
			fully_received
		FROM purchase_orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&response.Code,
		&supplier,
		&response.OrderDate,
		&response.ExpectedDate,
		&response.DeliveryDate,
		&response.Status,
		&response.TotalAmount,
		&response.FullyReceived,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return PurchaseOrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return PurchaseOrderResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return PurchaseOrderResponse{}, err
	}
	if response.SupplierID, err = kernel.UUIDFromBytes(supplier[:]); err != nil {
		return PurchaseOrderResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return PurchaseOrderResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetPurchaseOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]PurchaseOrderItemResponse, error) {
	items := make([]PurchaseOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			description,
			ordered_quantity,
			received_quantity,
			unit_price,
			location_id
		FROM purchase_order_items
		WHERE purchase_order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item       PurchaseOrderItemResponse
			id         uuid.UUID
			productID  uuid.UUID
			locationID *uuid.UUID
		)

		err = rows.Scan(
			&id,
			&productID,
			&item.Description,
			&item.OrderedQuantity,
			&item.ReceivedQuantity,
			&item.UnitPrice,
			&locationID,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if locationID != nil {
			loc, locErr := kernel.UUIDFromBytes((*locationID)[:])
			if locErr != nil {
				return nil, locErr
			}
			item.LocationID = &loc
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
