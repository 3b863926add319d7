package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"procurement/internal/core/domain/model/kernel"
)

// GetPurchaseOrdersByStatusQueryHandler retrieves order summaries filtered
// by status, newest first.
type GetPurchaseOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrdersByStatusQueryHandler creates a handler for status-filtered
// order list queries.
func NewGetPurchaseOrdersByStatusQueryHandler(db *gorm.DB) GetPurchaseOrdersByStatusQueryHandler {
	return GetPurchaseOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query and returns matching order summaries
// ordered by order date descending.
func (h GetPurchaseOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrdersByStatusQuery,
) ([]PurchaseOrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			COALESCE(code, ''),
			supplier_id,
			order_date,
			expected_date,
			status,
			total_amount,
			fully_received
		FROM purchase_orders
		WHERE status = ?
		ORDER BY order_date DESC
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries converts summary rows into the read model. Shared by
// the status and overdue list handlers, which select the same columns.
func scanOrderSummaries(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]PurchaseOrderSummaryResponse, error) {
	summaries := make([]PurchaseOrderSummaryResponse, 0)

	for rows.Next() {
		var (
			summary  PurchaseOrderSummaryResponse
			id       uuid.UUID
			supplier uuid.UUID
		)

		err := rows.Scan(
			&id,
			&summary.Code,
			&supplier,
			&summary.OrderDate,
			&summary.ExpectedDate,
			&summary.Status,
			&summary.TotalAmount,
			&summary.FullyReceived,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.SupplierID, err = kernel.UUIDFromBytes(supplier[:]); err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
