package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves open orders whose expected date
// has passed. Terminal orders are never overdue: a received order arrived,
// and a canceled one is no longer expected.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query and returns overdue order summaries, most
// overdue first. Orders without an expected date are never reported.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
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
		WHERE expected_date IS NOT NULL
		  AND expected_date < ?
		  AND status IN ('DRAFT', 'ISSUED', 'PARTIALLY_RECEIVED')
		ORDER BY expected_date
	`, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
