package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetDashboardMetricsQueryHandler computes aggregate procurement figures
// directly in SQL. Uses direct queries for optimal read performance in the
// CQRS pattern.
type GetDashboardMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardMetricsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardMetricsQueryHandler(db *gorm.DB) GetDashboardMetricsQueryHandler {
	return GetDashboardMetricsQueryHandler{db: db}
}

// Handle executes the aggregate queries and assembles the dashboard response.
func (h GetDashboardMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardMetricsQuery,
) (DashboardMetricsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardMetricsResponse{}, err
	}

	var response DashboardMetricsResponse
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM products WHERE active),
			(SELECT COUNT(*) FROM suppliers),
			(SELECT COUNT(*) FROM purchase_orders
				WHERE status IN ('DRAFT', 'ISSUED', 'PARTIALLY_RECEIVED')),
			(SELECT COUNT(*) FROM purchase_orders
				WHERE expected_date IS NOT NULL
				  AND expected_date < ?
				  AND status IN ('DRAFT', 'ISSUED', 'PARTIALLY_RECEIVED')),
			(SELECT COALESCE(SUM((i.ordered_quantity - i.received_quantity) * i.unit_price), 0)
				FROM purchase_order_items i
				JOIN purchase_orders o ON o.id = i.purchase_order_id
				WHERE o.status IN ('DRAFT', 'ISSUED', 'PARTIALLY_RECEIVED')),
			(SELECT COUNT(*) FROM stock_movements WHERE occurred_at >= ?)
	`, now, startOfDay).Row()

	err := row.Scan(
		&response.ProductCount,
		&response.SupplierCount,
		&response.OpenOrderCount,
		&response.OverdueOrderCount,
		&response.PendingPurchaseValue,
		&response.MovementsToday,
	)
	if err != nil {
		return DashboardMetricsResponse{}, err
	}

	return response, nil
}
