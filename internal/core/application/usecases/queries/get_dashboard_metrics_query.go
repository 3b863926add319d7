package queries

import (
	"errors"

	"procurement/internal/pkg/guard"
)

var ErrGetDashboardMetricsQueryIsNotConstructed = errors.New(
	"GetDashboardMetricsQuery must be created via NewGetDashboardMetricsQuery constructor",
)

// GetDashboardMetricsQuery retrieves aggregate procurement figures for the
// operations dashboard.
//
// Example:
//
//	query := NewGetDashboardMetricsQuery()
//	handler := NewGetDashboardMetricsQueryHandler(db)
//
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute metrics: %w", err)
//	}
//	fmt.Printf("%d open orders, %.2f pending value\n",
//	    metrics.OpenOrderCount, metrics.PendingPurchaseValue)
type GetDashboardMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardMetricsQuery creates a parameterless dashboard query.
func NewGetDashboardMetricsQuery() GetDashboardMetricsQuery {
	return GetDashboardMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardMetricsQueryIsNotConstructed)
}

// DashboardMetricsResponse represents the aggregate figures in the read model.
//
// PendingPurchaseValue is the monetary value of goods ordered but not yet
// received on open orders: the sum of
// (ordered - received) * unit price over their items.
type DashboardMetricsResponse struct {
	ProductCount         int64
	SupplierCount        int64
	OpenOrderCount       int64
	OverdueOrderCount    int64
	PendingPurchaseValue float64
	MovementsToday       int64
}
