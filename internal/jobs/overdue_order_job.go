package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"procurement/internal/core/application/usecases/queries"
)

// OverdueOrderJob periodically reports purchase orders that are past their
// expected delivery date but not yet fully received or canceled.
type OverdueOrderJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrderJob creates a job that checks for overdue orders every minute.
func NewOverdueOrderJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueOrderJob {
	return &OverdueOrderJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_order_job"),
	}
}

// Start begins the overdue order check to run every minute.
func (j *OverdueOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOverdueOrdersQuery(time.Now().UTC())
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Overdue order job failed to build query", "error", queryErr)
			return
		}

		overdue, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Overdue order job failed", "error", handleErr)
			return
		}

		for _, po := range overdue {
			j.logger.WarnContext(ctx, "Purchase order is overdue",
				"orderId", po.ID.String(),
				"code", po.Code,
				"supplierId", po.SupplierID.String(),
				"expectedDate", po.ExpectedDate,
				"status", po.Status,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order job started (running every minute)")
	return nil
}

// Stop stops the overdue order job.
func (j *OverdueOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order job stopped")
}
