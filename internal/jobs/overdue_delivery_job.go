package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob periodically sweeps the order book for orders whose
// estimated delivery has passed without reaching the customer, and surfaces
// them in the log for the operations team to chase.
type OverdueDeliveryJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDeliveryJob creates a new job for overdue delivery detection.
// Uses GetOverdueOrdersQueryHandler to scan for late orders every minute.
func NewOverdueDeliveryJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue delivery job to run every minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		j.sweep(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the overdue delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

func (j *OverdueDeliveryJob) sweep(ctx context.Context) {
	now := time.Now().UTC()

	query, err := queries.NewGetOverdueOrdersQuery(now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery query construction failed", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery sweep failed", "error", err)
		return
	}

	for _, o := range overdue {
		attrs := []any{
			"order_id", o.ID.String(),
			"order_code", o.OrderCode,
			"current_stage", o.CurrentStage.String(),
			"estimated_delivery", o.EstimatedDelivery,
			"overdue_by", now.Sub(o.EstimatedDelivery).Round(time.Minute).String(),
		}
		if o.AssignedStaffID != nil {
			attrs = append(attrs, "assigned_staff_id", o.AssignedStaffID.String())
		}
		j.logger.WarnContext(ctx, "Order is past its estimated delivery", attrs...)
	}
}
