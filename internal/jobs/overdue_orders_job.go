package jobs

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// overdueOrdersFinder is the query the sweep runs; satisfied by
// queries.OverdueOrdersQueryHandler.
type overdueOrdersFinder interface {
	Handle(ctx context.Context, asOf time.Time) ([]queries.OverdueOrderView, error)
}

// OverdueOrdersJob periodically scans for open orders past their due date and
// reports them in the log. The job only reads: the order lifecycle is driven
// exclusively by user actions, never by the scheduler.
type OverdueOrdersJob struct {
	finder overdueOrdersFinder
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOverdueOrdersJob creates a new job that sweeps for overdue orders.
func NewOverdueOrdersJob(finder overdueOrdersFinder, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		finder: finder,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the sweep, running at the top of every minute.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		overdue, err := j.finder.Handle(ctx, time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders sweep failed", "error", err)
			return
		}

		for _, view := range overdue {
			j.logger.WarnContext(ctx, "Order is past its due date",
				"order_id", view.ID.String(),
				"code", view.Code,
				"client_id", view.ClientID.String(),
				"priority", view.Priority,
				"status", view.Status,
				"due_date", view.DueDate.Format(time.DateOnly),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
