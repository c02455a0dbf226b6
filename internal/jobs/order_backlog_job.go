package jobs

import (
	"context"
	"log/slog"

	"grubdash/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the backlog report at the start of every minute.
const DefaultBacklogSchedule = "0 * * * * *"

// BacklogCounter counts stored orders per status.
type BacklogCounter interface {
	Backlog(ctx context.Context) (map[order.Status]int, error)
}

// OrderBacklogJob periodically logs how many orders sit in each status.
type OrderBacklogJob struct {
	counter  BacklogCounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBacklogJob creates the report job. schedule is a six-field cron
// expression (seconds first); empty means DefaultBacklogSchedule.
func NewOrderBacklogJob(counter BacklogCounter, schedule string, logger *slog.Logger) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		counter:  counter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

// Start schedules the report.
func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderBacklogJob) Run(ctx context.Context) {
	counts, err := j.counter.Backlog(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		return
	}

	attrs := make([]any, 0, 2*len(order.Statuses())+2)
	total := 0
	for _, s := range order.Statuses() {
		attrs = append(attrs, s.String(), counts[s])
		total += counts[s]
	}
	attrs = append(attrs, "total", total)
	j.logger.InfoContext(ctx, "Order backlog", attrs...)
}

// Stop stops the schedule and waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
