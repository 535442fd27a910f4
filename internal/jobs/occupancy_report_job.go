package jobs

import (
	"context"
	"log/slog"

	"depot/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOccupancySchedule runs the report at the start of every minute.
const DefaultOccupancySchedule = "0 * * * * *"

// OccupancyReportJob periodically logs how many slots of every warehouse are
// free and how many are occupied.
type OccupancyReportJob struct {
	handler  queries.ListWarehousesQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOccupancyReportJob creates the job. schedule is a cron expression with a
// seconds field; an empty schedule falls back to DefaultOccupancySchedule.
func NewOccupancyReportJob(
	handler queries.ListWarehousesQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OccupancyReportJob {
	if schedule == "" {
		schedule = DefaultOccupancySchedule
	}

	return &OccupancyReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "occupancy_report_job"),
	}
}

func (j *OccupancyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Occupancy report job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running report to finish.
func (j *OccupancyReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Occupancy report job stopped")
}

// Run produces one report.
func (j *OccupancyReportJob) Run(ctx context.Context) {
	warehouses, err := j.handler.Handle(ctx, queries.NewListWarehousesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Occupancy report failed", "error", err)
		return
	}

	for _, wh := range warehouses {
		free, occupied := wh.Occupancy()
		j.logger.InfoContext(ctx, "Warehouse occupancy",
			"warehouse_id", wh.ID.String(),
			"warehouse", wh.Name,
			"free", free,
			"occupied", occupied,
		)
	}
}
