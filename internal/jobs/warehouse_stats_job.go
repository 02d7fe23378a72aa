package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// WarehouseStatsJob periodically logs how many orders sit in each lifecycle
// status and how much of the fleet is free. Read-only; it exists so operators
// can watch the shelf without querying the database by hand.
type WarehouseStatsJob struct {
	ordersHandler  queries.GetAllOrdersQueryHandler
	driversHandler queries.GetAllDriversQueryHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewWarehouseStatsJob creates a job that reports warehouse counts every minute.
func NewWarehouseStatsJob(
	ordersHandler queries.GetAllOrdersQueryHandler,
	driversHandler queries.GetAllDriversQueryHandler,
	logger *slog.Logger,
) *WarehouseStatsJob {
	return &WarehouseStatsJob{
		ordersHandler:  ordersHandler,
		driversHandler: driversHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "warehouse_stats_job"),
	}
}

// Start begins the stats job to run at the top of every minute.
func (j *WarehouseStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.ordersHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Warehouse stats job failed", "error", err)
			return
		}

		drivers, err := j.driversHandler.Handle(ctx, queries.NewGetAllDriversQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Warehouse stats job failed", "error", err)
			return
		}

		counts := make(map[string]int)
		for _, row := range orders {
			counts[row.Status]++
		}

		available := 0
		for _, row := range drivers {
			if row.Available {
				available++
			}
		}

		j.logger.InfoContext(ctx, "Warehouse stats",
			"orders", len(orders),
			"pending", counts["pending"],
			"borrowed", counts["borrowed"],
			"assigned", counts["assigned"],
			"delivered", counts["delivered"],
			"drivers", len(drivers),
			"drivers_available", available,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Warehouse stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *WarehouseStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Warehouse stats job stopped")
}
