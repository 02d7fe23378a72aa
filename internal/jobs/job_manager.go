package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	warehouseStatsJob *WarehouseStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		warehouseStatsJob: NewWarehouseStatsJob(getAllOrdersHandler, getAllDriversHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.warehouseStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start warehouse stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.warehouseStatsJob.Stop()
}
