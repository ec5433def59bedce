package jobs

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reconciliationJob *DeliveryReconciliationJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(db *gorm.DB, reconciliationSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		reconciliationJob: NewDeliveryReconciliationJob(db, reconciliationSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
}
