package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	certificateAuditJob *CertificateAuditJob
}

func NewJobManager(
	uncertified UncertifiedCompletions,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		certificateAuditJob: NewCertificateAuditJob(uncertified, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.certificateAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start certificate audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.certificateAuditJob.Stop()
}
