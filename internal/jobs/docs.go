// Package jobs provides scheduled background tasks for the collection
// tracking service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CertificateAuditJob lists Completed requests that have no certificate and
// logs a warning for each. Completion writes the status and the certificate
// in one transaction, so a finding points at data written outside the
// service. The job never modifies data.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(uncertifiedHandler, cfg.AuditSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds. The default,
// DefaultAuditSchedule, runs once a minute.
package jobs
