package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"wastecollection/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit at the start of every minute. The
// format has a leading seconds field.
const DefaultAuditSchedule = "0 * * * * *"

// UncertifiedCompletions finds Completed requests without a certificate.
type UncertifiedCompletions interface {
	Handle(ctx context.Context, query queries.ListUncertifiedCompletionsQuery) ([]queries.RequestView, error)
}

// CertificateAuditJob periodically checks that every Completed request has
// its certificate and logs a warning for each one that does not. It only
// reads.
type CertificateAuditJob struct {
	handler  UncertifiedCompletions
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCertificateAuditJob(handler UncertifiedCompletions, schedule string, logger *slog.Logger) *CertificateAuditJob {
	if schedule == "" {
		schedule = DefaultAuditSchedule
	}
	return &CertificateAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "certificate_audit_job"),
	}
}

// Run performs one audit pass and returns the number of uncertified
// completions found.
func (j *CertificateAuditJob) Run(ctx context.Context) (int, error) {
	found, err := j.handler.Handle(ctx, queries.NewListUncertifiedCompletionsQuery())
	if err != nil {
		return 0, err
	}

	for _, r := range found {
		j.logger.WarnContext(ctx, "completed request has no certificate",
			"request_id", r.ID.Int64(),
			"site_id", r.SiteID.Int64(),
			"waste_type", r.WasteType,
		)
	}
	return len(found), nil
}

// Start schedules the audit. An invalid schedule is reported here.
func (j *CertificateAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Certificate audit failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Certificate audit job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running audit to finish.
func (j *CertificateAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Certificate audit job stopped")
}
