package commands

import (
	"context"

	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/core/domain/services"
	"wastecollection/internal/pkg/errs"
)

// CompletionResult is the completed request and the certificate issued for it.
type CompletionResult struct {
	Request     *request.Request
	Certificate *certificate.Certificate
}

// CertificateIssuer builds the certificate of a completed request.
type CertificateIssuer interface {
	Issue(r *request.Request, collectorID kernel.ID) (*certificate.Certificate, error)
}

// CompleteRequestCommandHandler performs the Accepted -> Completed transition
// and stores the certificate in the same transaction. Any failure after the
// status update, including a duplicate certificate, rolls the status back,
// so a Completed request always has its certificate.
type CompleteRequestCommandHandler struct {
	uowFactory CompletionUoWFactory
	issuer     CertificateIssuer
}

func NewCompleteRequestCommandHandler(
	uowFactory CompletionUoWFactory,
	issuer CertificateIssuer,
) CompleteRequestCommandHandler {
	if issuer == nil {
		issuer = services.NewCertificateIssuer()
	}
	return CompleteRequestCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

func (h CompleteRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteRequestCommand,
) (CompletionResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompletionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompletionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requests := uow.RequestRepository()

	r, err := requests.Get(ctx, cmd.RequestID())
	if err != nil {
		return CompletionResult{}, err
	}

	// report the wrong status before looking at the collector
	if _, err = r.Status().Complete(); err != nil {
		return CompletionResult{}, err
	}

	exists, err := uow.CollectorRepository().Exists(ctx, cmd.CollectorID())
	if err != nil {
		return CompletionResult{}, err
	}
	if !exists {
		return CompletionResult{}, errs.NewObjectNotFoundError("collector", cmd.CollectorID().String())
	}

	if err = transition(ctx, requests, r, "complete", r.Complete); err != nil {
		return CompletionResult{}, err
	}

	cert, err := h.issuer.Issue(r, cmd.CollectorID())
	if err != nil {
		return CompletionResult{}, err
	}

	stored, err := uow.CertificateRepository().Add(ctx, cert)
	if err != nil {
		return CompletionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompletionResult{}, err
	}

	return CompletionResult{Request: r, Certificate: stored}, nil
}
