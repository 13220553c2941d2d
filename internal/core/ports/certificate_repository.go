package ports

import (
	"context"

	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/kernel"
)

// CertificateRepository persists final disposal certificates.
type CertificateRepository interface {
	// Add inserts the certificate and returns it with the store-assigned ID.
	// A second certificate for the same request, or a repeated token, is
	// rejected with an AlreadyExistsError raised by the store's unique index.
	Add(ctx context.Context, c *certificate.Certificate) (*certificate.Certificate, error)

	// GetByRequest returns the certificate of a request or an ObjectNotFoundError.
	GetByRequest(ctx context.Context, requestID kernel.ID) (*certificate.Certificate, error)
}
