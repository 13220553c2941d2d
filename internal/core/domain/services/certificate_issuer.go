package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"wastecollection/internal/core/domain/model/certificate"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/pkg/errs"
)

const nonceSize = 16

// CertificateIssuer builds the final disposal certificate of a completed
// collection request.
//
// The verification token is the hex SHA-256 digest of
// "<requestId>-<collectorId>-<issuedAt>-<nonce>", where issuedAt is RFC 3339
// with nanoseconds and nonce joins the nanosecond clock reading with random
// bytes. Two issuances never share a token even within one clock tick.
//
// Issue does not touch storage. The caller persists the certificate in the
// same transaction that completed the request and relies on the store's
// unique indexes to reject duplicates.
type CertificateIssuer struct {
	now     func() time.Time
	entropy io.Reader
}

// NewCertificateIssuer returns an issuer using the wall clock and crypto/rand.
func NewCertificateIssuer() CertificateIssuer {
	return CertificateIssuer{now: time.Now, entropy: rand.Reader}
}

// NewCertificateIssuerWithSources lets tests fix the clock and the entropy.
func NewCertificateIssuerWithSources(now func() time.Time, entropy io.Reader) CertificateIssuer {
	return CertificateIssuer{now: now, entropy: entropy}
}

// Issue returns an unsaved certificate for req. req must be persisted and
// already Completed.
func (i CertificateIssuer) Issue(req *request.Request, collectorID kernel.ID) (*certificate.Certificate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.IsPersisted() {
		return nil, errs.NewValueIsRequiredError("solicitacaoId")
	}
	if req.Status() != request.Completed {
		return nil, errs.NewInvalidTransitionError("request", "certify", req.Status().String(), request.Completed.String())
	}
	if err := collectorID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredError("coletoraId")
	}

	issuedAt := i.clock().UTC()

	token, err := i.token(req.ID(), collectorID, issuedAt)
	if err != nil {
		return nil, err
	}

	return certificate.NewCertificate(req.ID(), collectorID, issuedAt, token)
}

func (i CertificateIssuer) token(requestID, collectorID kernel.ID, issuedAt time.Time) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(i.source(), nonce); err != nil {
		return "", fmt.Errorf("read certificate nonce: %w", err)
	}

	payload := fmt.Sprintf("%d-%d-%s-%d%s",
		requestID.Int64(),
		collectorID.Int64(),
		issuedAt.Format(time.RFC3339Nano),
		i.clock().UnixNano(),
		hex.EncodeToString(nonce),
	)

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:]), nil
}

func (i CertificateIssuer) clock() time.Time {
	if i.now == nil {
		return time.Now()
	}
	return i.now()
}

func (i CertificateIssuer) source() io.Reader {
	if i.entropy == nil {
		return rand.Reader
	}
	return i.entropy
}
