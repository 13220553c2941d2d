package certificate

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"
)

// TokenLength is the length of a hex encoded SHA-256 digest.
const TokenLength = 64

var (
	// ErrCertificateIsNotConstructed is returned when a Certificate was not
	// created through NewCertificate or RestoreCertificate.
	ErrCertificateIsNotConstructed = errors.New("Certificate must be created via NewCertificate constructor")
)

// Certificate is the final disposal certificate of a collection request.
type Certificate struct {
	id          kernel.ID
	requestID   kernel.ID
	collectorID kernel.ID
	issuedAt    time.Time
	token       string

	isConstructed bool
}

// NewCertificate builds a certificate that has not been stored yet.
func NewCertificate(requestID, collectorID kernel.ID, issuedAt time.Time, token string) (*Certificate, error) {
	c := &Certificate{
		issuedAt:      issuedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setRequestID(requestID),
		c.setCollectorID(collectorID),
		c.setIssuedAt(issuedAt),
		c.setToken(token),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCertificate rebuilds a persisted certificate.
func RestoreCertificate(
	id, requestID, collectorID kernel.ID,
	issuedAt time.Time,
	token string,
) (*Certificate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	c, err := NewCertificate(requestID, collectorID, issuedAt, token)
	if err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

func (c *Certificate) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCertificateIsNotConstructed
	}
	return nil
}

func (c *Certificate) ID() kernel.ID {
	return c.id
}

func (c *Certificate) RequestID() kernel.ID {
	return c.requestID
}

func (c *Certificate) CollectorID() kernel.ID {
	return c.collectorID
}

func (c *Certificate) IssuedAt() time.Time {
	return c.issuedAt
}

// Token returns the verification token (hashVerificacao).
func (c *Certificate) Token() string {
	return c.token
}

func (c *Certificate) setRequestID(id kernel.ID) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("solicitacaoId")
	}
	c.requestID = id
	return nil
}

func (c *Certificate) setCollectorID(id kernel.ID) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("coletoraId")
	}
	c.collectorID = id
	return nil
}

func (c *Certificate) setIssuedAt(issuedAt time.Time) error {
	if issuedAt.IsZero() {
		return errs.NewValueIsRequiredError("dataEmissao")
	}
	return nil
}

func (c *Certificate) setToken(token string) error {
	if len(token) != TokenLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"hashVerificacao",
			fmt.Errorf("token must be %d hex characters, got %d", TokenLength, len(token)),
		)
	}
	if _, err := hex.DecodeString(token); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("hashVerificacao", err)
	}
	c.token = token
	return nil
}
