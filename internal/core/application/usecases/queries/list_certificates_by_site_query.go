package queries

import (
	"errors"
	"fmt"
	"time"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"
	"wastecollection/internal/pkg/guard"
)

var ErrListCertificatesBySiteQueryIsNotConstructed = errors.New(
	"ListCertificatesBySiteQuery must be created via NewListCertificatesBySiteQuery constructor",
)

// ListCertificatesBySiteQuery lists the disposal certificates of a site.
type ListCertificatesBySiteQuery struct {
	siteID kernel.ID

	guard guard.ConstructorGuard
}

func NewListCertificatesBySiteQuery(siteID kernel.ID) (ListCertificatesBySiteQuery, error) {
	if siteID <= 0 {
		return ListCertificatesBySiteQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"industriaId",
			fmt.Errorf("%d is not greater than 0", siteID.Int64()),
		)
	}
	return ListCertificatesBySiteQuery{siteID: siteID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCertificatesBySiteQuery) Validate() error {
	return q.guard.Validate(ErrListCertificatesBySiteQueryIsNotConstructed)
}

func (q ListCertificatesBySiteQuery) SiteID() kernel.ID {
	return q.siteID
}

// CertificateView is a certificate together with what was collected and by
// whom.
type CertificateView struct {
	ID            kernel.ID
	RequestID     kernel.ID
	CollectorID   kernel.ID
	CollectorName string
	IssuedAt      time.Time
	Token         string
	WasteType     string
	QuantityKg    float64
}
