package queries

import (
	"errors"
	"fmt"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"
	"wastecollection/internal/pkg/guard"
)

var ErrListRequestsBySiteQueryIsNotConstructed = errors.New(
	"ListRequestsBySiteQuery must be created via NewListRequestsBySiteQuery constructor",
)

// ListRequestsBySiteQuery lists every request of a site regardless of status.
type ListRequestsBySiteQuery struct {
	siteID kernel.ID

	guard guard.ConstructorGuard
}

func NewListRequestsBySiteQuery(siteID kernel.ID) (ListRequestsBySiteQuery, error) {
	if siteID <= 0 {
		return ListRequestsBySiteQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"industriaId",
			fmt.Errorf("%d is not greater than 0", siteID.Int64()),
		)
	}
	return ListRequestsBySiteQuery{siteID: siteID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRequestsBySiteQuery) Validate() error {
	return q.guard.Validate(ErrListRequestsBySiteQueryIsNotConstructed)
}

func (q ListRequestsBySiteQuery) SiteID() kernel.ID {
	return q.siteID
}
