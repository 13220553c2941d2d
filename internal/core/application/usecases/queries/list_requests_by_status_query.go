package queries

import (
	"errors"

	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/pkg/guard"
)

var ErrListRequestsByStatusQueryIsNotConstructed = errors.New(
	"ListRequestsByStatusQuery must be created via NewListPendingRequestsQuery or NewListAcceptedRequestsQuery",
)

// ListRequestsByStatusQuery backs the work queues: Pending requests waiting
// for a collector and Accepted requests waiting for pickup.
type ListRequestsByStatusQuery struct {
	status request.Status

	guard guard.ConstructorGuard
}

func NewListPendingRequestsQuery() ListRequestsByStatusQuery {
	return ListRequestsByStatusQuery{status: request.Pending, guard: guard.NewConstructorGuard()}
}

func NewListAcceptedRequestsQuery() ListRequestsByStatusQuery {
	return ListRequestsByStatusQuery{status: request.Accepted, guard: guard.NewConstructorGuard()}
}

func (q ListRequestsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListRequestsByStatusQueryIsNotConstructed)
}

func (q ListRequestsByStatusQuery) Status() request.Status {
	return q.status
}
