package queries

import (
	"context"
	"errors"

	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListUncertifiedCompletionsQueryIsNotConstructed = errors.New(
	"ListUncertifiedCompletionsQuery must be created via NewListUncertifiedCompletionsQuery constructor",
)

// ListUncertifiedCompletionsQuery finds Completed requests that have no
// certificate. Such requests are excluded from every report, so the list
// is expected to stay empty.
type ListUncertifiedCompletionsQuery struct {
	guard guard.ConstructorGuard
}

func NewListUncertifiedCompletionsQuery() ListUncertifiedCompletionsQuery {
	return ListUncertifiedCompletionsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUncertifiedCompletionsQuery) Validate() error {
	return q.guard.Validate(ErrListUncertifiedCompletionsQueryIsNotConstructed)
}

type ListUncertifiedCompletionsQueryHandler struct {
	db *gorm.DB
}

func NewListUncertifiedCompletionsQueryHandler(db *gorm.DB) ListUncertifiedCompletionsQueryHandler {
	return ListUncertifiedCompletionsQueryHandler{db: db}
}

func (h ListUncertifiedCompletionsQueryHandler) Handle(
	ctx context.Context,
	query ListUncertifiedCompletionsQuery,
) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectRequests(ctx, h.db, `
		LEFT JOIN certificates c ON c.request_id = r.id
		WHERE r.status = ? AND c.id IS NULL
		ORDER BY r.id
	`, request.Completed.String())
}
