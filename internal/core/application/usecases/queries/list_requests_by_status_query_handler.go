package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRequestsByStatusQueryHandler returns the requests in one status, oldest
// first, so the queue is served in arrival order.
type ListRequestsByStatusQueryHandler struct {
	db *gorm.DB
}

func NewListRequestsByStatusQueryHandler(db *gorm.DB) ListRequestsByStatusQueryHandler {
	return ListRequestsByStatusQueryHandler{db: db}
}

func (h ListRequestsByStatusQueryHandler) Handle(ctx context.Context, query ListRequestsByStatusQuery) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectRequests(ctx, h.db, `
		WHERE r.status = ?
		ORDER BY r.created_at ASC, r.id ASC
	`, query.Status().String())
}
