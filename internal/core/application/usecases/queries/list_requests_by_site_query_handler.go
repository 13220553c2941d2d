package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRequestsBySiteQueryHandler returns the requests of one site, newest
// first. An unknown site yields an empty list.
type ListRequestsBySiteQueryHandler struct {
	db *gorm.DB
}

func NewListRequestsBySiteQueryHandler(db *gorm.DB) ListRequestsBySiteQueryHandler {
	return ListRequestsBySiteQueryHandler{db: db}
}

func (h ListRequestsBySiteQueryHandler) Handle(ctx context.Context, query ListRequestsBySiteQuery) ([]RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectRequests(ctx, h.db, `
		WHERE r.site_id = ?
		ORDER BY r.created_at DESC, r.id DESC
	`, query.SiteID().Int64())
}
