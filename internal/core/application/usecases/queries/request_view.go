package queries

import (
	"context"
	"time"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/pkg/errs"

	"gorm.io/gorm"
)

// RequestView is a collection request joined with the name of its site.
type RequestView struct {
	ID         kernel.ID
	SiteID     kernel.ID
	SiteName   string
	CreatedAt  time.Time
	Status     request.Status
	WasteType  string
	QuantityKg float64
}

const requestViewSelect = `
	SELECT
		r.id,
		r.site_id,
		s.name,
		r.created_at,
		r.status,
		r.waste_type,
		r.quantity_kg
	FROM collection_requests r
	JOIN sites s ON s.id = r.site_id
`

// selectRequests runs requestViewSelect with the given filter and ordering.
// The result is never nil.
func selectRequests(ctx context.Context, db *gorm.DB, filterAndOrder string, args ...any) ([]RequestView, error) {
	views := make([]RequestView, 0)

	rows, err := db.WithContext(ctx).Raw(requestViewSelect+filterAndOrder, args...).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list requests", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view      RequestView
			id        int64
			siteID    int64
			createdAt dbTime
			status    string
		)
		if err = rows.Scan(&id, &siteID, &view.SiteName, &createdAt, &status, &view.WasteType, &view.QuantityKg); err != nil {
			return nil, errs.NewStorageError("scan request", err)
		}

		view.ID = kernel.ID(id)
		view.SiteID = kernel.ID(siteID)
		view.CreatedAt = createdAt.Time
		view.Status = request.Status(status)
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list requests", err)
	}

	return views, nil
}
