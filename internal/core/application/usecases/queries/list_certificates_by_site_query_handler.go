package queries

import (
	"context"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListCertificatesBySiteQueryHandler returns a site's certificates, most
// recently issued first.
type ListCertificatesBySiteQueryHandler struct {
	db *gorm.DB
}

func NewListCertificatesBySiteQueryHandler(db *gorm.DB) ListCertificatesBySiteQueryHandler {
	return ListCertificatesBySiteQueryHandler{db: db}
}

func (h ListCertificatesBySiteQueryHandler) Handle(
	ctx context.Context,
	query ListCertificatesBySiteQuery,
) ([]CertificateView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]CertificateView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.request_id,
			c.collector_id,
			k.name,
			c.issued_at,
			c.token,
			r.waste_type,
			r.quantity_kg
		FROM certificates c
		JOIN collection_requests r ON r.id = c.request_id
		JOIN collectors k ON k.id = c.collector_id
		WHERE r.site_id = ?
		ORDER BY c.issued_at DESC, c.id DESC
	`, query.SiteID().Int64()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list certificates", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view        CertificateView
			id          int64
			requestID   int64
			collectorID int64
			issuedAt    dbTime
		)
		err = rows.Scan(
			&id,
			&requestID,
			&collectorID,
			&view.CollectorName,
			&issuedAt,
			&view.Token,
			&view.WasteType,
			&view.QuantityKg,
		)
		if err != nil {
			return nil, errs.NewStorageError("scan certificate", err)
		}

		view.ID = kernel.ID(id)
		view.RequestID = kernel.ID(requestID)
		view.CollectorID = kernel.ID(collectorID)
		view.IssuedAt = issuedAt.Time
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list certificates", err)
	}

	return views, nil
}
