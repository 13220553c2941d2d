package queries

import (
	"context"
	"strings"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/pkg/errs"

	"gorm.io/gorm"
)

// certified restricts a request alias r joined to a certificate alias c to
// collections that count in reports.
const certified = `
	FROM collection_requests r
	JOIN certificates c ON c.request_id = r.id
	WHERE r.status = ?
`

type GetOverviewReportQueryHandler struct {
	db *gorm.DB
}

func NewGetOverviewReportQueryHandler(db *gorm.DB) GetOverviewReportQueryHandler {
	return GetOverviewReportQueryHandler{db: db}
}

func (h GetOverviewReportQueryHandler) Handle(ctx context.Context, query GetOverviewReportQuery) (Overview, error) {
	if err := query.Validate(); err != nil {
		return Overview{}, err
	}

	var overview Overview
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM sites),
			(SELECT COUNT(*) FROM collectors),
			(SELECT COUNT(*) FROM collection_requests),
			(SELECT COUNT(*) `+certified+`),
			(SELECT COALESCE(SUM(r.quantity_kg), 0) `+certified+`)
	`, request.Completed.String(), request.Completed.String()).Row().Scan(
		&overview.TotalSites,
		&overview.TotalCollectors,
		&overview.TotalRequests,
		&overview.TotalCompletedCollections,
		&overview.TotalKgCollected,
	)
	if err != nil {
		return Overview{}, errs.NewStorageError("overview report", err)
	}

	return overview, nil
}

type GetWasteTypeReportQueryHandler struct {
	db *gorm.DB
}

func NewGetWasteTypeReportQueryHandler(db *gorm.DB) GetWasteTypeReportQueryHandler {
	return GetWasteTypeReportQueryHandler{db: db}
}

// Handle returns one row per waste type, heaviest first. An inverted day
// range matches nothing and is answered without touching the store.
func (h GetWasteTypeReportQueryHandler) Handle(
	ctx context.Context,
	query GetWasteTypeReportQuery,
) ([]WasteTypeTotals, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]WasteTypeTotals, 0)
	if query.Days().IsEmpty() {
		return report, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			r.waste_type,
			COUNT(*),
			SUM(r.quantity_kg),
			MIN(c.issued_at),
			MAX(c.issued_at)
	`)
	sb.WriteString(certified)

	args := []any{request.Completed.String()}
	lower, upper := query.Days().Bounds()
	if lower != nil {
		sb.WriteString(" AND c.issued_at >= ?")
		args = append(args, *lower)
	}
	if upper != nil {
		sb.WriteString(" AND c.issued_at < ?")
		args = append(args, *upper)
	}
	sb.WriteString(`
		GROUP BY r.waste_type
		ORDER BY SUM(r.quantity_kg) DESC, r.waste_type ASC
	`)

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, errs.NewStorageError("waste type report", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			totals      WasteTypeTotals
			first, last dbTime
		)
		if err = rows.Scan(&totals.WasteType, &totals.TotalCollections, &totals.TotalKg, &first, &last); err != nil {
			return nil, errs.NewStorageError("scan waste type totals", err)
		}
		totals.FirstIssuedAt = first.Time
		totals.LastIssuedAt = last.Time
		report = append(report, totals)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("waste type report", err)
	}

	return report, nil
}

type GetSiteReportQueryHandler struct {
	db *gorm.DB
}

func NewGetSiteReportQueryHandler(db *gorm.DB) GetSiteReportQueryHandler {
	return GetSiteReportQueryHandler{db: db}
}

// Handle returns one row per site with at least one certified collection.
func (h GetSiteReportQueryHandler) Handle(ctx context.Context, query GetSiteReportQuery) ([]SiteTotals, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]SiteTotals, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			COUNT(*),
			SUM(r.quantity_kg)
		FROM collection_requests r
		JOIN certificates c ON c.request_id = r.id
		JOIN sites s ON s.id = r.site_id
		WHERE r.status = ?
		GROUP BY s.id, s.name
		ORDER BY SUM(r.quantity_kg) DESC, s.id ASC
	`, request.Completed.String()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("site report", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			totals SiteTotals
			siteID int64
		)
		if err = rows.Scan(&siteID, &totals.SiteName, &totals.TotalCompletedCollections, &totals.TotalKg); err != nil {
			return nil, errs.NewStorageError("scan site totals", err)
		}
		totals.SiteID = kernel.ID(siteID)
		report = append(report, totals)
	}
	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("site report", err)
	}

	return report, nil
}
