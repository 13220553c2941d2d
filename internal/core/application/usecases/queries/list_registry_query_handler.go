package queries

import (
	"context"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"

	"gorm.io/gorm"
)

type registryRow struct {
	ID         int64
	Name       string
	TaxID      string
	PostalCode string
	Street     string
	District   string
	City       string
	State      string
	License    string
}

func (r registryRow) entry() RegistryEntry {
	return RegistryEntry{
		ID:         kernel.ID(r.ID),
		Name:       r.Name,
		TaxID:      r.TaxID,
		PostalCode: r.PostalCode,
		Street:     r.Street,
		District:   r.District,
		City:       r.City,
		State:      r.State,
	}
}

// ListSitesQueryHandler returns every registered site ordered by name.
type ListSitesQueryHandler struct {
	db *gorm.DB
}

func NewListSitesQueryHandler(db *gorm.DB) ListSitesQueryHandler {
	return ListSitesQueryHandler{db: db}
}

func (h ListSitesQueryHandler) Handle(ctx context.Context, query ListSitesQuery) ([]SiteView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []registryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, tax_id, postal_code, street, district, city, state
		FROM sites
		ORDER BY name, id
	`).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStorageError("list sites", err)
	}

	sites := make([]SiteView, 0, len(rows))
	for _, row := range rows {
		sites = append(sites, SiteView{RegistryEntry: row.entry()})
	}
	return sites, nil
}

// ListCollectorsQueryHandler returns the collectors of the query's
// jurisdiction ordered by name.
type ListCollectorsQueryHandler struct {
	db *gorm.DB
}

func NewListCollectorsQueryHandler(db *gorm.DB) ListCollectorsQueryHandler {
	return ListCollectorsQueryHandler{db: db}
}

func (h ListCollectorsQueryHandler) Handle(ctx context.Context, query ListCollectorsQuery) ([]CollectorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []registryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, tax_id, license, postal_code, street, district, city, state
		FROM collectors
		WHERE state = ?
		ORDER BY name, id
	`, query.Jurisdiction()).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStorageError("list collectors", err)
	}

	collectors := make([]CollectorView, 0, len(rows))
	for _, row := range rows {
		collectors = append(collectors, CollectorView{RegistryEntry: row.entry(), License: row.License})
	}
	return collectors, nil
}
