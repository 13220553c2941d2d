package queries

import (
	"errors"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/guard"
)

var (
	ErrListSitesQueryIsNotConstructed = errors.New(
		"ListSitesQuery must be created via NewListSitesQuery constructor",
	)
	ErrListCollectorsQueryIsNotConstructed = errors.New(
		"ListCollectorsQuery must be created via NewListCollectorsQuery constructor",
	)
)

// RegistryEntry is the shared shape of sites and collectors.
type RegistryEntry struct {
	ID         kernel.ID
	Name       string
	TaxID      string
	PostalCode string
	Street     string
	District   string
	City       string
	State      string
}

type SiteView struct {
	RegistryEntry
}

type CollectorView struct {
	RegistryEntry
	License string
}

type ListSitesQuery struct {
	guard guard.ConstructorGuard
}

func NewListSitesQuery() ListSitesQuery {
	return ListSitesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListSitesQuery) Validate() error {
	return q.guard.Validate(ErrListSitesQueryIsNotConstructed)
}

// ListCollectorsQuery lists the collectors licensed in a jurisdiction.
type ListCollectorsQuery struct {
	jurisdiction string

	guard guard.ConstructorGuard
}

// NewListCollectorsQuery defaults to kernel.Jurisdiction.
func NewListCollectorsQuery() ListCollectorsQuery {
	return ListCollectorsQuery{jurisdiction: kernel.Jurisdiction, guard: guard.NewConstructorGuard()}
}

func (q ListCollectorsQuery) Validate() error {
	return q.guard.Validate(ErrListCollectorsQueryIsNotConstructed)
}

func (q ListCollectorsQuery) Jurisdiction() string {
	return q.jurisdiction
}
