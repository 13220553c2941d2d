// Package site provides the industrial Site entity: the waste generator that
// raises collection requests.
package site

import (
	"errors"
	"strings"

	"wastecollection/internal/core/domain/model/kernel"
)

var ErrSiteIsNotConstructed = errors.New("Site must be created via NewSite constructor")

// Site is a registered industrial site. TaxID (CNPJ) is unique across sites.
type Site struct {
	id      kernel.ID
	name    string
	taxID   string
	address kernel.Address

	isConstructed bool
}

func NewSite(name, taxID string, address kernel.Address) (*Site, error) {
	s := &Site{
		name:          strings.TrimSpace(name),
		taxID:         strings.TrimSpace(taxID),
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		kernel.Required("nome", s.name),
		kernel.Required("cnpj", s.taxID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSite rebuilds a persisted site.
func RestoreSite(id kernel.ID, name, taxID string, address kernel.Address) (*Site, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	s, err := NewSite(name, taxID, address)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

func (s *Site) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSiteIsNotConstructed
	}
	return nil
}

func (s *Site) ID() kernel.ID           { return s.id }
func (s *Site) Name() string            { return s.name }
func (s *Site) TaxID() string           { return s.taxID }
func (s *Site) Address() kernel.Address { return s.address }
