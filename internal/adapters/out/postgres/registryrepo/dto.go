// Package registryrepo persists the reference registry: industrial sites and
// licensed collectors.
package registryrepo

import (
	"wastecollection/internal/core/domain/model/collector"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/site"
)

// AddressDTO is embedded in both registry tables.
type AddressDTO struct {
	PostalCode string `gorm:"column:postal_code;not null"`
	Street     string `gorm:"column:street;not null"`
	District   string `gorm:"column:district;not null"`
	City       string `gorm:"column:city;not null"`
	State      string `gorm:"column:state;type:varchar(2);not null;index"`
}

type SiteDTO struct {
	ID      int64      `gorm:"primaryKey;autoIncrement"`
	Name    string     `gorm:"column:name;not null"`
	TaxID   string     `gorm:"column:tax_id;not null;uniqueIndex:uq_sites_tax_id"`
	Address AddressDTO `gorm:"embedded"`
}

func (SiteDTO) TableName() string {
	return "sites"
}

type CollectorDTO struct {
	ID      int64      `gorm:"primaryKey;autoIncrement"`
	Name    string     `gorm:"column:name;not null"`
	TaxID   string     `gorm:"column:tax_id;not null;uniqueIndex:uq_collectors_tax_id"`
	License string     `gorm:"column:license;not null"`
	Address AddressDTO `gorm:"embedded"`
}

func (CollectorDTO) TableName() string {
	return "collectors"
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		PostalCode: a.PostalCode(),
		Street:     a.Street(),
		District:   a.District(),
		City:       a.City(),
		State:      a.State(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.PostalCode, dto.Street, dto.District, dto.City, dto.State)
}

func siteFromDomain(s *site.Site) SiteDTO {
	return SiteDTO{
		ID:      s.ID().Int64(),
		Name:    s.Name(),
		TaxID:   s.TaxID(),
		Address: addressFromDomain(s.Address()),
	}
}

func siteToDomain(dto SiteDTO) (*site.Site, error) {
	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}
	return site.RestoreSite(kernel.ID(dto.ID), dto.Name, dto.TaxID, address)
}

func collectorFromDomain(c *collector.Collector) CollectorDTO {
	return CollectorDTO{
		ID:      c.ID().Int64(),
		Name:    c.Name(),
		TaxID:   c.TaxID(),
		License: c.License(),
		Address: addressFromDomain(c.Address()),
	}
}

func collectorToDomain(dto CollectorDTO) (*collector.Collector, error) {
	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}
	return collector.RestoreCollector(kernel.ID(dto.ID), dto.Name, dto.TaxID, dto.License, address)
}
