// Package collector provides the Collector entity: a licensed company that
// picks up and disposes of industrial waste.
package collector

import (
	"errors"
	"strings"

	"wastecollection/internal/core/domain/model/kernel"
)

var ErrCollectorIsNotConstructed = errors.New("Collector must be created via NewCollector constructor")

// Collector is a licensed collection company. TaxID (CNPJ) is unique across
// collectors; License is the state environmental licence number.
type Collector struct {
	id      kernel.ID
	name    string
	taxID   string
	license string
	address kernel.Address

	isConstructed bool
}

func NewCollector(name, taxID, license string, address kernel.Address) (*Collector, error) {
	c := &Collector{
		name:          strings.TrimSpace(name),
		taxID:         strings.TrimSpace(taxID),
		license:       strings.TrimSpace(license),
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		kernel.Required("nome", c.name),
		kernel.Required("cnpj", c.taxID),
		kernel.Required("licenca_goias", c.license),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCollector rebuilds a persisted collector.
func RestoreCollector(id kernel.ID, name, taxID, license string, address kernel.Address) (*Collector, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	c, err := NewCollector(name, taxID, license, address)
	if err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

func (c *Collector) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCollectorIsNotConstructed
	}
	return nil
}

func (c *Collector) ID() kernel.ID           { return c.id }
func (c *Collector) Name() string            { return c.name }
func (c *Collector) TaxID() string           { return c.taxID }
func (c *Collector) License() string         { return c.license }
func (c *Collector) Address() kernel.Address { return c.address }
