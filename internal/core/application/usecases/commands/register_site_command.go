package commands

import (
	"errors"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/core/domain/model/site"
	"wastecollection/internal/pkg/guard"
)

var ErrRegisterSiteCommandIsNotConstructed = errors.New(
	"RegisterSiteCommand must be created via NewRegisterSiteCommand constructor",
)

// RegistrationData is the common payload of site and collector registration.
type RegistrationData struct {
	Name       string
	TaxID      string
	PostalCode string
	Street     string
	District   string
	City       string
	State      string
}

// validate reports every invalid field at once and returns the address.
func (d RegistrationData) validate(extra ...error) (kernel.Address, error) {
	address, addressErr := kernel.NewAddress(d.PostalCode, d.Street, d.District, d.City, d.State)

	errList := append([]error{
		kernel.Required("nome", d.Name),
		kernel.Required("cnpj", d.TaxID),
		addressErr,
	}, extra...)
	if err := errors.Join(errList...); err != nil {
		return kernel.Address{}, err
	}
	return address, nil
}

// RegisterSiteCommand adds an industrial site to the registry.
type RegisterSiteCommand struct {
	site *site.Site

	guard guard.ConstructorGuard
}

// NewRegisterSiteCommand validates every field, including the jurisdiction.
func NewRegisterSiteCommand(data RegistrationData) (RegisterSiteCommand, error) {
	address, err := data.validate()
	if err != nil {
		return RegisterSiteCommand{}, err
	}

	s, err := site.NewSite(data.Name, data.TaxID, address)
	if err != nil {
		return RegisterSiteCommand{}, err
	}

	return RegisterSiteCommand{site: s, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterSiteCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSiteCommandIsNotConstructed)
}

func (c RegisterSiteCommand) Site() *site.Site {
	return c.site
}
