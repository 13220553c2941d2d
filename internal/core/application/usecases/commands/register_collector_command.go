package commands

import (
	"errors"

	"wastecollection/internal/core/domain/model/collector"
	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/guard"
)

var ErrRegisterCollectorCommandIsNotConstructed = errors.New(
	"RegisterCollectorCommand must be created via NewRegisterCollectorCommand constructor",
)

// RegisterCollectorCommand adds a licensed collector to the registry.
type RegisterCollectorCommand struct {
	collector *collector.Collector

	guard guard.ConstructorGuard
}

func NewRegisterCollectorCommand(data RegistrationData, license string) (RegisterCollectorCommand, error) {
	address, err := data.validate(kernel.Required("licenca_goias", license))
	if err != nil {
		return RegisterCollectorCommand{}, err
	}

	c, err := collector.NewCollector(data.Name, data.TaxID, license, address)
	if err != nil {
		return RegisterCollectorCommand{}, err
	}

	return RegisterCollectorCommand{collector: c, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterCollectorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCollectorCommandIsNotConstructed)
}

func (c RegisterCollectorCommand) Collector() *collector.Collector {
	return c.collector
}
