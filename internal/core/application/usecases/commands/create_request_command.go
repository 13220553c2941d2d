package commands

import (
	"errors"
	"strings"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"
	"wastecollection/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand asks for a new collection request on behalf of a site.
// Quantity bounds are enforced by the Request aggregate itself.
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	siteID     kernel.ID
	wasteType  string
	quantityKg float64

	guard guard.ConstructorGuard
}

func NewCreateRequestCommand(siteID kernel.ID, wasteType string, quantityKg float64) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		quantityKg: quantityKg,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSiteID(siteID),
		cmd.setWasteType(wasteType),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return cmd, nil
}

func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

func (c CreateRequestCommand) SiteID() kernel.ID {
	return c.siteID
}

func (c CreateRequestCommand) WasteType() string {
	return c.wasteType
}

func (c CreateRequestCommand) QuantityKg() float64 {
	return c.quantityKg
}

func (c *CreateRequestCommand) setSiteID(siteID kernel.ID) error {
	if siteID <= 0 {
		return errs.NewValueIsRequiredError("industriaId")
	}
	c.siteID = siteID
	return nil
}

func (c *CreateRequestCommand) setWasteType(wasteType string) error {
	if strings.TrimSpace(wasteType) == "" {
		return errs.NewValueIsRequiredError("residuo")
	}
	c.wasteType = wasteType
	return nil
}
