package kernel

import (
	"errors"
	"fmt"
	"strings"

	"wastecollection/internal/pkg/errs"
)

// Jurisdiction is the only state in which sites and collectors may be
// registered.
const Jurisdiction = "GO"

// Address is the registered location of a site or collector.
type Address struct {
	postalCode string
	street     string
	district   string
	city       string
	state      string
}

// NewAddress validates every field. State must equal Jurisdiction.
func NewAddress(postalCode, street, district, city, state string) (Address, error) {
	a := Address{
		postalCode: strings.TrimSpace(postalCode),
		street:     strings.TrimSpace(street),
		district:   strings.TrimSpace(district),
		city:       strings.TrimSpace(city),
		state:      strings.ToUpper(strings.TrimSpace(state)),
	}

	if err := errors.Join(
		required("cep", a.postalCode),
		required("endereco", a.street),
		required("bairro", a.district),
		required("cidade", a.city),
		required("uf", a.state),
	); err != nil {
		return Address{}, err
	}

	if a.state != Jurisdiction {
		return Address{}, errs.NewValueIsInvalidErrorWithCause(
			"uf",
			fmt.Errorf("only companies registered in %s are accepted, got %q", Jurisdiction, a.state),
		)
	}

	return a, nil
}

func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Street() string     { return a.street }
func (a Address) District() string   { return a.district }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }

// Required reports a ValueIsRequiredError when value is blank.
func Required(paramName, value string) error {
	return required(paramName, value)
}

func required(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
