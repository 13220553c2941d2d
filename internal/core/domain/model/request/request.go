package request

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request was not created
	// through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// Request is a collection request raised by an industrial site.
//
// Request follows these invariants:
//   - Site references a registered site
//   - WasteType is non-blank
//   - QuantityKg is positive and finite
//   - Status only moves forward
//
// A freshly created Request has no ID until the store assigns one.
type Request struct {
	id         kernel.ID
	siteID     kernel.ID
	createdAt  time.Time
	status     Status
	wasteType  string
	quantityKg float64

	isConstructed bool
}

// NewRequest creates a Pending request. The waste type is trimmed; createdAt
// is stored in UTC.
func NewRequest(siteID kernel.ID, wasteType string, quantityKg float64, createdAt time.Time) (*Request, error) {
	r := &Request{
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setSiteID(siteID),
		r.setWasteType(wasteType),
		r.setQuantityKg(quantityKg),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest rebuilds a persisted request. All invariants are checked
// again, including the store-assigned ID.
func RestoreRequest(
	id kernel.ID,
	siteID kernel.ID,
	wasteType string,
	quantityKg float64,
	status Status,
	createdAt time.Time,
) (*Request, error) {
	r := &Request{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setSiteID(siteID),
		r.setWasteType(wasteType),
		r.setQuantityKg(quantityKg),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

func (r *Request) ID() kernel.ID {
	return r.id
}

func (r *Request) SiteID() kernel.ID {
	return r.siteID
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) Status() Status {
	return r.status
}

func (r *Request) WasteType() string {
	return r.wasteType
}

func (r *Request) QuantityKg() float64 {
	return r.quantityKg
}

// IsPersisted reports whether the store has assigned an ID.
func (r *Request) IsPersisted() bool {
	return r.id > 0
}

// Accept moves the request from Pending to Accepted.
func (r *Request) Accept() error {
	next, err := r.status.Accept()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Complete moves the request from Accepted to Completed.
func (r *Request) Complete() error {
	next, err := r.status.Complete()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

func (r *Request) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setSiteID(siteID kernel.ID) error {
	if siteID <= 0 {
		return errs.NewValueIsRequiredError("industriaId")
	}
	r.siteID = siteID
	return nil
}

func (r *Request) setWasteType(wasteType string) error {
	trimmed := strings.TrimSpace(wasteType)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("residuo")
	}
	r.wasteType = trimmed
	return nil
}

func (r *Request) setQuantityKg(quantityKg float64) error {
	if math.IsNaN(quantityKg) || math.IsInf(quantityKg, 0) {
		return errs.NewValueIsInvalidErrorWithCause("quantidade_kg", fmt.Errorf("%v is not a finite number", quantityKg))
	}
	if quantityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantidade_kg", fmt.Errorf("%v is not greater than 0", quantityKg))
	}
	r.quantityKg = quantityKg
	return nil
}

func (r *Request) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
