package commands

import (
	"context"
	"fmt"
	"time"

	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/pkg/errs"
)

// CreateRequestCommandHandler registers a Pending collection request for an
// existing site.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	now        func() time.Time
}

func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the stored request with its assigned ID. An unknown site is
// a validation failure of the industriaId field, not a missing resource.
func (h CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := request.NewRequest(cmd.SiteID(), cmd.WasteType(), cmd.QuantityKg(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.SiteRepository().Exists(ctx, cmd.SiteID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"industriaId",
			fmt.Errorf("site %s does not exist", cmd.SiteID()),
		)
	}

	stored, err := uow.RequestRepository().Add(ctx, r)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
