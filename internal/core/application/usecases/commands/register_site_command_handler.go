package commands

import (
	"context"

	"wastecollection/internal/core/domain/model/site"
)

// RegisterSiteCommandHandler stores a new site. A repeated tax id is reported
// by the repository as an AlreadyExistsError.
type RegisterSiteCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewRegisterSiteCommandHandler(uowFactory RegistryUoWFactory) RegisterSiteCommandHandler {
	return RegisterSiteCommandHandler{uowFactory: uowFactory}
}

func (h RegisterSiteCommandHandler) Handle(ctx context.Context, cmd RegisterSiteCommand) (*site.Site, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.SiteRepository().Add(ctx, cmd.Site())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
