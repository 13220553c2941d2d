package commands

import (
	"context"

	"wastecollection/internal/core/domain/model/collector"
)

// RegisterCollectorCommandHandler stores a new collector.
type RegisterCollectorCommandHandler struct {
	uowFactory RegistryUoWFactory
}

func NewRegisterCollectorCommandHandler(uowFactory RegistryUoWFactory) RegisterCollectorCommandHandler {
	return RegisterCollectorCommandHandler{uowFactory: uowFactory}
}

func (h RegisterCollectorCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterCollectorCommand,
) (*collector.Collector, error) {
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

	stored, err := uow.CollectorRepository().Add(ctx, cmd.Collector())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
