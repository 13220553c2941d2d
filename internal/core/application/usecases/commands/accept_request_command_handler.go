package commands

import (
	"context"

	"wastecollection/internal/core/domain/model/request"
)

// AcceptRequestCommandHandler performs the Pending -> Accepted transition.
//
// The status check and the write are one conditional update, so when two
// callers race exactly one succeeds and the other receives an
// InvalidTransitionError naming the status it lost to.
type AcceptRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewAcceptRequestCommandHandler(uowFactory RequestUoWFactory) AcceptRequestCommandHandler {
	return AcceptRequestCommandHandler{uowFactory: uowFactory}
}

func (h AcceptRequestCommandHandler) Handle(ctx context.Context, cmd AcceptRequestCommand) (*request.Request, error) {
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

	repo := uow.RequestRepository()

	r, err := repo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	if err = transition(ctx, repo, r, "accept", r.Accept); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
