package commands

import (
	"context"

	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/core/ports"
	"wastecollection/internal/pkg/errs"
)

// transition applies a lifecycle step to r in memory, then persists it with a
// conditional update guarded by the status r had when it was read. If another
// writer got there first the request is read again so the error names the
// status it is in now.
func transition(
	ctx context.Context,
	repo ports.RequestRepository,
	r *request.Request,
	action string,
	step func() error,
) error {
	from := r.Status()
	if err := step(); err != nil {
		return err
	}

	n, err := repo.UpdateStatus(ctx, r.ID(), from, r.Status())
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	current, err := repo.Get(ctx, r.ID())
	if err != nil {
		return err
	}
	return errs.NewInvalidTransitionError("request", action, current.Status().String(), from.String())
}
