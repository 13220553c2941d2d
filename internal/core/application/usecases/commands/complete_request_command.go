package commands

import (
	"errors"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/errs"
	"wastecollection/internal/pkg/guard"
)

var ErrCompleteRequestCommandIsNotConstructed = errors.New(
	"CompleteRequestCommand must be created via NewCompleteRequestCommand constructor",
)

// CompleteRequestCommand confirms the pickup of an Accepted request by a
// collector and triggers certificate issuance.
type CompleteRequestCommand struct {
	requestID   kernel.ID
	collectorID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteRequestCommand(requestID, collectorID kernel.ID) (CompleteRequestCommand, error) {
	var collectorErr error
	if collectorID <= 0 {
		collectorErr = errs.NewValueIsRequiredError("coletoraId")
	}

	if err := errors.Join(requestID.Validate(), collectorErr); err != nil {
		return CompleteRequestCommand{}, err
	}

	return CompleteRequestCommand{
		requestID:   requestID,
		collectorID: collectorID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteRequestCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRequestCommandIsNotConstructed)
}

func (c CompleteRequestCommand) RequestID() kernel.ID {
	return c.requestID
}

func (c CompleteRequestCommand) CollectorID() kernel.ID {
	return c.collectorID
}
