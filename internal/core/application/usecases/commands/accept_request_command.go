package commands

import (
	"errors"

	"wastecollection/internal/core/domain/model/kernel"
	"wastecollection/internal/pkg/guard"
)

var ErrAcceptRequestCommandIsNotConstructed = errors.New(
	"AcceptRequestCommand must be created via NewAcceptRequestCommand constructor",
)

// AcceptRequestCommand moves a Pending request to Accepted.
type AcceptRequestCommand struct {
	requestID kernel.ID

	guard guard.ConstructorGuard
}

func NewAcceptRequestCommand(requestID kernel.ID) (AcceptRequestCommand, error) {
	if err := requestID.Validate(); err != nil {
		return AcceptRequestCommand{}, err
	}

	return AcceptRequestCommand{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRequestCommandIsNotConstructed)
}

func (c AcceptRequestCommand) RequestID() kernel.ID {
	return c.requestID
}
