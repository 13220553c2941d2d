package request

import (
	"fmt"

	"wastecollection/internal/pkg/errs"
)

// Status is the lifecycle state of a collection request. It is persisted as
// its textual value.
//
//	Pending ──accept──> Accepted ──complete──> Completed
type Status string

const (
	// Pending is the initial status: the request waits for a collector.
	Pending Status = "Pending"

	// Accepted means a collector has taken the job.
	Accepted Status = "Accepted"

	// Completed means the waste was collected and a certificate issued.
	// No transition leaves this status.
	Completed Status = "Completed"
)

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Accepted, Completed}
}

// ParseStatus converts a stored value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, Accepted, Completed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// Accept returns the status after a collector accepts the request. Only
// Pending requests can be accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return "", errs.NewInvalidTransitionError("request", "accept", s.String(), Pending.String())
	}
	return Accepted, nil
}

// Complete returns the status after the pickup is confirmed. Only Accepted
// requests can be completed.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return "", errs.NewInvalidTransitionError("request", "complete", s.String(), Accepted.String())
	}
	return Completed, nil
}
