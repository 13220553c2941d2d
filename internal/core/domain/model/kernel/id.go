package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"wastecollection/internal/pkg/errs"
)

// ID is a store-assigned surrogate key. Valid IDs are strictly positive; the
// zero value means "not persisted yet".
type ID int64

// NewID validates a raw key coming from persistence or a caller.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal key, typically a path parameter.
func ParseID(paramName, s string) (ID, error) {
	raw, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not an integer", s))
	}
	id := ID(raw)
	if id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", raw))
	}
	return id, nil
}

// Validate reports whether the ID refers to a persisted row.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
