package kernel

import (
	"fmt"
	"time"

	"wastecollection/internal/pkg/errs"
)

// DayLayout is the wire format of calendar days.
const DayLayout = "2006-01-02"

// Day is a calendar day in UTC. Report filters compare certificate issue
// dates at day granularity, so a Day is always normalised to midnight.
type Day struct {
	start time.Time
}

// ParseDay parses a YYYY-MM-DD string. Out-of-calendar dates such as
// 2024-02-30 are rejected.
func ParseDay(paramName, s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%q does not match the %s format", s, "YYYY-MM-DD"),
		)
	}
	return Day{start: t.UTC()}, nil
}

// DayOf returns the UTC day containing t.
func DayOf(t time.Time) Day {
	u := t.UTC()
	return Day{start: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// Start is the first instant of the day.
func (d Day) Start() time.Time {
	return d.start
}

// Next returns the following day.
func (d Day) Next() Day {
	return Day{start: d.start.AddDate(0, 0, 1)}
}

func (d Day) IsZero() bool {
	return d.start.IsZero()
}

func (d Day) After(other Day) bool {
	return d.start.After(other.start)
}

func (d Day) String() string {
	return d.start.Format(DayLayout)
}

// DayRange is an inclusive range of days. A nil bound leaves that side open.
type DayRange struct {
	From *Day
	To   *Day
}

// IsEmpty reports whether no day can satisfy the range.
func (r DayRange) IsEmpty() bool {
	return r.From != nil && r.To != nil && r.From.After(*r.To)
}

// Contains reports whether t falls on a day inside the range.
func (r DayRange) Contains(t time.Time) bool {
	day := DayOf(t)
	if r.From != nil && r.From.After(day) {
		return false
	}
	if r.To != nil && day.After(*r.To) {
		return false
	}
	return true
}

// Bounds converts the range into a half-open timestamp interval
// [lower, upper). Open sides are returned as nil.
func (r DayRange) Bounds() (lower, upper *time.Time) {
	if r.From != nil {
		l := r.From.Start()
		lower = &l
	}
	if r.To != nil {
		u := r.To.Next().Start()
		upper = &u
	}
	return lower, upper
}
