package kernel

import (
	"time"

	"training/internal/pkg/errs"
)

// DateRange is an inclusive range of calendar days.
//
// The bounds are kept as given; From and To widen them to the start of the
// first day and the last nanosecond of the last day, each in the location of
// its own bound. A range whose start is after its end is inverted: it is
// valid to hold but contains nothing.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange requires both bounds to be set. An inverted range is not an error.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("start date")
	}
	if end.IsZero() {
		return DateRange{}, errs.NewValueIsRequiredError("end date")
	}

	return DateRange{start: start, end: end}, nil
}

// Start returns the start bound as given.
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the end bound as given.
func (r DateRange) End() time.Time {
	return r.end
}

// From returns 00:00:00 of the start day.
func (r DateRange) From() time.Time {
	return StartOfDay(r.start)
}

// To returns 23:59:59.999999999 of the end day.
func (r DateRange) To() time.Time {
	return EndOfDay(r.end)
}

// IsInverted compares the raw bounds, before any widening.
func (r DateRange) IsInverted() bool {
	return r.start.After(r.end)
}

// Contains reports whether t falls within [From, To].
func (r DateRange) Contains(t time.Time) bool {
	if r.IsInverted() {
		return false
	}
	return !t.Before(r.From()) && !t.After(r.To())
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
