package kernel

import "time"

// Clock returns the current instant. Domain code never reads the wall clock
// directly; callers pass a Clock (or the instant it produced) in.
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}
