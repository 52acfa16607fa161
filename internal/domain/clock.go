package domain

import "time"

// Clock abstracts time.Now() so date arithmetic stays deterministic in
// tests. "Today" is always the local calendar day of the value it returns.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
