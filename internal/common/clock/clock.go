package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/aau-serg/monopoly-core/internal/common/clock Clock,Timer

// Clock provides the time operations the game core depends on, so game
// duration and bot scheduling stay testable.
type Clock interface {
	Now() time.Time

	// AfterFunc runs f after d has elapsed and returns a handle the
	// owner can use to cancel the pending call.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle for a pending AfterFunc call
type Timer interface {
	// Stop cancels the pending call; it reports whether the call was
	// still outstanding.
	Stop() bool
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// AfterFunc delegates to time.AfterFunc
func (c *DefaultClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
