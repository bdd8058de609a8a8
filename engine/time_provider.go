package engine

import "time"

// TimeProvider is a source of wall-clock readings
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Clock measures animation time since its creation
type Clock struct {
	provider TimeProvider
	start    time.Time
}

// NewClock starts a clock at the provider's current time
func NewClock(provider TimeProvider) *Clock {
	return &Clock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Elapsed returns the time since the clock started
func (c *Clock) Elapsed() time.Duration {
	return c.provider.Now().Sub(c.start)
}

// ElapsedMs returns whole milliseconds since the clock started, the scene's time input
func (c *Clock) ElapsedMs() int64 {
	return c.Elapsed().Milliseconds()
}
