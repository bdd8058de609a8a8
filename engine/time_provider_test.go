package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)
	assert.True(t, mock.Now().Equal(startTime))

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	assert.True(t, mock.Now().Equal(newTime))

	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	assert.True(t, mock.Now().Equal(newTime.Add(90*time.Minute)))
}

func TestClock_ElapsedMs(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewClock(mock)
	assert.Equal(t, int64(0), clock.ElapsedMs())

	mock.Advance(1500 * time.Millisecond)
	assert.Equal(t, int64(1500), clock.ElapsedMs())

	// Sub-millisecond remainder truncates
	mock.Advance(999 * time.Microsecond)
	assert.Equal(t, int64(1500), clock.ElapsedMs())
	assert.Equal(t, 1500*time.Millisecond+999*time.Microsecond, clock.Elapsed())
}
