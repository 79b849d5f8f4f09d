package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestScheduler_DueImmediatelyAfterConstruction(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewWithClock(2*time.Second, clock.now)

	assert.True(t, s.Due(), "a fresh scheduler owes the first batch right away")
	assert.Equal(t, time.Duration(0), s.Remaining())
}

func TestScheduler_RearmPushesDeadline(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewWithClock(2*time.Second, clock.now)

	s.Rearm()
	assert.False(t, s.Due())
	assert.Equal(t, 2*time.Second, s.Remaining())

	clock.advance(1500 * time.Millisecond)
	assert.False(t, s.Due())
	assert.Equal(t, 500*time.Millisecond, s.Remaining())

	clock.advance(500 * time.Millisecond)
	assert.True(t, s.Due(), "due exactly at the deadline")

	clock.advance(time.Hour)
	assert.True(t, s.Due())
	assert.Equal(t, time.Duration(0), s.Remaining(), "remaining never goes negative")
}

func TestScheduler_RearmIsRelativeToNow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	s := NewWithClock(time.Second, clock.now)

	s.Rearm()
	clock.advance(10 * time.Second) // a slow batch overran the interval
	s.Rearm()
	assert.Equal(t, time.Second, s.Remaining(),
		"rearming schedules from the current time, not the missed deadline")
}
