// Package sched decides when the next probe batch is owed. It replaces
// ad hoc one-shot timers with an explicit deadline the UI loop can poll,
// driven by an injectable clock so tests run deterministically.
package sched

import "time"

// Scheduler tracks a single recurring deadline. A freshly constructed
// scheduler is immediately due; Rearm pushes the deadline one interval past
// the current time.
type Scheduler struct {
	interval time.Duration
	deadline time.Time
	now      func() time.Time
}

// New returns a scheduler on the real clock.
func New(interval time.Duration) *Scheduler {
	return NewWithClock(interval, time.Now)
}

// NewWithClock returns a scheduler reading time from now.
func NewWithClock(interval time.Duration, now func() time.Time) *Scheduler {
	return &Scheduler{interval: interval, now: now}
}

// Interval returns the configured probe interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Due reports whether the interval has elapsed.
func (s *Scheduler) Due() bool {
	return !s.now().Before(s.deadline)
}

// Remaining returns the time until the next deadline, or zero if it has
// already passed.
func (s *Scheduler) Remaining() time.Duration {
	d := s.deadline.Sub(s.now())
	if d < 0 {
		return 0
	}
	return d
}

// Rearm schedules the next deadline one interval from now.
func (s *Scheduler) Rearm() {
	s.deadline = s.now().Add(s.interval)
}
