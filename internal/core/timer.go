package core

import "time"

// Handle identifies one scheduled tick.
type Handle uint64

// Scheduler owns at most one pending tick. A tick becomes due once the
// scheduled delay has elapsed and is handed out by Due on the next display
// refresh, so a tick fires at most once per interval and always in step with
// the frame loop.
type Scheduler struct {
	interval time.Duration
	next     Handle
	pending  Handle
	due      time.Time
}

// NewScheduler constructs a Scheduler with the given tick interval.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval < 0 {
		interval = 0
	}
	return &Scheduler{interval: interval}
}

// Schedule cancels any pending tick and schedules a new one due at
// now+delay. It returns the handle of the new tick.
func (s *Scheduler) Schedule(now time.Time, delay time.Duration) Handle {
	s.Cancel()
	s.next++
	s.pending = s.next
	s.due = now.Add(delay)
	return s.pending
}

// ScheduleNext schedules a tick one interval after now.
func (s *Scheduler) ScheduleNext(now time.Time) Handle {
	return s.Schedule(now, s.interval)
}

// Cancel drops the pending tick, if any, and reports whether one existed.
func (s *Scheduler) Cancel() bool {
	if s.pending == 0 {
		return false
	}
	s.pending = 0
	s.due = time.Time{}
	return true
}

// Pending returns the handle of the scheduled tick, or zero.
func (s *Scheduler) Pending() Handle { return s.pending }

// Due consumes and returns the pending tick if it is due at now.
func (s *Scheduler) Due(now time.Time) (Handle, bool) {
	if s.pending == 0 || now.Before(s.due) {
		return 0, false
	}
	h := s.pending
	s.pending = 0
	s.due = time.Time{}
	return h, true
}
