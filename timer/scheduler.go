// Package timer provides one-shot deferred callbacks driven by simulated
// time instead of the wall clock.
package timer

import (
	"time"

	"github.com/milk9111/weaponhandling/ecs"
)

// Handle identifies an armed timer. The zero Handle is never armed.
type Handle uint64

type entry struct {
	handle Handle
	due    time.Duration
	fn     func()
}

// Scheduler holds armed timers and fires them as time advances. It is not
// safe for concurrent use; everything runs on the tick goroutine.
type Scheduler struct {
	now     time.Duration
	last    Handle
	entries []entry
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After arms fn to run once d from now. Negative delays count as zero.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	if fn == nil {
		return 0
	}
	if d < 0 {
		d = 0
	}
	s.last++
	s.entries = append(s.entries, entry{handle: s.last, due: s.now + d, fn: fn})
	return s.last
}

// Cancel disarms h. It reports whether h was still pending.
func (s *Scheduler) Cancel(h Handle) bool {
	if h == 0 {
		return false
	}
	for i := range s.entries {
		if s.entries[i].handle == h {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Armed reports whether h is still pending.
func (s *Scheduler) Armed(h Handle) bool {
	if h == 0 {
		return false
	}
	for _, e := range s.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

// Advance moves time forward by dt and fires every timer that comes due, in
// due order, ties in arming order. Timers armed by a callback fire in the
// same call if they are due before the new time. It returns the number of
// callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0
	for {
		idx := s.earliest()
		if idx < 0 || s.entries[idx].due > target {
			break
		}
		e := s.entries[idx]
		s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
		s.now = e.due
		e.fn()
		fired++
	}
	s.now = target
	return fired
}

func (s *Scheduler) earliest() int {
	idx := -1
	for i, e := range s.entries {
		if idx < 0 || e.due < s.entries[idx].due || (e.due == s.entries[idx].due && e.handle < s.entries[idx].handle) {
			idx = i
		}
	}
	return idx
}

// Now returns the simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	return len(s.entries)
}

// Update lets the scheduler run as the first system of an ecs.World.
func (s *Scheduler) Update(_ *ecs.World, dt time.Duration) {
	s.Advance(dt)
}
