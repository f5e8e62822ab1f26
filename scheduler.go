package medusa

import (
	"sort"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped it
	// before it fired.
	Stop() bool
}

// Scheduler arms one-shot callbacks. Callbacks must be delivered on the same
// logical thread that calls the Engine; runtimes that use real timers post
// the callback back to their event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Now() time.Time
}

// ManualScheduler is a virtual-clock Scheduler. Time only moves when
// Advance is called, and due callbacks run synchronously inside Advance.
type ManualScheduler struct {
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	when    time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Time { return s.now }

// AfterFunc arms fn to run once the clock reaches Now()+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.seq++
	t := &manualTimer{s: s, when: s.now.Add(d), seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Stop removes the timer from its scheduler.
func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}

func (s *ManualScheduler) remove(t *manualTimer) {
	for i, p := range s.timers {
		if p == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d, running every callback that falls
// due in deadline order (arming order breaks ties). Callbacks armed while
// advancing run too if they fall due before the new time. It returns the
// number of callbacks run.
func (s *ManualScheduler) Advance(d time.Duration) int {
	end := s.now.Add(d)
	ran := 0
	for {
		t := s.next()
		if t == nil || t.when.After(end) {
			break
		}
		s.remove(t)
		if t.when.After(s.now) {
			s.now = t.when
		}
		t.fired = true
		t.fn()
		ran++
	}
	s.now = end
	return ran
}

// next returns the earliest timer without removing it.
func (s *ManualScheduler) next() *manualTimer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		a, b := s.timers[i], s.timers[j]
		if !a.when.Equal(b.when) {
			return a.when.Before(b.when)
		}
		return a.seq < b.seq
	})
	return s.timers[0]
}

// Pending returns the number of armed timers.
func (s *ManualScheduler) Pending() int { return len(s.timers) }

// NextIn returns the delay until the earliest armed timer, or false when
// nothing is armed.
func (s *ManualScheduler) NextIn() (time.Duration, bool) {
	t := s.next()
	if t == nil {
		return 0, false
	}
	return t.when.Sub(s.now), true
}
