package medusa

import (
	"testing"
	"time"
)

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler(time.Unix(0, 0))
	var got []string
	s.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	if n := s.Advance(20 * time.Millisecond); n != 2 {
		t.Fatalf("Advance ran %d, want 2", n)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("order = %v, want [a b]", got)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
	s.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Errorf("order = %v, want [a b c]", got)
	}
}

func TestManualSchedulerStop(t *testing.T) {
	s := NewManualScheduler(time.Unix(0, 0))
	fired := false
	tm := s.AfterFunc(time.Millisecond, func() { fired = true })
	if !tm.Stop() {
		t.Error("first Stop should report true")
	}
	if tm.Stop() {
		t.Error("second Stop should report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestManualSchedulerClock(t *testing.T) {
	start := time.Unix(100, 0)
	s := NewManualScheduler(start)
	var at time.Time
	s.AfterFunc(40*time.Millisecond, func() { at = s.Now() })
	s.Advance(time.Second)
	if want := start.Add(40 * time.Millisecond); !at.Equal(want) {
		t.Errorf("callback saw Now() = %v, want %v", at, want)
	}
	if want := start.Add(time.Second); !s.Now().Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", s.Now(), want)
	}
}

func TestManualSchedulerChained(t *testing.T) {
	s := NewManualScheduler(time.Unix(0, 0))
	count := 0
	var arm func()
	arm = func() {
		s.AfterFunc(60*time.Millisecond, func() {
			count++
			arm()
		})
	}
	arm()
	s.Advance(200 * time.Millisecond)
	if count != 3 {
		t.Errorf("chained ticks = %d, want 3", count)
	}
	if d, ok := s.NextIn(); !ok || d != 40*time.Millisecond {
		t.Errorf("NextIn() = %v, %t, want 40ms, true", d, ok)
	}
}

func TestManualSchedulerStoppedAfterFire(t *testing.T) {
	s := NewManualScheduler(time.Unix(0, 0))
	tm := s.AfterFunc(0, func() {})
	s.Advance(0)
	if tm.Stop() {
		t.Error("Stop after fire should report false")
	}
	if _, ok := s.NextIn(); ok {
		t.Error("NextIn() should report nothing armed")
	}
}
