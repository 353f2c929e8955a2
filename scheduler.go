package main

import "time"

// Clock is the time source for the scheduler, replaceable in tests
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using time.Now
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Timer is a handle to a pending deferred task
type Timer interface {
	// Stop cancels the task. It returns false if the task already ran or was
	// already stopped.
	Stop() bool
}

// Scheduler runs a task once after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, fn func() error) Timer
}

type frameTask struct {
	due     time.Time
	fn      func() error
	stopped bool
	fired   bool
}

func (t *frameTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// FrameScheduler keeps deferred tasks until Poll is called from the display
// loop, so tasks run on the same goroutine as input handling and never
// overlap with it.
type FrameScheduler struct {
	clock Clock
	tasks []*frameTask
}

// NewFrameScheduler creates a FrameScheduler. A nil clock uses RealClock.
func NewFrameScheduler(clock Clock) *FrameScheduler {
	if clock == nil {
		clock = RealClock{}
	}
	return &FrameScheduler{clock: clock}
}

// AfterFunc registers fn to run at the first Poll at or after now+d
func (s *FrameScheduler) AfterFunc(d time.Duration, fn func() error) Timer {
	task := &frameTask{due: s.clock.Now().Add(d), fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Pending returns the number of tasks that are neither stopped nor fired
func (s *FrameScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Poll runs every due task and returns the first error a task reported.
// Tasks scheduled while polling wait for the next Poll.
func (s *FrameScheduler) Poll() error {
	now := s.clock.Now()

	due := make([]*frameTask, 0, len(s.tasks))
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.stopped:
		case !now.Before(t.due):
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	var firstErr error
	for _, t := range due {
		// An earlier task in this batch may have stopped this one
		if t.stopped {
			continue
		}
		t.fired = true
		if err := t.fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
