// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package window

// A Scheduler arranges for a function to be called later, typically at the
// next display frame. Callbacks must run on the same goroutine as the rest
// of the host's event handling.
type Scheduler interface {
	Schedule(func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(func())

// Schedule satisfies the Scheduler interface.
func (f SchedulerFunc) Schedule(g func()) { f(g) }

// Immediate is a Scheduler that calls each function as soon as it is
// scheduled.
var Immediate Scheduler = SchedulerFunc(func(f func()) { f() })

// A FrameQueue is a Scheduler that holds scheduled functions until the host
// calls Flush, once per frame. The zero value is ready for use.
type FrameQueue struct {
	fns []func()
}

// Schedule satisfies the Scheduler interface.
func (q *FrameQueue) Schedule(f func()) { q.fns = append(q.fns, f) }

// Len reports the number of functions awaiting the next frame.
func (q *FrameQueue) Len() int { return len(q.fns) }

// Flush calls all the functions scheduled before the call, in order, and
// reports how many there were. Functions scheduled during the flush wait
// for the next one.
func (q *FrameQueue) Flush() int {
	fns := q.fns
	q.fns = nil
	for _, f := range fns {
		f()
	}
	return len(fns)
}

// A Throttle coalesces bursts of requests into at most one scheduled call.
type Throttle struct {
	sched   Scheduler
	pending bool
}

// NewThrottle constructs a Throttle that schedules calls with s.
// If s == nil, Immediate is used.
func NewThrottle(s Scheduler) *Throttle {
	if s == nil {
		s = Immediate
	}
	return &Throttle{sched: s}
}

// Trigger schedules a call to f, unless a call is already pending, and
// reports whether it did so. The pending flag is cleared before f runs, so
// that f may itself trigger a further call.
func (t *Throttle) Trigger(f func()) bool {
	if t.pending {
		return false
	}
	t.pending = true
	t.sched.Schedule(func() {
		t.pending = false
		f()
	})
	return true
}

// Pending reports whether a call is scheduled and has not yet run.
func (t *Throttle) Pending() bool { return t.pending }
