// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package window_test

import (
	"testing"

	"github.com/creachadair/jview/window"
)

func TestThrottle(t *testing.T) {
	var q window.FrameQueue
	th := window.NewThrottle(&q)

	var calls int
	f := func() { calls++ }
	if !th.Trigger(f) {
		t.Error("First Trigger did not schedule")
	}
	for range 5 {
		if th.Trigger(f) {
			t.Error("Trigger scheduled while a call was pending")
		}
	}
	if q.Flush() != 1 || calls != 1 {
		t.Errorf("After flush: %d calls, want 1", calls)
	}
	if th.Pending() {
		t.Error("Throttle is pending after the call ran")
	}

	// A call that triggers again is scheduled for the next frame.
	var again func()
	again = func() { calls++; th.Trigger(again) }
	th.Trigger(again)
	q.Flush()
	if calls != 2 || !th.Pending() || q.Len() != 1 {
		t.Errorf("Re-trigger: calls=%d pending=%v queued=%d; want 2, true, 1", calls, th.Pending(), q.Len())
	}
	q.Flush()
	if calls != 3 {
		t.Errorf("Got %d calls, want 3", calls)
	}
}

func TestThrottleImmediate(t *testing.T) {
	th := window.NewThrottle(nil)
	var calls int
	for range 3 {
		if !th.Trigger(func() { calls++ }) {
			t.Error("Trigger did not schedule")
		}
	}
	if calls != 3 || th.Pending() {
		t.Errorf("Immediate: calls=%d pending=%v; want 3, false", calls, th.Pending())
	}
}

func TestSchedulerFunc(t *testing.T) {
	var got []string
	s := window.SchedulerFunc(func(f func()) { got = append(got, "scheduled"); f() })
	s.Schedule(func() { got = append(got, "ran") })
	if len(got) != 2 || got[0] != "scheduled" || got[1] != "ran" {
		t.Errorf("SchedulerFunc: got %q", got)
	}
}
