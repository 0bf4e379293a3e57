package ui

import (
	"testing"
	"time"
)

func TestRotatorAutomaticTicks(t *testing.T) {
	for k := 0; k <= 10; k++ {
		r := NewRotator(3)
		for i := 0; i < k; i++ {
			r.Advance()
		}
		if got, want := r.Active(), k%3; got != want {
			t.Errorf("after %d ticks Active() = %d, want %d", k, got, want)
		}
	}
}

func TestRotatorSelectThenTick(t *testing.T) {
	for start := 0; start < 3; start++ {
		for i := 0; i < 3; i++ {
			r := NewRotator(3)
			for j := 0; j < start; j++ {
				r.Advance()
			}
			if !r.Select(i) {
				t.Fatalf("Select(%d) rejected", i)
			}
			if r.Active() != i {
				t.Errorf("Select(%d) from %d: Active() = %d", i, start, r.Active())
			}
			if got, want := r.Advance(), (i+1)%3; got != want {
				t.Errorf("tick after Select(%d) = %d, want %d", i, got, want)
			}
		}
	}
}

func TestRotatorSelectOutOfRange(t *testing.T) {
	r := NewRotator(3)
	r.Advance()
	for _, i := range []int{-1, 3, 42} {
		if r.Select(i) {
			t.Errorf("Select(%d) should be rejected", i)
		}
	}
	if r.Active() != 1 {
		t.Errorf("Active() = %d, want 1", r.Active())
	}
}

func TestNewRotatorPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRotator(0) should panic")
		}
	}()
	NewRotator(0)
}

// loop collects dispatched functions so the test decides when they run.
type loop chan func()

func (l loop) Dispatch(fn func()) { l <- fn }

func (l loop) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-l:
		fn()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatched tick")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRotatorStartTicksOnLoop(t *testing.T) {
	owner := NewOwner()
	clock := NewManualClock()
	l := make(loop, 8)
	r := NewRotator(3)

	var advanced []int
	r.Start(owner, clock, RotateInterval, l.Dispatch, func(i int) {
		advanced = append(advanced, i)
	})

	clock.Tick()
	l.runNext(t)
	if r.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", r.Active())
	}

	// Manual selection does not stop the timer.
	r.Select(0)
	clock.Tick()
	l.runNext(t)
	if r.Active() != 1 {
		t.Errorf("tick after Select(0): Active() = %d, want 1", r.Active())
	}

	clock.Tick()
	l.runNext(t)
	if r.Active() != 2 {
		t.Errorf("Active() = %d, want 2", r.Active())
	}
	if len(advanced) != 3 {
		t.Errorf("onAdvance calls = %d, want 3", len(advanced))
	}

	owner.Dispose()
	waitFor(t, func() bool { return clock.Active() == 0 })
}

func TestIntervalDropsTickDispatchedBeforeRelease(t *testing.T) {
	owner := NewOwner()
	clock := NewManualClock()
	l := make(loop, 8)

	calls := 0
	Interval(owner, clock, time.Second, l.Dispatch, func() { calls++ })

	clock.Tick()
	var pending func()
	select {
	case pending = <-l:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for tick")
	}

	owner.Dispose()
	pending()
	if calls != 0 {
		t.Errorf("tick ran after release: calls = %d", calls)
	}
}

func TestIntervalCleanupIsIdempotent(t *testing.T) {
	owner := NewOwner()
	clock := NewManualClock()
	l := make(loop, 8)

	stop := Interval(owner, clock, time.Second, l.Dispatch, func() {})
	stop()
	stop()
	owner.Dispose()
	waitFor(t, func() bool { return clock.Active() == 0 })
}

func TestIntervalOnDisposedOwner(t *testing.T) {
	owner := NewOwner()
	owner.Dispose()
	clock := NewManualClock()

	stop := Interval(owner, clock, time.Second, func(fn func()) { fn() }, func() {
		t.Error("interval on disposed owner must not tick")
	})
	stop()
	if clock.Active() != 0 {
		t.Errorf("Active() = %d, want 0", clock.Active())
	}
}

func TestSystemClockTicker(t *testing.T) {
	ticker := SystemClock.NewTicker(time.Millisecond)
	defer ticker.Stop()
	select {
	case <-ticker.C():
	case <-time.After(time.Second):
		t.Fatal("system ticker did not fire")
	}
}
