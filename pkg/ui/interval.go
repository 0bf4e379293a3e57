package ui

import (
	"sync"
	"sync/atomic"
	"time"
)

// Interval schedules fn every d until owner is disposed or the returned
// Cleanup is called. Ticks are handed to dispatch, which is expected to run
// fn on the view's event loop. A tick that was dispatched but has not run
// when the interval is released is dropped.
//
// If owner is already disposed, no ticker is started.
func Interval(owner *Owner, clock Clock, d time.Duration, dispatch func(func()), fn func()) Cleanup {
	if owner.IsDisposed() {
		return func() {}
	}
	if clock == nil {
		clock = SystemClock
	}

	ticker := clock.NewTicker(d)
	done := make(chan struct{})
	var stopped atomic.Bool

	tick := func() {
		if stopped.Load() {
			return
		}
		fn()
	}

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C():
				dispatch(tick)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			stopped.Store(true)
			close(done)
		})
	}
	owner.OnCleanup(cleanup)
	return cleanup
}
