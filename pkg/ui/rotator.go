package ui

import (
	"fmt"
	"time"
)

// RotateInterval is how often the testimonial rotator advances on its own.
const RotateInterval = 4000 * time.Millisecond

// Rotator cycles an active index over n items.
type Rotator struct {
	n      int
	active int
}

// NewRotator returns a Rotator over n items starting at index 0.
// It panics if n is not positive.
func NewRotator(n int) *Rotator {
	if n <= 0 {
		panic(fmt.Sprintf("ui: rotator needs at least one item, got %d", n))
	}
	return &Rotator{n: n}
}

// Len returns the number of items.
func (r *Rotator) Len() int { return r.n }

// Active returns the active index, always in [0, Len()).
func (r *Rotator) Active() int { return r.active }

// Advance moves to the next index, wrapping to 0 after the last.
func (r *Rotator) Advance() int {
	r.active = (r.active + 1) % r.n
	return r.active
}

// Select makes i the active index. Out-of-range indices are ignored and
// Select reports false.
func (r *Rotator) Select(i int) bool {
	if i < 0 || i >= r.n {
		return false
	}
	r.active = i
	return true
}

// Start advances the rotator every d until owner is disposed. onAdvance, if
// set, runs after each automatic advance on the dispatching loop.
// Manual selections do not reset the schedule.
func (r *Rotator) Start(owner *Owner, clock Clock, d time.Duration, dispatch func(func()), onAdvance func(int)) Cleanup {
	if d <= 0 {
		d = RotateInterval
	}
	return Interval(owner, clock, d, dispatch, func() {
		i := r.Advance()
		if onAdvance != nil {
			onAdvance(i)
		}
	})
}
