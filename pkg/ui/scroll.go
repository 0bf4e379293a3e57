package ui

// ScrollThreshold is the vertical offset in pixels past which the page
// counts as scrolled.
const ScrollThreshold = 50

// ScrollTracker tracks whether the last observed scroll offset is past the
// threshold.
type ScrollTracker struct {
	threshold float64
	past      bool
	attached  bool
}

// NewScrollTracker returns a tracker using ScrollThreshold.
func NewScrollTracker() *ScrollTracker {
	return &ScrollTracker{threshold: ScrollThreshold}
}

// PastThreshold reports whether the last observed offset exceeded the
// threshold. It is false before any observation.
func (s *ScrollTracker) PastThreshold() bool { return s.past }

// Observe records a scroll offset and reports whether the flag changed.
func (s *ScrollTracker) Observe(offsetY float64) bool {
	past := offsetY > s.threshold
	changed := past != s.past
	s.past = past
	return changed
}

// Attach subscribes the tracker to scroll offsets from src for the lifetime
// of owner. onChange runs whenever the flag flips. Attaching an already
// attached tracker does nothing.
func (s *ScrollTracker) Attach(owner *Owner, src *Listeners[float64], onChange func(past bool)) {
	if s.attached || owner.IsDisposed() {
		return
	}
	s.attached = true
	remove := src.Add(func(y float64) {
		if s.Observe(y) && onChange != nil {
			onChange(s.past)
		}
	})
	owner.OnCleanup(func() {
		remove()
		s.attached = false
	})
}
