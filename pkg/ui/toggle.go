package ui

// NavState is the mobile navigation state.
type NavState uint8

const (
	NavClosed NavState = iota
	NavOpen
)

// String returns the state name.
func (s NavState) String() string {
	switch s {
	case NavClosed:
		return "closed"
	case NavOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Toggle is a two-state switch that starts closed.
type Toggle struct {
	state NavState
}

// State returns the current state.
func (t *Toggle) State() NavState { return t.state }

// IsOpen reports whether the toggle is open.
func (t *Toggle) IsOpen() bool { return t.state == NavOpen }

// Toggle flips the state and returns the new one.
func (t *Toggle) Toggle() NavState {
	if t.state == NavOpen {
		t.state = NavClosed
	} else {
		t.state = NavOpen
	}
	return t.state
}
