package ui

// RevealMargin is the default viewport inset, in pixels, a section must
// cross before it counts as visible.
const RevealMargin = 100

// RevealState is a section's reveal animation state.
type RevealState uint8

const (
	NotYetRevealed RevealState = iota
	Revealed
)

// String returns the state name.
func (s RevealState) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "pending"
}

// Box is the vertical extent of an element relative to the viewport top.
type Box struct {
	Top    float64
	Bottom float64
}

// Visible reports whether box intersects a viewport of the given height
// after shrinking the viewport by margin on the top and bottom edges.
func Visible(box Box, viewportHeight, margin float64) bool {
	return box.Top < viewportHeight-margin && box.Bottom > margin
}

// RevealSet tracks the reveal state of a fixed set of sections. A section
// moves to Revealed the first time it is seen visible and stays there.
type RevealSet struct {
	margin float64
	ids    []string
	state  map[string]RevealState
}

// NewRevealSet returns a set tracking ids with the given margin.
func NewRevealSet(margin float64, ids ...string) *RevealSet {
	r := &RevealSet{
		margin: margin,
		state:  make(map[string]RevealState, len(ids)),
	}
	for _, id := range ids {
		r.Register(id)
	}
	return r
}

// Register adds a section. Registering a known id does nothing.
func (r *RevealSet) Register(id string) {
	if _, ok := r.state[id]; ok {
		return
	}
	r.ids = append(r.ids, id)
	r.state[id] = NotYetRevealed
}

// IDs returns the tracked section ids in registration order.
func (r *RevealSet) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Margin returns the viewport inset used by Observe.
func (r *RevealSet) Margin() float64 { return r.margin }

// State returns the state of id. Unknown ids report NotYetRevealed.
func (r *RevealSet) State(id string) RevealState {
	return r.state[id]
}

// Revealed reports whether id has been revealed.
func (r *RevealSet) Revealed(id string) bool {
	return r.state[id] == Revealed
}

// Observe evaluates the visibility predicate for id and reveals it if
// visible. It reports true only on the transition to Revealed.
func (r *RevealSet) Observe(id string, box Box, viewportHeight float64) bool {
	if !Visible(box, viewportHeight, r.margin) {
		return false
	}
	return r.Mark(id)
}

// Mark reveals id without evaluating the predicate. It reports true only on
// the transition to Revealed; unknown ids are ignored.
func (r *RevealSet) Mark(id string) bool {
	st, ok := r.state[id]
	if !ok || st == Revealed {
		return false
	}
	r.state[id] = Revealed
	return true
}
