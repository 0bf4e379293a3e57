package page

import (
	"sync"
	"testing"
	"time"

	"github.com/aibabysense/landing/pkg/protocol"
	"github.com/aibabysense/landing/pkg/ui"
)

// testHost is a Host whose event loop is the test goroutine. Dispatched
// functions queue until runNext takes them.
type testHost struct {
	owner *ui.Owner
	clock *ui.ManualClock
	loop  chan func()

	mu   sync.Mutex
	sent []protocol.Patch

	scrolls ui.Listeners[float64]
	clicks  ui.Listeners[protocol.Event]
	visible ui.Listeners[protocol.Event]
}

func newTestHost() *testHost {
	return &testHost{
		owner: ui.NewOwner(),
		clock: ui.NewManualClock(),
		loop:  make(chan func(), 16),
	}
}

func (h *testHost) Owner() *ui.Owner                          { return h.owner }
func (h *testHost) Clock() ui.Clock                           { return h.clock }
func (h *testHost) Dispatch(fn func())                        { h.loop <- fn }
func (h *testHost) Scrolls() *ui.Listeners[float64]           { return &h.scrolls }
func (h *testHost) Clicks() *ui.Listeners[protocol.Event]     { return &h.clicks }
func (h *testHost) Visibility() *ui.Listeners[protocol.Event] { return &h.visible }

func (h *testHost) Send(patches ...protocol.Patch) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent = append(h.sent, patches...)
}

// take returns and clears the patches sent so far.
func (h *testHost) take() []protocol.Patch {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.sent
	h.sent = nil
	return out
}

// tick fires the clock once and runs the dispatched tick.
func (h *testHost) tick(t *testing.T) {
	t.Helper()
	h.clock.Tick()
	h.runNext(t)
}

func (h *testHost) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-h.loop:
		fn()
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatched work")
	}
}

func (h *testHost) click(action, value string) {
	h.clicks.Emit(protocol.Event{Type: protocol.EventClick, Action: action, Value: value})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met")
		}
		time.Sleep(time.Millisecond)
	}
}
