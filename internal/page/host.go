package page

import (
	"github.com/aibabysense/landing/pkg/protocol"
	"github.com/aibabysense/landing/pkg/ui"
)

// Host is the live connection a View is mounted on. A server session
// implements it; tests use a fake.
//
// Every callback the View registers runs on the host's event loop, either
// because the host emits events from the loop or because it was handed to
// Dispatch.
type Host interface {
	// Owner scopes the mounted view. Disposing it stops the rotator and
	// detaches every listener.
	Owner() *ui.Owner

	// Clock drives the rotator interval.
	Clock() ui.Clock

	// Dispatch runs fn on the event loop. It is safe from any goroutine.
	Dispatch(fn func())

	// Send delivers patches to the client.
	Send(patches ...protocol.Patch)

	// Scrolls carries scroll offsets.
	Scrolls() *ui.Listeners[float64]

	// Clicks carries click events on data-action controls.
	Clicks() *ui.Listeners[protocol.Event]

	// Visibility carries section geometry reports.
	Visibility() *ui.Listeners[protocol.Event]
}
