// Package server serves the landing page and drives its live views.
//
// A GET of the page renders the full document on the server. The embedded
// thin client then opens a WebSocket; the server creates a Session for the
// connection, mounts a fresh page.View on it and from then on owns that
// view's UI state.
//
// # Session loops
//
// Every Session runs three goroutines:
//
//   - The read loop decodes client frames and queues UI events.
//   - The event loop is the only goroutine that touches view state. Events,
//     dispatched callbacks and rotator ticks all serialize through it.
//   - The write loop owns the connection's writer. It drains the outbox and
//     sends heartbeat pings.
//
// Closing a session disposes its owner on the event loop, which stops the
// rotator and detaches every listener the view registered.
//
// # Wire format
//
// Frames are JSON objects defined in package protocol:
//
//	{"t":"event","seq":3,"d":{"type":"click","action":"nav-toggle"}}
//	{"t":"patches","seq":7,"d":{"patches":[{"op":"class","target":"site-header","class":"is-scrolled","on":true}]}}
//
// # Observability
//
// Sessions, events, patches and page renders are counted with Prometheus
// collectors registered on the configured registry. Page renders and event
// handling are traced with OpenTelemetry using the global tracer provider.
package server
