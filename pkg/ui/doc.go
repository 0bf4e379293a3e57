// Package ui holds the interactive state of a landing page view.
//
// A page view owns four small state machines:
//
//   - Rotator cycles the active testimonial on a fixed interval and on
//     manual selection.
//   - ScrollTracker flags whether the viewport has scrolled past a fixed
//     threshold.
//   - Toggle is the mobile navigation open/closed switch.
//   - RevealSet records, per section, whether its reveal animation fired.
//
// None of them lock. They are mutated from a single event loop (the page
// view's session loop); timers and listeners hand work to that loop through a
// dispatch function instead of touching state themselves.
//
// # Lifecycle
//
// Owner is the scope a view's resources are acquired in. Interval and
// Listeners.Add register their release with the owner, and Owner.Dispose
// releases everything in reverse order:
//
//	owner := ui.NewOwner()
//	ui.Interval(owner, ui.SystemClock, ui.RotateInterval, loop.Dispatch, func() {
//	    rotator.Advance()
//	})
//	defer owner.Dispose()
package ui
