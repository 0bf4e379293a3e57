// Package page builds the AI BabySense landing page and owns the UI state of
// one page view.
//
// The page is a tree of sections rendered from internal/content. A View holds
// the four pieces of per-view state (mobile nav toggle, testimonial rotator,
// scroll flag and section reveal flags). Once mounted on a Host, the View
// turns UI events into state changes and state changes into DOM patches.
//
// Elements the client script needs to address carry stable ids:
//
//	site-header            header region, re-rendered on nav toggle
//	testimonial-carousel   carousel region, re-rendered on rotation
//	reveal-*               reveal blocks, receive the is-revealed class
package page
