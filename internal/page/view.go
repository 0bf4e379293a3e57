package page

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/aibabysense/landing/internal/content"
	"github.com/aibabysense/landing/pkg/protocol"
	"github.com/aibabysense/landing/pkg/render"
	"github.com/aibabysense/landing/pkg/ui"
	"github.com/aibabysense/landing/pkg/vdom"
)

var (
	// ErrAlreadyMounted is returned when a View is mounted twice.
	ErrAlreadyMounted = errors.New("page: view already mounted")

	// ErrHostDisposed is returned when mounting on a disposed host.
	ErrHostDisposed = errors.New("page: host owner disposed")
)

// Options tunes a View. Zero values select the defaults.
type Options struct {
	// RotateInterval is the testimonial rotation period. Default 4s.
	RotateInterval time.Duration

	// RevealMargin is the viewport inset in pixels used by the reveal
	// predicate. Default 100.
	RevealMargin float64

	// Logger receives render failures. Default slog.Default().
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.RotateInterval <= 0 {
		o.RotateInterval = ui.RotateInterval
	}
	if o.RevealMargin <= 0 {
		o.RevealMargin = ui.RevealMargin
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// View is the UI state of one page view.
//
// A View is not safe for concurrent use. Before Mount it may be rendered
// from any single goroutine; after Mount every access must happen on the
// host's event loop.
type View struct {
	site     content.Site
	opts     Options
	renderer *render.Renderer

	nav     ui.Toggle
	scroll  *ui.ScrollTracker
	rotator *ui.Rotator
	reveals *ui.RevealSet

	host    Host
	mounted bool
}

// NewView returns a View over site in its initial state: nav closed, first
// testimonial active, not scrolled, nothing revealed.
func NewView(site content.Site, opts Options) *View {
	opts = opts.withDefaults()
	return &View{
		site:     site,
		opts:     opts,
		renderer: render.NewRenderer(render.RendererConfig{}),
		scroll:   ui.NewScrollTracker(),
		rotator:  ui.NewRotator(len(site.Quotes)),
		reveals:  ui.NewRevealSet(opts.RevealMargin, RevealIDs...),
	}
}

// Site returns the content the view renders.
func (v *View) Site() content.Site { return v.site }

// Options returns the effective options.
func (v *View) Options() Options { return v.opts }

// NavState returns the mobile navigation state.
func (v *View) NavState() ui.NavState { return v.nav.State() }

// ActiveTestimonial returns the index of the shown testimonial.
func (v *View) ActiveTestimonial() int { return v.rotator.Active() }

// Scrolled reports whether the page is scrolled past the threshold.
func (v *View) Scrolled() bool { return v.scroll.PastThreshold() }

// RevealState returns the reveal state of a reveal block.
func (v *View) RevealState(id string) ui.RevealState { return v.reveals.State(id) }

// Body renders the page content.
func (v *View) Body() *vdom.VNode {
	return vdom.Div(vdom.Class("page"),
		v.header(),
		vdom.Main(vdom.ID("main"),
			v.hero(),
			v.steps(),
			v.features(),
			v.testimonials(),
			v.pricing(),
			v.faq(),
			v.cta(),
		),
		v.footer(),
	)
}

// Region renders the region with the given id, as it would appear in Body.
func (v *View) Region(id string) (*vdom.VNode, bool) {
	switch id {
	case HeaderID:
		return v.header(), true
	case CarouselID:
		return v.carousel(), true
	}
	n := vdom.Find(v.Body(), vdom.ByID(id))
	if n == nil {
		return nil, false
	}
	if _, ok := n.Attr("data-region"); !ok {
		return nil, false
	}
	return n, true
}

// Mount attaches the view to h. The rotator starts ticking and the view
// begins reacting to scroll, click and visibility events until h's owner
// is disposed.
func (v *View) Mount(h Host) error {
	if v.mounted {
		return ErrAlreadyMounted
	}
	owner := h.Owner()
	if owner.IsDisposed() {
		return ErrHostDisposed
	}
	v.mounted = true
	v.host = h

	v.rotator.Start(owner, h.Clock(), v.opts.RotateInterval, h.Dispatch, func(int) {
		v.sendRegion(CarouselID)
	})
	v.scroll.Attach(owner, h.Scrolls(), func(past bool) {
		v.send(protocol.SetClass(HeaderID, ClassScrolled, past))
	})
	owner.OnCleanup(h.Clicks().Add(v.handleClick))
	owner.OnCleanup(h.Visibility().Add(v.handleVisible))
	owner.OnCleanup(func() { v.host = nil })
	return nil
}

func (v *View) handleClick(e protocol.Event) {
	switch e.Action {
	case ActionNavToggle:
		v.nav.Toggle()
		v.sendRegion(HeaderID)
	case ActionTestimonial:
		i, err := strconv.Atoi(e.Value)
		if err != nil {
			return
		}
		if v.rotator.Select(i) {
			v.sendRegion(CarouselID)
		}
	}
}

func (v *View) handleVisible(e protocol.Event) {
	box := ui.Box{Top: e.Top, Bottom: e.Bottom}
	if v.reveals.Observe(e.Target, box, e.Viewport) {
		v.send(protocol.SetClass(e.Target, ClassRevealed, true))
	}
}

// Sync sends the stateful regions as they stand in this view. A client
// that reconnects keeps the page of its previous view on screen, so a
// freshly mounted view overwrites the header and carousel before any event
// is handled.
func (v *View) Sync() {
	var patches []protocol.Patch
	for _, id := range []string{HeaderID, CarouselID} {
		if p, ok := v.regionPatch(id); ok {
			patches = append(patches, p)
		}
	}
	v.send(patches...)
}

func (v *View) sendRegion(id string) {
	if p, ok := v.regionPatch(id); ok {
		v.send(p)
	}
}

func (v *View) regionPatch(id string) (protocol.Patch, bool) {
	n, ok := v.Region(id)
	if !ok {
		return protocol.Patch{}, false
	}
	html, err := v.renderer.RenderToString(n)
	if err != nil {
		v.opts.Logger.Error("render region", "region", id, "error", err)
		return protocol.Patch{}, false
	}
	return protocol.Replace(id, html), true
}

func (v *View) send(patches ...protocol.Patch) {
	if v.host != nil && len(patches) > 0 {
		v.host.Send(patches...)
	}
}
