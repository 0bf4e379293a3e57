package page

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aibabysense/landing/internal/content"
	. "github.com/aibabysense/landing/pkg/vdom"
)

// Reveal block ids in page order.
const (
	RevealSteps               = "reveal-steps"
	RevealFeatures            = "reveal-features"
	RevealTestimonialsHeading = "reveal-testimonials-heading"
	RevealTestimonials        = "reveal-testimonials"
	RevealPricing             = "reveal-pricing"
	RevealFAQHeading          = "reveal-faq-heading"
	RevealFAQ                 = "reveal-faq"
	RevealCTA                 = "reveal-cta"
)

// RevealIDs lists every reveal block.
var RevealIDs = []string{
	RevealSteps,
	RevealFeatures,
	RevealTestimonialsHeading,
	RevealTestimonials,
	RevealPricing,
	RevealFAQHeading,
	RevealFAQ,
	RevealCTA,
}

// Ids of elements addressed by patches.
const (
	HeaderID    = "site-header"
	MobileNavID = "mobile-nav"
	CarouselID  = "testimonial-carousel"
)

// Control actions carried by data-action.
const (
	ActionNavToggle   = "nav-toggle"
	ActionTestimonial = "testimonial"
)

// Classes toggled by patches.
const (
	ClassScrolled = "is-scrolled"
	ClassRevealed = "is-revealed"
	ClassActive   = "is-active"
)

func (v *View) header() *VNode {
	open := v.nav.IsOpen()
	site := v.site

	menuLabel := "Open menu"
	if open {
		menuLabel = "Close menu"
	}

	return Header(Region(HeaderID),
		Class("site-header"),
		ClassIf(v.scroll.PastThreshold(), ClassScrolled),
		Div(Class("container header-bar"),
			// Brand
			A(Class("brand"), Href("#"),
				Img(Src(content.LogoPath), Alt(site.Brand+" Logo"), Width(32), Height(32), Class("brand-logo")),
				Span(Class("brand-name"), Text(site.Brand)),
			),
			// Desktop navigation
			Nav(Class("nav-desktop"), AriaLabel("Primary"), navLinks(site.Nav)),
			Div(Class("header-actions"),
				Range(site.HeaderCTAs, func(b content.Button, _ int) *VNode {
					return buttonLink(b, Data("header-cta", slug(b.Label)), ClassIf(!b.Primary, "desktop-only"))
				}),
				// Mobile menu button
				Button(Type("button"), Class("menu-toggle"),
					Action(ActionNavToggle),
					AriaExpanded(open),
					AriaControls(MobileNavID),
					AriaLabel(menuLabel),
					IfElse(open, icon("x"), icon("menu")),
				),
			),
		),
		If(open, Nav(ID(MobileNavID), Class("nav-mobile"), AriaLabel("Mobile"),
			navLinks(site.Nav),
		)),
	)
}

func navLinks(items []content.NavItem) []*VNode {
	return Range(items, func(n content.NavItem, _ int) *VNode {
		return A(Class("nav-link"), Href(n.Href()), Data("nav-item", n.Anchor), Text(n.Label))
	})
}

func buttonLink(b content.Button, extra ...any) *VNode {
	variant := "btn-outline"
	if b.Primary {
		variant = "btn-primary"
	}
	args := []any{Class("btn", variant), Href(b.Href), Text(b.Label)}
	return A(append(args, extra...)...)
}

func (v *View) hero() *VNode {
	h := v.site.Hero
	return Section(ID("hero"), Class("hero gradient-bg"),
		Div(Class("container hero-inner"),
			Div(Class("badge"), icon("sparkles"), Text(h.Badge)),
			H1(Class("hero-title"),
				Text(h.Headline+" "),
				Span(Class("gradient-text"), Text(h.Highlight)),
			),
			P(Class("hero-subline"), Text(h.Subline)),
			Div(Class("hero-actions"),
				A(Class("btn btn-primary btn-lg"), Href(h.Primary.Href), Data("cta", "primary"),
					Text(h.Primary.Label), icon("arrow-right"),
				),
				A(Class("btn btn-outline btn-lg"), Href(h.Secondary.Href), Data("cta", "secondary"),
					icon("play"), Text(h.Secondary.Label),
				),
			),
			Div(Class("hero-preview"),
				Img(Src(content.PreviewPath), Alt(h.ImageAlt), Width(800), Height(600), Loading("eager")),
			),
		),
	)
}

func (v *View) steps() *VNode {
	site := v.site
	return Section(ID(site.Steps.ID), Class("section section-muted"),
		Div(Class("container"),
			v.reveal(RevealSteps, sectionIntro(site.Steps)),
			Div(Class("grid grid-3"),
				Range(site.StepCards, func(s content.Step, _ int) *VNode {
					return Article(Class("card step-card"), Data("step", s.Number),
						Div(Class("card-icon", "accent-"+s.Accent), icon(s.Icon)),
						Span(Class("step-number"), Text(s.Number)),
						H3(Class("card-title"), Text(s.Title)),
						P(Class("card-text"), Text(s.Description)),
					)
				}),
			),
		),
	)
}

func (v *View) features() *VNode {
	site := v.site
	return Section(ID(site.Features.ID), Class("section"),
		Div(Class("container"),
			v.reveal(RevealFeatures, sectionIntro(site.Features)),
			Div(Class("grid grid-4"),
				Range(site.FeatureCards, func(f content.Feature, _ int) *VNode {
					return Article(Class("card feature-card"), Data("feature", slug(f.Title)),
						Div(Class("card-icon", "accent-"+f.Accent), icon(f.Icon)),
						H3(Class("card-title"), Text(f.Title)),
						P(Class("card-text"), Text(f.Description)),
					)
				}),
			),
		),
	)
}

func (v *View) testimonials() *VNode {
	site := v.site
	return Section(ID(site.Testimonials.ID), Class("section section-muted"),
		Div(Class("container"),
			v.reveal(RevealTestimonialsHeading, sectionIntro(site.Testimonials)),
			v.reveal(RevealTestimonials, v.carousel()),
		),
	)
}

// carousel renders the active testimonial and its indicators.
func (v *View) carousel() *VNode {
	active := v.rotator.Active()
	q := v.site.Quotes[active]

	return Div(Region(CarouselID), Class("carousel"),
		Article(Class("card testimonial-card"), Data("testimonial", strconv.Itoa(active)), AriaLive("polite"),
			Div(Class("stars"), AriaLabel(fmt.Sprintf("Rated %d out of 5", q.Rating)),
				Repeat(q.Rating, func(int) *VNode { return filledIcon("star", "star") }),
			),
			Blockquote(Class("testimonial-quote"), Text(`"`+q.Quote+`"`)),
			P(Class("testimonial-author"), Text("— "+q.Author)),
		),
		Div(Class("carousel-indicators"), Role("group"), AriaLabel("Choose testimonial"),
			Range(v.site.Quotes, func(_ content.Testimonial, i int) *VNode {
				current := Attr{}
				if i == active {
					current = AriaCurrent("true")
				}
				return Button(Type("button"), Class("indicator"), ClassIf(i == active, ClassActive),
					Action(ActionTestimonial, strconv.Itoa(i)),
					AriaLabel(fmt.Sprintf("Show testimonial %d", i+1)),
					current,
				)
			}),
		),
	)
}

func (v *View) pricing() *VNode {
	site := v.site
	return Section(ID(site.Pricing.ID), Class("section"),
		Div(Class("container"),
			v.reveal(RevealPricing, sectionIntro(site.Pricing)),
			Div(Class("grid grid-2 pricing-grid"),
				Range(site.Tiers, func(t content.PricingTier, _ int) *VNode {
					return Article(Class("card pricing-card"), ClassIf(t.Highlighted, "is-highlighted"),
						Data("tier", strings.ToLower(t.Name)),
						If(t.Badge != "", Span(Class("tier-badge"), Text(t.Badge))),
						H3(Class("tier-name"), Text(t.Name)),
						P(Class("tier-description"), Text(t.Description)),
						Div(Class("tier-price"),
							Span(Class("price"), Text(t.Price)),
							Span(Class("period"), Text(t.Period)),
						),
						Ul(Class("tier-features"),
							Range(t.Features, func(f string, _ int) *VNode {
								return Li(icon("check", "check"), Text(f))
							}),
						),
						buttonLink(t.Button, Class("btn-block")),
					)
				}),
			),
		),
	)
}

func (v *View) faq() *VNode {
	site := v.site
	return Section(ID(site.FAQ.ID), Class("section section-muted"),
		Div(Class("container container-narrow"),
			v.reveal(RevealFAQHeading, sectionIntro(site.FAQ)),
			v.reveal(RevealFAQ,
				Div(Class("faq-list"),
					Range(site.Questions, func(q content.FAQEntry, i int) *VNode {
						// Details sharing a name form a single-open accordion.
						return Details(Class("faq-item"), Name("faq"), Data("faq", strconv.Itoa(i)),
							Summary(Class("faq-question"), Text(q.Question)),
							Div(Class("faq-answer"), P(Text(q.Answer))),
						)
					}),
				),
			),
		),
	)
}

func (v *View) cta() *VNode {
	c := v.site.CTA
	return Section(ID("get-started"), Class("section cta gradient-cta"),
		Div(Class("container"),
			v.reveal(RevealCTA,
				H2(Class("cta-title"), Text(c.Headline)),
				P(Class("cta-body"), Text(c.Body)),
				A(Class("btn btn-light btn-lg"), Href(c.Button.Href), Data("cta", "closing"),
					icon("shield"), Text(c.Button.Label), icon("heart"),
				),
			),
		),
	)
}

func (v *View) footer() *VNode {
	f := v.site.Footer
	return Footer(Class("site-footer"),
		Div(Class("container footer-grid"),
			Div(Class("footer-brand"),
				Div(Class("brand"),
					Span(Class("brand-mark"), icon("baby")),
					Span(Class("brand-name gradient-text"), Text(v.site.Brand)),
				),
				P(Class("footer-blurb"), Text(f.Blurb)),
				Div(Class("social"),
					Range(f.Social, func(s content.SocialLink, _ int) *VNode {
						return A(Class("social-link"), Href(s.Href), AriaLabel(s.Network),
							icon(strings.ToLower(s.Network)),
						)
					}),
				),
			),
			Range(f.Columns, func(c content.FooterColumn, _ int) *VNode {
				return Div(Class("footer-column"),
					H3(Class("footer-title"), Text(c.Title)),
					Ul(Range(c.Links, func(l content.NavItem, _ int) *VNode {
						return Li(A(Href(l.Href()), Text(l.Label)))
					})),
				)
			}),
		),
		Div(Class("container footer-bottom"), P(Text(f.Copyright))),
	)
}

func sectionIntro(intro content.SectionIntro) *VNode {
	return Div(Class("section-intro"),
		H2(Class("section-title"), Text(intro.Title)),
		P(Class("section-lead"), Text(intro.Lead)),
	)
}

// reveal wraps children in a block that fades in once it is first seen.
func (v *View) reveal(id string, children ...any) *VNode {
	args := []any{
		ID(id),
		Data("reveal", "fade-up"),
		Class("reveal"),
		ClassIf(v.reveals.Revealed(id), ClassRevealed),
	}
	return Div(append(args, children...)...)
}

// slug lowercases s and joins its words with '-'.
func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "&", " "))), "-")
}
