// Package content holds the literal copy of the AI BabySense landing page.
//
// Every record is plain data, built once and never mutated. Identity is the
// position in its slice.
package content

// Brand is the product name used across the page.
const Brand = "AI BabySense"

// Asset paths served from the asset source.
const (
	LogoPath    = "/logo/favicon-32x32.png"
	PreviewPath = "/happy-baby-aisense.png"
)

// NavItem is an in-page navigation link.
type NavItem struct {
	Label  string
	Anchor string // section id, without '#'
}

// Href returns the same-document link for the item.
func (n NavItem) Href() string { return "#" + n.Anchor }

// Button is a call to action.
type Button struct {
	Label   string
	Href    string
	Primary bool
}

// Hero is the opening section.
type Hero struct {
	Badge     string
	Headline  string
	Highlight string
	Subline   string
	Primary   Button
	Secondary Button
	ImageAlt  string
}

// Step is one "How It Works" card.
type Step struct {
	Number      string
	Icon        string
	Title       string
	Description string
	Accent      string
}

// Feature is one feature grid card.
type Feature struct {
	Icon        string
	Title       string
	Description string
	Accent      string
}

// Testimonial is a customer quote with a 1 to 5 star rating.
type Testimonial struct {
	Quote  string
	Author string
	Rating int
}

// PricingTier is one pricing card.
type PricingTier struct {
	Name        string
	Description string
	Price       string
	Period      string
	Features    []string
	Button      Button
	Badge       string // empty unless highlighted
	Highlighted bool
}

// FAQEntry is one accordion item.
type FAQEntry struct {
	Question string
	Answer   string
}

// SectionIntro is a section heading with its lead paragraph.
type SectionIntro struct {
	ID    string
	Title string
	Lead  string
}

// CTA is the closing call to action.
type CTA struct {
	Headline string
	Body     string
	Button   Button
}

// FooterColumn is a titled list of links.
type FooterColumn struct {
	Title string
	Links []NavItem
}

// SocialLink points at a social profile.
type SocialLink struct {
	Network string
	Href    string
}

// Footer is the page footer.
type Footer struct {
	Blurb     string
	Social    []SocialLink
	Columns   []FooterColumn
	Copyright string
}

// Site is the full page copy.
type Site struct {
	Brand        string
	Title        string
	Description  string
	Nav          []NavItem
	HeaderCTAs   []Button
	Hero         Hero
	Steps        SectionIntro
	StepCards    []Step
	Features     SectionIntro
	FeatureCards []Feature
	Testimonials SectionIntro
	Quotes       []Testimonial
	Pricing      SectionIntro
	Tiers        []PricingTier
	FAQ          SectionIntro
	Questions    []FAQEntry
	CTA          CTA
	Footer       Footer
}

// NavByAnchor returns the nav item for anchor.
func (s Site) NavByAnchor(anchor string) (NavItem, bool) {
	for _, n := range s.Nav {
		if n.Anchor == anchor {
			return n, true
		}
	}
	return NavItem{}, false
}

// Tier returns the pricing tier with the given name.
func (s Site) Tier(name string) (PricingTier, bool) {
	for _, t := range s.Tiers {
		if t.Name == name {
			return t, true
		}
	}
	return PricingTier{}, false
}

// SectionIDs returns the ids of the sections that carry an in-page anchor,
// in page order.
func (s Site) SectionIDs() []string {
	return []string{s.Steps.ID, s.Features.ID, s.Testimonials.ID, s.Pricing.ID, s.FAQ.ID}
}
