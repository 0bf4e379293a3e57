package content

import "testing"

func TestDefaultNav(t *testing.T) {
	site := Default()

	want := []struct{ label, href string }{
		{"Features", "#features"},
		{"How It Works", "#how-it-works"},
		{"Pricing", "#pricing"},
		{"FAQ", "#faq"},
	}
	if len(site.Nav) != len(want) {
		t.Fatalf("len(Nav) = %d, want %d", len(site.Nav), len(want))
	}
	for i, w := range want {
		if got := site.Nav[i]; got.Label != w.label || got.Href() != w.href {
			t.Errorf("Nav[%d] = %q %q, want %q %q", i, got.Label, got.Href(), w.label, w.href)
		}
	}
}

func TestNavAnchorsMatchSections(t *testing.T) {
	site := Default()
	sections := make(map[string]bool)
	for _, id := range site.SectionIDs() {
		sections[id] = true
	}
	for _, n := range site.Nav {
		if !sections[n.Anchor] {
			t.Errorf("nav anchor %q has no section", n.Anchor)
		}
	}
}

func TestDefaultRecords(t *testing.T) {
	site := Default()

	if got := len(site.StepCards); got != 3 {
		t.Errorf("len(StepCards) = %d, want 3", got)
	}
	for i, s := range site.StepCards {
		if want := string(rune('1' + i)); s.Number != want {
			t.Errorf("StepCards[%d].Number = %q, want %q", i, s.Number, want)
		}
	}
	if got := len(site.FeatureCards); got != 4 {
		t.Errorf("len(FeatureCards) = %d, want 4", got)
	}
	if got := len(site.Quotes); got != 3 {
		t.Errorf("len(Quotes) = %d, want 3", got)
	}
	for i, q := range site.Quotes {
		if q.Rating < 1 || q.Rating > 5 {
			t.Errorf("Quotes[%d].Rating = %d, want 1..5", i, q.Rating)
		}
	}
	if got := len(site.Questions); got != 5 {
		t.Errorf("len(Questions) = %d, want 5", got)
	}
}

func TestTiers(t *testing.T) {
	site := Default()

	tests := []struct {
		name     string
		price    string
		features int
		badge    string
	}{
		{"Free", "$0", 4, ""},
		{"Premium", "$9.99", 6, "Most Popular"},
	}
	for _, tt := range tests {
		tier, ok := site.Tier(tt.name)
		if !ok {
			t.Errorf("Tier(%q) not found", tt.name)
			continue
		}
		if tier.Price != tt.price {
			t.Errorf("%s price = %q, want %q", tt.name, tier.Price, tt.price)
		}
		if len(tier.Features) != tt.features {
			t.Errorf("%s features = %d, want %d", tt.name, len(tier.Features), tt.features)
		}
		if tier.Badge != tt.badge {
			t.Errorf("%s badge = %q, want %q", tt.name, tier.Badge, tt.badge)
		}
	}
	if _, ok := site.Tier("Enterprise"); ok {
		t.Error("Tier(Enterprise) found, want missing")
	}
}

func TestNavByAnchor(t *testing.T) {
	site := Default()
	n, ok := site.NavByAnchor("how-it-works")
	if !ok || n.Label != "How It Works" {
		t.Errorf("NavByAnchor(how-it-works) = %+v, %v", n, ok)
	}
	if _, ok := site.NavByAnchor("how-it works"); ok {
		t.Error("NavByAnchor found malformed anchor")
	}
}
