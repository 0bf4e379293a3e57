package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{VKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCreateElementArgs(t *testing.T) {
	child := Span(Text("child"))
	node := Div(
		nil,
		ID("root"),
		[]Attr{Data("a", "1"), Data("b", "2")},
		child,
		[]*VNode{P(), nil, P()},
		"shorthand",
		42,
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("got %v <%s>, want Element <div>", node.Kind, node.Tag)
	}
	if id, _ := node.Attr("id"); id != "root" {
		t.Errorf("id = %q, want %q", id, "root")
	}
	if v, _ := node.Attr("data-b"); v != "2" {
		t.Errorf("data-b = %q, want %q", v, "2")
	}
	if len(node.Children) != 4 {
		t.Fatalf("children = %d, want 4 (unsupported args are ignored)", len(node.Children))
	}
	if node.Children[0] != child {
		t.Error("first child should be the span")
	}
	if node.Children[3].Kind != KindText || node.Children[3].Text != "shorthand" {
		t.Errorf("string arg should become a text node, got %+v", node.Children[3])
	}
}

func TestClassAccumulates(t *testing.T) {
	node := Div(Class("a", "", "b"), ClassIf(false, "hidden"), ClassIf(true, "c"), Class())
	got, _ := node.Attr("class")
	if got != "a b c" {
		t.Errorf("class = %q, want %q", got, "a b c")
	}
	if !node.HasClass("b") || node.HasClass("hidden") {
		t.Errorf("HasClass mismatch for %q", got)
	}
}

func TestKeyAttr(t *testing.T) {
	node := Li(Key("item-2"))
	if node.Key != "item-2" {
		t.Errorf("Key = %q, want %q", node.Key, "item-2")
	}
}

func TestActionAndRegion(t *testing.T) {
	btn := Button(Action("testimonial.select", "2"))
	if v, _ := btn.Attr("data-action"); v != "testimonial.select" {
		t.Errorf("data-action = %q", v)
	}
	if v, _ := btn.Attr("data-value"); v != "2" {
		t.Errorf("data-value = %q", v)
	}

	region := Div(Region("testimonial"))
	if v, _ := region.Attr("id"); v != "testimonial" {
		t.Errorf("id = %q", v)
	}
	if v, _ := region.Attr("data-region"); v != "testimonial" {
		t.Errorf("data-region = %q", v)
	}
}

func TestAriaBoolAttrs(t *testing.T) {
	node := Button(AriaExpanded(true), AriaHidden(false))
	if v, _ := node.Attr("aria-expanded"); v != "true" {
		t.Errorf("aria-expanded = %q, want true", v)
	}
	if v, _ := node.Attr("aria-hidden"); v != "false" {
		t.Errorf("aria-hidden = %q, want false", v)
	}
}

func TestHelpers(t *testing.T) {
	if If(false, Div()) != nil {
		t.Error("If(false) should be nil")
	}
	if If(true, Div()) == nil {
		t.Error("If(true) should return node")
	}
	a, b := P(), Span()
	if IfElse(false, a, b) != b {
		t.Error("IfElse(false) should return second")
	}
	if IfElse(true, a, b) != a {
		t.Error("IfElse(true) should return first")
	}
	nodes := Range([]string{"x", "y", "z"}, func(s string, i int) *VNode {
		if i == 1 {
			return nil
		}
		return Li(Text(s))
	})
	if len(nodes) != 2 {
		t.Errorf("Range len = %d, want 2", len(nodes))
	}
	if got := len(Repeat(5, func(int) *VNode { return Span() })); got != 5 {
		t.Errorf("Repeat len = %d, want 5", got)
	}
	if Textf("%d stars", 5).Text != "5 stars" {
		t.Error("Textf did not format")
	}
	frag := Fragment("a", nil, []*VNode{P(), nil}, Div())
	if len(frag.Children) != 3 {
		t.Errorf("fragment children = %d, want 3", len(frag.Children))
	}
}

func TestQueries(t *testing.T) {
	tree := Div(
		Nav(
			A(Data("nav-item", ""), Href("#a"), Text("A")),
			A(Data("nav-item", ""), Href("#b"), Text("B")),
		),
		Fragment(
			Section(ID("faq"), P(Text("inside fragment"))),
		),
	)

	items := FindAll(tree, ByAttr("data-nav-item", ""))
	if len(items) != 2 {
		t.Fatalf("nav items = %d, want 2", len(items))
	}
	if got := TextContent(items[1]); got != "B" {
		t.Errorf("TextContent = %q, want %q", got, "B")
	}

	faq := Find(tree, ByID("faq"))
	if faq == nil {
		t.Fatal("Find should descend into fragments")
	}
	if got := TextContent(faq); got != "inside fragment" {
		t.Errorf("TextContent = %q", got)
	}
	if Find(tree, ByTag("table")) != nil {
		t.Error("Find should return nil when nothing matches")
	}
	if got := len(FindAll(tree, ByAttr("href", "#b"))); got != 1 {
		t.Errorf("href=#b matches = %d, want 1", got)
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("img") || IsVoidElement("div") {
		t.Error("void element table mismatch")
	}
}
