package vdom

import "strings"

// attr creates an attribute with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Global attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute. Multiple Class attributes on one element
// accumulate.
func Class(classes ...string) Attr {
	nonEmpty := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	return attr("class", strings.Join(nonEmpty, " "))
}

// ClassIf adds class when cond is true.
func ClassIf(cond bool, class string) Attr {
	if !cond {
		return Attr{}
	}
	return attr("class", class)
}

func StyleAttr(style string) Attr { return attr("style", style) }

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

func Role(role string) Attr           { return attr("role", role) }
func AriaLabel(label string) Attr     { return attr("aria-label", label) }
func AriaHidden(hidden bool) Attr     { return attr("aria-hidden", boolString(hidden)) }
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", boolString(expanded)) }
func AriaControls(id string) Attr     { return attr("aria-controls", id) }
func AriaCurrent(value string) Attr   { return attr("aria-current", value) }
func AriaLive(mode string) Attr       { return attr("aria-live", mode) }
func TitleAttr(title string) Attr     { return attr("title", title) }
func Lang(lang string) Attr           { return attr("lang", lang) }
func Hidden() Attr                    { return attr("hidden", true) }
func Key(key string) Attr             { return attr("key", key) }
func TabIndex(index int) Attr         { return attr("tabindex", index) }
func Name(name string) Attr           { return attr("name", name) }
func Content(content string) Attr     { return attr("content", content) }
func Charset(charset string) Attr     { return attr("charset", charset) }
func Open() Attr                      { return attr("open", true) }
func Type(t string) Attr              { return attr("type", t) }
func Rel(rel string) Attr             { return attr("rel", rel) }
func Target(target string) Attr       { return attr("target", target) }
func Href(url string) Attr            { return attr("href", url) }
func Src(url string) Attr             { return attr("src", url) }
func Alt(text string) Attr            { return attr("alt", text) }
func Width(w int) Attr                { return attr("width", w) }
func Height(h int) Attr               { return attr("height", h) }
func Loading(mode string) Attr        { return attr("loading", mode) }
func ViewBox(box string) Attr         { return attr("viewBox", box) }
func Fill(fill string) Attr           { return attr("fill", fill) }
func Stroke(stroke string) Attr       { return attr("stroke", stroke) }
func D(path string) Attr              { return attr("d", path) }
func Defer() Attr                     { return attr("defer", true) }

// Action marks an element as a UI control. The client script forwards clicks
// on it to the server as a click event carrying the action name and value.
func Action(name string, value ...string) []Attr {
	attrs := []Attr{attr("data-action", name)}
	if len(value) > 0 {
		attrs = append(attrs, attr("data-value", value[0]))
	}
	return attrs
}

// Region marks an element as independently re-renderable under id.
func Region(id string) []Attr {
	return []Attr{attr("id", id), attr("data-region", id)}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
