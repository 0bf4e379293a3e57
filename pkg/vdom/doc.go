// Package vdom provides the virtual node tree the landing page is built from.
//
// Pages are composed from variadic element constructors and rendered to HTML
// by package render:
//
//	Section(ID("faq"), Class("py-20"),
//	    H2(Text("Frequently Asked Questions")),
//	    P(Class("lead"), Text("Everything you need to know")),
//	)
//
// # Core Types
//
// VNode is the building block for elements, text, fragments, components and
// raw HTML. Props holds element attributes. Attr is a single attribute and is
// what the attribute helpers (Class, ID, Href, Data, ...) return.
//
// # Regions
//
// Elements that are re-rendered after the initial page load carry a region
// attribute (see Region). The server re-renders a region by its id and ships
// the HTML to the browser as a replace patch.
//
// # Queries
//
// Walk, Find, FindAll and TextContent inspect a rendered tree. They are used
// to locate regions and by tests asserting on page structure.
package vdom
