// Package render serializes vdom trees to HTML.
//
// Renderer writes deterministic markup: attributes are sorted, text and
// attribute values are escaped, void elements get no closing tag. RenderPage
// wraps a body tree in a complete document with head tags and the client
// bootstrap script.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(vdom.P(vdom.Text("hi")))
package render
