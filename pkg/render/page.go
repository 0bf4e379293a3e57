package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aibabysense/landing/pkg/vdom"
)

// DefaultClientScript is the path the thin client is served from.
const DefaultClientScript = "/_landing/client.js"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (favicon, preconnect, ...).
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	// Client configures the thin client. A nil Client renders a static page
	// with no script.
	Client *ClientConfig
}

// ClientConfig is handed to the thin client as bootstrap data.
type ClientConfig struct {
	// Script is the thin client path. Defaults to DefaultClientScript.
	Script string `json:"-"`

	// Socket is the WebSocket endpoint path.
	Socket string `json:"socket"`

	// RevealMargin is the inset in pixels applied to the viewport before
	// a section counts as visible.
	RevealMargin int `json:"revealMargin"`

	// Debug enables console logging in the client.
	Debug bool `json:"debug,omitempty"`
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Property string // property attribute (for OpenGraph)
	Content  string // content attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel   string // rel attribute
	Href  string // href attribute
	Type  string // type attribute
	Sizes string // sizes attribute
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := r.renderClientScript(w, page.Client); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	head := "<head>\n" +
		`  <meta charset="utf-8">` + "\n" +
		`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n"
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, meta := range page.Meta {
		if err := renderMetaTag(w, meta); err != nil {
			return err
		}
	}

	for _, link := range page.Links {
		if err := renderLinkTag(w, link); err != nil {
			return err
		}
	}

	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

// renderMetaTag renders a meta element.
func renderMetaTag(w io.Writer, meta MetaTag) error {
	attrs := []struct{ key, value string }{
		{"name", meta.Name},
		{"property", meta.Property},
		{"content", meta.Content},
	}
	return renderVoidTag(w, "meta", attrs)
}

// renderLinkTag renders a link element.
func renderLinkTag(w io.Writer, link LinkTag) error {
	attrs := []struct{ key, value string }{
		{"rel", link.Rel},
		{"href", link.Href},
		{"type", link.Type},
		{"sizes", link.Sizes},
	}
	return renderVoidTag(w, "link", attrs)
}

func renderVoidTag(w io.Writer, tag string, attrs []struct{ key, value string }) error {
	if _, err := fmt.Fprintf(w, "  <%s", tag); err != nil {
		return err
	}
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.key, escapeAttr(a.value)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">\n")
	return err
}

// renderClientScript injects the bootstrap data and the thin client.
func (r *Renderer) renderClientScript(w io.Writer, client *ClientConfig) error {
	if client == nil {
		return nil
	}

	data, err := json.Marshal(client)
	if err != nil {
		return fmt.Errorf("render: marshal client config: %w", err)
	}
	if _, err := fmt.Fprintf(w, "<script>window.__LANDING__=%s;</script>\n", escapeScript(string(data))); err != nil {
		return err
	}

	script := client.Script
	if script == "" {
		script = DefaultClientScript
	}
	_, err = fmt.Fprintf(w, `<script src="%s" defer></script>`+"\n", escapeAttr(script))
	return err
}
