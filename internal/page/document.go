package page

import (
	"github.com/aibabysense/landing/internal/content"
	"github.com/aibabysense/landing/pkg/render"
)

// StylesheetPath is where the page stylesheet is served.
const StylesheetPath = "/_landing/landing.css"

// Document returns the full HTML document for the view. A nil client
// renders a static page without the live connection.
func (v *View) Document(client *render.ClientConfig) render.PageData {
	site := v.site
	if client != nil && client.RevealMargin == 0 {
		c := *client
		c.RevealMargin = int(v.opts.RevealMargin)
		client = &c
	}
	return render.PageData{
		Body:  v.Body(),
		Title: site.Title,
		Lang:  "en",
		Meta: []render.MetaTag{
			{Name: "description", Content: site.Description},
			{Name: "theme-color", Content: "#7c3aed"},
			{Property: "og:title", Content: site.Title},
			{Property: "og:description", Content: site.Description},
			{Property: "og:image", Content: content.PreviewPath},
		},
		Links: []render.LinkTag{
			{Rel: "icon", Href: content.LogoPath, Type: "image/png", Sizes: "32x32"},
		},
		StyleSheets: []string{StylesheetPath},
		Client:      client,
	}
}
