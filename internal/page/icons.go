package page

import . "github.com/aibabysense/landing/pkg/vdom"

// iconPaths holds outline icon path data on a 24x24 grid.
var iconPaths = map[string][]string{
	"menu":        {"M4 6h16", "M4 12h16", "M4 18h16"},
	"x":           {"M18 6 6 18", "m6 6 12 12"},
	"play":        {"M6 3l14 9-14 9V3z"},
	"sparkles":    {"M12 3l1.9 5.8L20 10.7l-6.1 1.9L12 18.4l-1.9-5.8L4 10.7l6.1-1.9z"},
	"arrow-right": {"M5 12h14", "m12 5 7 7-7 7"},
	"mic": {
		"M12 2a3 3 0 0 0-3 3v7a3 3 0 0 0 6 0V5a3 3 0 0 0-3-3Z",
		"M19 10v2a7 7 0 0 1-14 0v-2",
		"M12 19v3",
	},
	"brain": {
		"M12 5a3 3 0 1 0-5.997.125 4 4 0 0 0-2.526 5.77 4 4 0 0 0 .556 6.588A4 4 0 1 0 12 18Z",
		"M12 5a3 3 0 1 1 5.997.125 4 4 0 0 1 2.526 5.77 4 4 0 0 1-.556 6.588A4 4 0 1 1 12 18Z",
	},
	"lightbulb": {
		"M15 14c.2-1 .7-1.7 1.5-2.5 1-.9 1.5-2.2 1.5-3.5A6 6 0 0 0 6 8c0 1 .2 2.2 1.5 3.5.7.7 1.3 1.5 1.5 2.5",
		"M9 18h6",
		"M10 22h4",
	},
	"moon": {"M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"},
	"baby": {
		"M9 12h.01",
		"M15 12h.01",
		"M10 16c.5.3 1.2.5 2 .5s1.5-.2 2-.5",
		"M19 6.3a9 9 0 0 1 1.8 3.9 2 2 0 0 1 0 3.6 9 9 0 0 1-17.6 0 2 2 0 0 1 0-3.6A9 9 0 0 1 12 3c2 0 3.5 1.1 3.5 2.5s-.9 2.5-2 2.5c-.8 0-1.5-.4-1.5-1",
	},
	"watch": {
		"M6 12a6 6 0 1 0 12 0 6 6 0 1 0-12 0",
		"M12 10v2.2l1.6 1",
		"M16.13 7.66l-.81-4.05a2 2 0 0 0-2-1.61h-2.68a2 2 0 0 0-2 1.61l-.78 4.05",
		"M7.88 16.36l.8 4a2 2 0 0 0 2 1.61h2.72a2 2 0 0 0 2-1.61l.81-4.05",
	},
	"star":  {"M12 2l3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z"},
	"check": {"M20 6 9 17l-5-5"},
	"shield": {
		"M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z",
	},
	"heart": {
		"M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z",
	},
	"twitter": {
		"M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z",
	},
	"instagram": {
		"M2 7a5 5 0 0 1 5-5h10a5 5 0 0 1 5 5v10a5 5 0 0 1-5 5H7a5 5 0 0 1-5-5z",
		"M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z",
		"M17.5 6.5h.01",
	},
	"linkedin": {
		"M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z",
		"M2 9h4v12H2z",
		"M4 2a2 2 0 1 0 0 4 2 2 0 0 0 0-4z",
	},
}

// icon renders a decorative outline icon. Unknown names render nothing.
func icon(name string, classes ...string) *VNode {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}
	return Svg(
		Class("icon", "icon-"+name),
		Class(classes...),
		ViewBox("0 0 24 24"),
		Width(24), Height(24),
		Fill("none"),
		Stroke("currentColor"),
		AriaHidden(true),
		Range(paths, func(d string, _ int) *VNode {
			return Path(D(d))
		}),
	)
}

// filledIcon renders an icon filled with the current color.
func filledIcon(name string, classes ...string) *VNode {
	n := icon(name, classes...)
	if n != nil {
		n.Props["fill"] = "currentColor"
	}
	return n
}
