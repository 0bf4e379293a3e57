package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Key      string   // Stable identity among siblings
	Text     string   // For KindText and KindRaw
}

// Props holds element attributes.
type Props map[string]any

// Attr returns the attribute value as a string and whether it was set.
func (v *VNode) Attr(key string) (string, bool) {
	if v == nil || v.Props == nil {
		return "", false
	}
	value, ok := v.Props[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// HasClass reports whether the element's class list contains name.
func (v *VNode) HasClass(name string) bool {
	classes, ok := v.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
