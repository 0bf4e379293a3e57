package vdom

import "strings"

// Walk visits node and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// Find returns the first element matching match, or nil.
func Find(node *VNode, match func(*VNode) bool) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element matching match in document order.
func FindAll(node *VNode, match func(*VNode) bool) []*VNode {
	var found []*VNode
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindElement && match(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// ByID matches elements whose id equals id.
func ByID(id string) func(*VNode) bool {
	return func(n *VNode) bool {
		v, ok := n.Attr("id")
		return ok && v == id
	}
}

// ByAttr matches elements whose attribute key equals value.
// An empty value matches any element carrying the attribute.
func ByAttr(key, value string) func(*VNode) bool {
	return func(n *VNode) bool {
		v, ok := n.Attr(key)
		if !ok {
			return false
		}
		return value == "" || v == value
	}
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*VNode) bool {
	return func(n *VNode) bool {
		return n.Tag == tag
	}
}

// TextContent concatenates the text of node and its descendants.
func TextContent(node *VNode) string {
	var b strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}
