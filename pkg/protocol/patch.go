package protocol

// PatchOp is a DOM patch operation.
type PatchOp string

const (
	OpReplace PatchOp = "replace" // Replace the target's outer HTML
	OpClass   PatchOp = "class"   // Add (On) or remove a class
	OpAttr    PatchOp = "attr"    // Set an attribute
)

// Patch is one DOM update addressed by element id.
type Patch struct {
	Op     PatchOp `json:"op"`
	Target string  `json:"target"`
	HTML   string  `json:"html,omitempty"`
	Class  string  `json:"class,omitempty"`
	On     bool    `json:"on,omitempty"`
	Name   string  `json:"name,omitempty"`
	Value  string  `json:"value,omitempty"`
}

// Replace swaps the target element for html.
func Replace(target, html string) Patch {
	return Patch{Op: OpReplace, Target: target, HTML: html}
}

// SetClass adds class to the target when on is true, removes it otherwise.
func SetClass(target, class string, on bool) Patch {
	return Patch{Op: OpClass, Target: target, Class: class, On: on}
}

// SetAttr sets attribute name on the target.
func SetAttr(target, name, value string) Patch {
	return Patch{Op: OpAttr, Target: target, Name: name, Value: value}
}

// PatchBatch is the payload of a patches frame.
type PatchBatch struct {
	Patches []Patch `json:"patches"`
}
