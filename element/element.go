package element

// Element is a node of an attributed document tree.
//
// FirstChildNamed returns nil when no child matches. ChildrenNamed returns the
// matching children in document order and never nil.
type Element interface {
	Name() string
	Attribute(name string) (string, bool)
	FirstChildNamed(name string) Element
	ChildrenNamed(name string) []Element
	Content() string
}

// IsNil reports whether el is nil, including a typed nil *Node stored in the
// interface.
func IsNil(el Element) bool {
	if el == nil {
		return true
	}

	node, ok := el.(*Node)

	return ok && node == nil
}
