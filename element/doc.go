// Package element provides the attributed document tree consumed by the field
// readers.
//
// The tree is exposed through the Element interface so readers never depend on
// a concrete document format. Node is the XML-backed implementation returned
// by Parse; it keeps the raw bytes of every element so that a sub-tree can be
// handed to encoding/xml again (see config/parser/xml).
//
// Usage:
//
//	root, err := element.Parse(data)
//	if err != nil {
//	    // Handle error: empty document, malformed XML, etc.
//	}
//	for _, field := range root.FirstChildNamed("panel").ChildrenNamed("field") {
//	    // ...
//	}
package element
