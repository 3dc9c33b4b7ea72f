package element

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyDocument is returned when Parse receives no data.
var ErrEmptyDocument = errors.New("empty document")

// ErrNoRoot is returned when the document contains no element.
var ErrNoRoot = errors.New("document has no root element")

// Node is an XML element. The zero value is an unnamed element without
// attributes or children.
type Node struct {
	name     string
	attrs    []xml.Attr
	children []*Node
	content  string
	raw      []byte
}

// Parse decodes an XML document and returns its root element.
func Parse(data []byte) (*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		offset := decoder.InputOffset()

		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		}

		if err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}

		start, isStart := token.(xml.StartElement)
		if !isStart {
			continue
		}

		root, err := build(decoder, start, data, offset)
		if err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}

		return root, nil
	}
}

// UnmarshalXML implements xml.Unmarshaler so a Node can be the target of
// xml.Unmarshal. Nodes decoded this way carry no raw bytes.
func (n *Node) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	node, err := build(decoder, start, nil, 0)
	if err != nil {
		return err
	}

	*n = *node

	return nil
}

// build consumes tokens up to and including the end element matching start.
// When data is not nil, the raw bytes of every element are sliced from it.
func build(decoder *xml.Decoder, start xml.StartElement, data []byte, offset int64) (*Node, error) {
	node := &Node{
		name:  start.Name.Local,
		attrs: append([]xml.Attr(nil), start.Attr...),
	}

	var text strings.Builder

	for {
		childOffset := decoder.InputOffset()

		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("element <%s>: %w", node.name, err)
		}

		switch typed := token.(type) {
		case xml.StartElement:
			child, err := build(decoder, typed, data, childOffset)
			if err != nil {
				return nil, err
			}

			node.children = append(node.children, child)
		case xml.CharData:
			text.Write(typed)
		case xml.EndElement:
			node.content = strings.TrimSpace(text.String())

			if data != nil {
				node.raw = data[offset:decoder.InputOffset()]
			}

			return node, nil
		}
	}
}

// Name returns the local name of the element.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}

	return n.name
}

// Attribute returns the value of the named attribute.
func (n *Node) Attribute(name string) (string, bool) {
	if n == nil {
		return "", false
	}

	for _, attr := range n.attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}

	return "", false
}

// FirstChildNamed returns the first direct child with the given name, or nil.
//
//nolint:ireturn // Element is the tree abstraction readers are written against
func (n *Node) FirstChildNamed(name string) Element {
	if n == nil {
		return nil
	}

	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}

	return nil
}

// ChildrenNamed returns all direct children with the given name.
func (n *Node) ChildrenNamed(name string) []Element {
	result := make([]Element, 0)

	if n == nil {
		return result
	}

	for _, child := range n.children {
		if child.name == name {
			result = append(result, child)
		}
	}

	return result
}

// Content returns the trimmed character data directly inside the element.
func (n *Node) Content() string {
	if n == nil {
		return ""
	}

	return n.content
}

// Children returns every direct child in document order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}

	return append([]*Node(nil), n.children...)
}

// Raw returns the bytes of the element as they appeared in the parsed
// document, from its start tag to its end tag. Nodes not produced by Parse
// return nil.
func (n *Node) Raw() []byte {
	if n == nil {
		return nil
	}

	return n.raw
}
