package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/userinput/element"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when no element matches the path.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for XML data.
type Parser struct{}

// NewParser creates an XML parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the element selected by path into target.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := xml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	root, err := element.Parse(data)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	selected, err := navigate(root, path)
	if err != nil {
		return err
	}

	err = xml.Unmarshal(selected.Raw(), target)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

func navigate(root *element.Node, path string) (*element.Node, error) {
	current := root

	for _, name := range strings.Split(path, ":") {
		child, ok := current.FirstChildNamed(name).(*element.Node)
		if !ok || child == nil {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		current = child
	}

	return current, nil
}
