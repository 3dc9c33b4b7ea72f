package panel

import (
	"fmt"

	"github.com/0xalexb/userinput/element"
	"github.com/0xalexb/userinput/field"
)

const (
	panelElement  = "panel"
	fieldElement  = "field"
	idAttribute   = "id"
	typeAttribute = "type"
)

// Panel is a user input panel and the definitions of its fields in document
// order.
type Panel struct {
	ID     string             `yaml:"id"`
	Fields []field.Definition `yaml:"fields"`
}

// decorativeTypes lists the field types that neither bind a variable nor
// need a spec.
//
//nolint:gochecknoglobals // read-only lookup table
var decorativeTypes = map[string]struct{}{
	"divider":    {},
	"space":      {},
	"staticText": {},
	"title":      {},
}

// PolicyFor returns the policy used to read fields of the given type.
func PolicyFor(fieldType string) field.Policy {
	if _, ok := decorativeTypes[fieldType]; ok {
		return field.OptionalPolicy()
	}

	return field.Policy{}
}

// Read reads every panel of a user input document.
func Read(root element.Element, cfg *field.Config) ([]Panel, error) {
	if element.IsNil(root) {
		return nil, fmt.Errorf("%w: document root", field.ErrMissingElement)
	}

	elements := root.ChildrenNamed(panelElement)
	panels := make([]Panel, 0, len(elements))

	for _, el := range elements {
		panel, err := ReadPanel(el, cfg)
		if err != nil {
			return nil, err
		}

		panels = append(panels, panel)
	}

	return panels, nil
}

// Find reads the panel with the given id. The boolean is false when the
// document has no such panel. Like Read, a nil root fails with
// field.ErrMissingElement.
func Find(root element.Element, id string, cfg *field.Config) (Panel, bool, error) {
	if element.IsNil(root) {
		return Panel{}, false, fmt.Errorf("%w: document root", field.ErrMissingElement)
	}

	for _, el := range root.ChildrenNamed(panelElement) {
		if candidate, _ := el.Attribute(idAttribute); candidate != id {
			continue
		}

		panel, err := ReadPanel(el, cfg)
		if err != nil {
			return Panel{}, true, err
		}

		return panel, true, nil
	}

	return Panel{}, false, nil
}

// ReadPanel reads a single panel element. The id attribute is mandatory.
func ReadPanel(el element.Element, cfg *field.Config) (Panel, error) {
	reader := field.NewElementReader(cfg)

	id, err := reader.Config().Attribute(el, idAttribute)
	if err != nil {
		return Panel{}, fmt.Errorf("panel: %w", err)
	}

	fields := el.ChildrenNamed(fieldElement)
	panel := Panel{ID: id, Fields: make([]field.Definition, 0, len(fields))}

	for index, fieldEl := range fields {
		fieldType, _ := fieldEl.Attribute(typeAttribute)

		fieldReader, err := field.NewReader(fieldEl, reader.Config(), PolicyFor(fieldType))
		if err != nil {
			return Panel{}, fmt.Errorf("panel %q: field %d: %w", id, index, err)
		}

		definition, err := fieldReader.Definition()
		if err != nil {
			return Panel{}, fmt.Errorf("panel %q: field %d: %w", id, index, err)
		}

		panel.Fields = append(panel.Fields, definition)
	}

	return panel, nil
}
