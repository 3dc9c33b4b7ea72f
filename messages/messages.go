package messages

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/userinput/element"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when Parse receives no data.
var ErrEmptyData = errors.New("empty data")

// ErrMissingID is returned when a langpack entry has no id attribute.
var ErrMissingID = errors.New("langpack entry without id")

const (
	entryElement = "str"
	idAttribute  = "id"
	txtAttribute = "txt"
)

// Messages maps message ids to localized text. It is safe for concurrent
// readers once built.
type Messages struct {
	entries map[string]string
}

// New returns a table holding a copy of entries.
func New(entries map[string]string) *Messages {
	messages := &Messages{entries: make(map[string]string, len(entries))}

	for id, text := range entries {
		messages.entries[id] = text
	}

	return messages
}

// Parse reads a langpack. Data starting with '<' is read as XML, anything
// else as a YAML mapping.
func Parse(data []byte) (*Messages, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyData
	}

	if trimmed[0] == '<' {
		return parseXML(trimmed)
	}

	return parseYAML(trimmed)
}

func parseXML(data []byte) (*Messages, error) {
	root, err := element.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("langpack: %w", err)
	}

	entries := root.ChildrenNamed(entryElement)
	messages := &Messages{entries: make(map[string]string, len(entries))}

	for index, entry := range entries {
		id, ok := entry.Attribute(idAttribute)
		if !ok || id == "" {
			return nil, fmt.Errorf("langpack: entry %d: %w", index, ErrMissingID)
		}

		text, _ := entry.Attribute(txtAttribute)
		messages.entries[id] = text
	}

	return messages, nil
}

func parseYAML(data []byte) (*Messages, error) {
	var entries map[string]string

	err := yaml.Unmarshal(data, &entries)
	if err != nil {
		return nil, fmt.Errorf("langpack: unmarshal error: %w", err)
	}

	return New(entries), nil
}

// Get returns the text for id.
func (m *Messages) Get(id string) (string, bool) {
	if m == nil {
		return "", false
	}

	text, ok := m.entries[id]

	return text, ok
}

// Len returns the number of entries.
func (m *Messages) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Merge returns a new table with the entries of m overridden by other.
func (m *Messages) Merge(other *Messages) *Messages {
	merged := New(nil)

	if m != nil {
		for id, text := range m.entries {
			merged.entries[id] = text
		}
	}

	if other != nil {
		for id, text := range other.entries {
			merged.entries[id] = text
		}
	}

	return merged
}
