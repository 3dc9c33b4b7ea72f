package field

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/0xalexb/userinput/element"
	"github.com/0xalexb/userinput/factory"
)

const (
	idAttribute  = "id"
	txtAttribute = "txt"
)

// MessageSource looks up localized text by message id.
type MessageSource interface {
	Get(id string) (string, bool)
}

// Config is the document-access context shared by every reader of a parsing
// pass. It coerces attribute values, resolves text and gives access to the
// factory used to bind validators and processors.
type Config struct {
	messages  MessageSource
	factory   *factory.Registry
	variables Replacer
	logger    *slog.Logger
}

// ConfigOption configures a Config.
type ConfigOption func(*Config)

// WithMessages sets the message table used to resolve id attributes.
func WithMessages(source MessageSource) ConfigOption {
	return func(cfg *Config) {
		cfg.messages = source
	}
}

// WithFactory sets the registry used to create validators and processors.
func WithFactory(registry *factory.Registry) ConfigOption {
	return func(cfg *Config) {
		cfg.factory = registry
	}
}

// WithVariables sets the replacer applied by String and LookupString.
func WithVariables(replacer Replacer) ConfigOption {
	return func(cfg *Config) {
		cfg.variables = replacer
	}
}

// WithLogger sets the logger used to report invalid values.
func WithLogger(logger *slog.Logger) ConfigOption {
	return func(cfg *Config) {
		cfg.logger = logger
	}
}

// NewConfig returns a Config. Without options it has no messages, no
// variables, an empty factory and logs to slog.Default().
func NewConfig(opts ...ConfigOption) *Config {
	cfg := &Config{}

	for _, apply := range opts {
		apply(cfg)
	}

	if cfg.factory == nil {
		cfg.factory = factory.NewRegistry()
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// Factory returns the registry validators and processors are bound to.
func (c *Config) Factory() *factory.Registry {
	return c.factory
}

// Attribute returns a mandatory attribute. Absent and blank values fail with
// ErrMissingAttribute.
func (c *Config) Attribute(el element.Element, name string) (string, error) {
	if element.IsNil(el) {
		return "", fmt.Errorf("%w: %q on missing element", ErrMissingAttribute, name)
	}

	value, ok := el.Attribute(name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %q on <%s>", ErrMissingAttribute, name, el.Name())
	}

	return value, nil
}

// LookupRawString returns an attribute exactly as declared.
func (c *Config) LookupRawString(el element.Element, name string) (string, bool) {
	if element.IsNil(el) {
		return "", false
	}

	return el.Attribute(name)
}

// RawString returns an attribute exactly as declared, or def when absent.
func (c *Config) RawString(el element.Element, name, def string) string {
	if value, ok := c.LookupRawString(el, name); ok {
		return value
	}

	return def
}

// LookupString returns an attribute with variable references replaced.
func (c *Config) LookupString(el element.Element, name string) (string, bool) {
	value, ok := c.LookupRawString(el, name)
	if !ok {
		return "", false
	}

	if c.variables != nil {
		value = c.variables.Replace(value)
	}

	return value, true
}

// String returns an attribute with variable references replaced, or def when
// absent.
func (c *Config) String(el element.Element, name, def string) string {
	if value, ok := c.LookupString(el, name); ok {
		return value
	}

	return def
}

// Int returns an integer attribute, or def when it is absent or not an
// integer.
func (c *Config) Int(el element.Element, name string, def int) int {
	value, ok := c.LookupRawString(el, name)
	if !ok {
		return def
	}

	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		c.invalid(el, name, value, err)

		return def
	}

	return result
}

// Bool returns a boolean attribute, or def when it is absent or not a
// boolean. true/false, yes/no and 1/0 are accepted in any case.
func (c *Config) Bool(el element.Element, name string, def bool) bool {
	value, ok := c.LookupRawString(el, name)
	if !ok {
		return def
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1":
		return true
	case "false", "no", "0":
		return false
	default:
		c.invalid(el, name, value, nil)

		return def
	}
}

// Element returns the first child of parent with the given name. A missing
// child fails with ErrMissingElement.
//
//nolint:ireturn // the tree is only reachable through element.Element
func (c *Config) Element(parent element.Element, name string) (element.Element, error) {
	if element.IsNil(parent) {
		return nil, fmt.Errorf("%w: <%s> in missing parent", ErrMissingElement, name)
	}

	child := parent.FirstChildNamed(name)
	if element.IsNil(child) {
		return nil, fmt.Errorf("%w: <%s> in <%s>", ErrMissingElement, name, parent.Name())
	}

	return child, nil
}

// Text returns the text declared by el. The message for the id attribute
// takes precedence; the txt attribute is used when there is no id or the id
// is not in the message table.
func (c *Config) Text(el element.Element) (string, bool) {
	if element.IsNil(el) {
		return "", false
	}

	if id, ok := el.Attribute(idAttribute); ok && id != "" && c.messages != nil {
		if text, found := c.messages.Get(id); found {
			return text, true
		}

		c.logger.Debug("message not found",
			slog.String("element", el.Name()),
			slog.String("id", id),
		)
	}

	return el.Attribute(txtAttribute)
}

func (c *Config) invalid(el element.Element, name, value string, cause error) {
	err := fmt.Errorf("%w: %q for %q on <%s>", ErrInvalidValue, value, name, el.Name())
	if cause != nil {
		err = fmt.Errorf("%w: %w", err, cause)
	}

	c.logger.Warn("ignoring attribute value",
		slog.String("element", el.Name()),
		slog.String("attribute", name),
		slog.String("value", value),
		slog.Any("error", err),
	)
}
