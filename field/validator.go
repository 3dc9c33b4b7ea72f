package field

import (
	"fmt"

	"github.com/0xalexb/userinput/element"
	"github.com/0xalexb/userinput/factory"
)

const (
	classAttribute = "class"
	paramElement   = "param"
	valueAttribute = "value"
)

// ValueValidator is implemented by the instances a Validator creates through
// the factory.
type ValueValidator interface {
	Validate(values []string, params map[string]string) (bool, error)
}

// Param is a named validator parameter.
type Param struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Validator is a check declared on a field: a class identifier, its ordered
// parameters and an optional message, bound to the factory that creates it.
type Validator struct {
	className  string
	params     []Param
	message    string
	hasMessage bool
	factory    *factory.Registry
}

// NewValidator returns a Validator. An empty message means none.
func NewValidator(className string, params []Param, message string, registry *factory.Registry) *Validator {
	return &Validator{
		className:  className,
		params:     append([]Param(nil), params...),
		message:    message,
		hasMessage: message != "",
		factory:    registry,
	}
}

// ClassName returns the class identifier.
func (v *Validator) ClassName() string {
	return v.className
}

// Params returns the parameters in declaration order.
func (v *Validator) Params() []Param {
	return append([]Param(nil), v.params...)
}

// ParamMap returns the parameters by name. Later duplicates win.
func (v *Validator) ParamMap() map[string]string {
	result := make(map[string]string, len(v.params))

	for _, param := range v.params {
		result[param.Name] = param.Value
	}

	return result
}

// Message returns the message shown when validation fails.
func (v *Validator) Message() (string, bool) {
	return v.message, v.hasMessage
}

// Create builds the validator instance through the factory.
//
//nolint:ireturn // instances are only known by their interface
func (v *Validator) Create() (ValueValidator, error) {
	instance, err := v.factory.Create(v.className)
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}

	validator, ok := instance.(ValueValidator)
	if !ok {
		return nil, fmt.Errorf("validator %q: %w: %T", v.className, ErrUnsupportedInstance, instance)
	}

	return validator, nil
}

// Validate creates the validator instance and runs it over values. It is a
// convenience for callers that execute validation; reading a field never
// calls it.
func (v *Validator) Validate(values ...string) (bool, error) {
	validator, err := v.Create()
	if err != nil {
		return false, err
	}

	valid, err := validator.Validate(values, v.ParamMap())
	if err != nil {
		return false, fmt.Errorf("validator %q: %w", v.className, err)
	}

	return valid, nil
}

// ValidatorReader reads a validator element.
type ValidatorReader struct {
	ElementReader

	validator element.Element
}

// NewValidatorReader returns a reader over a validator element.
func NewValidatorReader(validator element.Element, cfg *Config) *ValidatorReader {
	return &ValidatorReader{
		ElementReader: NewElementReader(cfg),
		validator:     validator,
	}
}

// ClassName returns the mandatory class attribute.
func (r *ValidatorReader) ClassName() (string, error) {
	return r.config.Attribute(r.validator, classAttribute)
}

// Params returns the param children in document order. Each param needs a
// name; a missing value reads as empty.
func (r *ValidatorReader) Params() ([]Param, error) {
	result := make([]Param, 0)

	if element.IsNil(r.validator) {
		return result, nil
	}

	for index, param := range r.validator.ChildrenNamed(paramElement) {
		name, err := r.config.Attribute(param, nameAttribute)
		if err != nil {
			return nil, fmt.Errorf("<%s> %d: %w", paramElement, index, err)
		}

		result = append(result, Param{
			Name:  name,
			Value: r.config.RawString(param, valueAttribute, ""),
		})
	}

	return result, nil
}

// Message returns the text of the validator element.
func (r *ValidatorReader) Message() (string, bool) {
	return r.config.Text(r.validator)
}

// Validator reads the element into a Validator bound to the config's factory.
func (r *ValidatorReader) Validator() (*Validator, error) {
	className, err := r.ClassName()
	if err != nil {
		return nil, err
	}

	params, err := r.Params()
	if err != nil {
		return nil, fmt.Errorf("validator %q: %w", className, err)
	}

	message, _ := r.Message()

	return NewValidator(className, params, message, r.config.Factory()), nil
}
