package field

import (
	"fmt"

	"github.com/0xalexb/userinput/element"
)

const (
	typeAttribute       = "type"
	variableAttribute   = "variable"
	setAttribute        = "set"
	sizeAttribute       = "size"
	revalidateAttribute = "revalidate"
	conditionAttribute  = "conditionid"

	specElement        = "spec"
	validatorElement   = "validator"
	processorElement   = "processor"
	descriptionElement = "description"
)

// noSize is returned by Size when no valid size is declared.
const noSize = -1

// Reader exposes the configuration of a single field element.
type Reader struct {
	ElementReader

	field  element.Element
	spec   element.Element
	policy Policy
}

// NewReader returns a reader over field. The spec child is looked up once;
// when policy requires it and it is absent, NewReader fails with
// ErrMissingElement.
func NewReader(field element.Element, cfg *Config, policy Policy) (*Reader, error) {
	if element.IsNil(field) {
		return nil, fmt.Errorf("%w: field", ErrMissingElement)
	}

	reader := &Reader{
		ElementReader: NewElementReader(cfg),
		field:         field,
		policy:        policy,
	}

	spec, err := reader.lookupSpec()
	if err != nil {
		return nil, err
	}

	reader.spec = spec

	return reader, nil
}

//nolint:ireturn // the tree is only reachable through element.Element
func (r *Reader) lookupSpec() (element.Element, error) {
	if r.policy.Spec == Mandatory {
		return r.config.Element(r.field, specElement)
	}

	spec := r.field.FirstChildNamed(specElement)
	if element.IsNil(spec) {
		return nil, nil
	}

	return spec, nil
}

// Field returns the field element.
//
//nolint:ireturn // the tree is only reachable through element.Element
func (r *Reader) Field() element.Element {
	return r.field
}

// Spec returns the spec element, or nil when the field has none.
//
//nolint:ireturn // the tree is only reachable through element.Element
func (r *Reader) Spec() element.Element {
	return r.spec
}

// Policy returns the policy the reader was built with.
func (r *Reader) Policy() Policy {
	return r.policy
}

// Type returns the type attribute of the field.
func (r *Reader) Type() string {
	return r.config.RawString(r.field, typeAttribute, "")
}

// Variable returns the variable the field reads and updates. When the
// policy makes the variable optional, an absent variable reads as "".
func (r *Reader) Variable() (string, error) {
	if r.policy.Variable == Mandatory {
		return r.config.Attribute(r.field, variableAttribute)
	}

	return r.config.RawString(r.field, variableAttribute, ""), nil
}

// Packs returns the packs the field applies to.
func (r *Reader) Packs() ([]string, error) {
	return r.ReadPacks(r.field)
}

// UnselectedPacks returns the packs whose deselection enables the field.
func (r *Reader) UnselectedPacks() ([]string, error) {
	return r.ReadUnselectedPacks(r.field)
}

// OsModels returns the operating systems the field applies to. An empty
// result means all of them.
func (r *Reader) OsModels() []OsModel {
	return r.ReadOsModels(r.field)
}

// DefaultValue returns the set attribute of the spec. Variable references
// are not replaced.
func (r *Reader) DefaultValue() (string, bool) {
	return r.config.LookupRawString(r.spec, setAttribute)
}

// Size returns the size attribute of the spec, or -1 when there is no spec
// or the size is absent or invalid.
func (r *Reader) Size() int {
	return r.config.Int(r.spec, sizeAttribute, noSize)
}

// Validators returns the validators of the field in document order. The
// result is never nil.
func (r *Reader) Validators() ([]*Validator, error) {
	elements := r.field.ChildrenNamed(validatorElement)
	result := make([]*Validator, 0, len(elements))

	for index, el := range elements {
		validator, err := NewValidatorReader(el, r.config).Validator()
		if err != nil {
			return nil, fmt.Errorf("<%s> %d: %w", validatorElement, index, err)
		}

		result = append(result, validator)
	}

	return result, nil
}

// Processor returns the processor declared in the spec, or nil when there
// is none.
func (r *Reader) Processor() (*Processor, error) {
	if element.IsNil(r.spec) {
		return nil, nil
	}

	el := r.spec.FirstChildNamed(processorElement)
	if element.IsNil(el) {
		return nil, nil
	}

	return NewProcessor(el, r.config)
}

// Description returns the text of the description child.
func (r *Reader) Description() (string, bool) {
	return r.config.Text(r.field.FirstChildNamed(descriptionElement))
}

// Label returns the text of the spec.
func (r *Reader) Label() (string, bool) {
	return r.config.Text(r.spec)
}

// Text returns the text declared on the field element itself, as used by
// static text and title fields.
func (r *Reader) Text() (string, bool) {
	return r.config.Text(r.field)
}

// Revalidate reports whether updates of the field trigger revalidation of
// the panel.
func (r *Reader) Revalidate() bool {
	return r.config.Bool(r.spec, revalidateAttribute, false)
}

// Condition returns the id of the condition that decides whether the field
// is displayed.
func (r *Reader) Condition() (string, bool) {
	return r.config.LookupString(r.field, conditionAttribute)
}
