package field

import (
	"fmt"

	"github.com/0xalexb/userinput/element"
	"github.com/0xalexb/userinput/factory"
)

const (
	backupVariableAttribute = "backupVariable"
	toVariableAttribute     = "toVariable"
)

// ValueProcessor is implemented by the instances a Processor creates through
// the factory.
type ValueProcessor interface {
	Process(values []string) (string, error)
}

// Processor transforms the values entered in a field before they are
// assigned to the field variable.
type Processor struct {
	className      string
	backupVariable string
	toVariable     string
	factory        *factory.Registry
}

// NewProcessor reads a processor element. The class attribute is mandatory.
func NewProcessor(processor element.Element, cfg *Config) (*Processor, error) {
	reader := NewElementReader(cfg)

	className, err := reader.config.Attribute(processor, classAttribute)
	if err != nil {
		return nil, fmt.Errorf("processor: %w", err)
	}

	return &Processor{
		className:      className,
		backupVariable: reader.config.RawString(processor, backupVariableAttribute, ""),
		toVariable:     reader.config.RawString(processor, toVariableAttribute, ""),
		factory:        reader.config.Factory(),
	}, nil
}

// ClassName returns the class identifier.
func (p *Processor) ClassName() string {
	return p.className
}

// BackupVariable returns the variable that keeps the unprocessed value.
func (p *Processor) BackupVariable() (string, bool) {
	return p.backupVariable, p.backupVariable != ""
}

// ToVariable returns the variable that receives the processed value instead
// of the field variable.
func (p *Processor) ToVariable() (string, bool) {
	return p.toVariable, p.toVariable != ""
}

// Create builds the processor instance through the factory.
//
//nolint:ireturn // instances are only known by their interface
func (p *Processor) Create() (ValueProcessor, error) {
	instance, err := p.factory.Create(p.className)
	if err != nil {
		return nil, fmt.Errorf("processor: %w", err)
	}

	processor, ok := instance.(ValueProcessor)
	if !ok {
		return nil, fmt.Errorf("processor %q: %w: %T", p.className, ErrUnsupportedInstance, instance)
	}

	return processor, nil
}

// Process creates the processor instance and runs it over values. It is a
// convenience for callers that apply processors; reading a field never
// calls it.
func (p *Processor) Process(values ...string) (string, error) {
	processor, err := p.Create()
	if err != nil {
		return "", err
	}

	result, err := processor.Process(values)
	if err != nil {
		return "", fmt.Errorf("processor %q: %w", p.className, err)
	}

	return result, nil
}
