package field

// Definition is a snapshot of everything a Reader exposes, suitable for
// serialisation.
type Definition struct {
	Type            string                `yaml:"type,omitempty"`
	Variable        string                `yaml:"variable,omitempty"`
	Text            string                `yaml:"text,omitempty"`
	Label           string                `yaml:"label,omitempty"`
	Description     string                `yaml:"description,omitempty"`
	Default         *string               `yaml:"default,omitempty"`
	Size            int                   `yaml:"size"`
	Revalidate      bool                  `yaml:"revalidate,omitempty"`
	Condition       string                `yaml:"condition,omitempty"`
	Packs           []string              `yaml:"packs,omitempty"`
	UnselectedPacks []string              `yaml:"unselectedPacks,omitempty"`
	OsModels        []OsModel             `yaml:"os,omitempty"`
	Validators      []ValidatorDefinition `yaml:"validators,omitempty"`
	Processor       *ProcessorDefinition  `yaml:"processor,omitempty"`
}

// ValidatorDefinition is the serialisable form of a Validator.
type ValidatorDefinition struct {
	Class   string  `yaml:"class"`
	Params  []Param `yaml:"params,omitempty"`
	Message string  `yaml:"message,omitempty"`
}

// ProcessorDefinition is the serialisable form of a Processor.
type ProcessorDefinition struct {
	Class          string `yaml:"class"`
	BackupVariable string `yaml:"backupVariable,omitempty"`
	ToVariable     string `yaml:"toVariable,omitempty"`
}

// Definition reads every accessor of r. The first failing accessor aborts
// the snapshot.
func (r *Reader) Definition() (Definition, error) {
	variable, err := r.Variable()
	if err != nil {
		return Definition{}, err
	}

	packs, err := r.Packs()
	if err != nil {
		return Definition{}, err
	}

	unselected, err := r.UnselectedPacks()
	if err != nil {
		return Definition{}, err
	}

	validators, err := r.Validators()
	if err != nil {
		return Definition{}, err
	}

	processor, err := r.Processor()
	if err != nil {
		return Definition{}, err
	}

	definition := Definition{
		Type:            r.Type(),
		Variable:        variable,
		Size:            r.Size(),
		Revalidate:      r.Revalidate(),
		Packs:           packs,
		UnselectedPacks: unselected,
		OsModels:        r.OsModels(),
	}

	definition.Text, _ = r.Text()
	definition.Label, _ = r.Label()
	definition.Description, _ = r.Description()
	definition.Condition, _ = r.Condition()

	if value, ok := r.DefaultValue(); ok {
		definition.Default = &value
	}

	for _, validator := range validators {
		message, _ := validator.Message()
		definition.Validators = append(definition.Validators, ValidatorDefinition{
			Class:   validator.ClassName(),
			Params:  validator.Params(),
			Message: message,
		})
	}

	if processor != nil {
		backup, _ := processor.BackupVariable()
		to, _ := processor.ToVariable()
		definition.Processor = &ProcessorDefinition{
			Class:          processor.ClassName(),
			BackupVariable: backup,
			ToVariable:     to,
		}
	}

	return definition, nil
}
