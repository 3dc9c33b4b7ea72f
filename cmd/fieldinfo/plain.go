package main

import (
	"html"
	"strings"
	"sync"

	"github.com/0xalexb/userinput/field"
	"github.com/0xalexb/userinput/panel"

	"github.com/microcosm-cc/bluemonday"
)

//nolint:gochecknoglobals // policy is built once and shared
var (
	plainPolicy     *bluemonday.Policy
	plainPolicyOnce sync.Once
)

func stripPolicy() *bluemonday.Policy {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})

	return plainPolicy
}

// plainText removes every tag from text. Entities escaped by the policy are
// turned back into characters since the output is not HTML.
func plainText(text string) string {
	if text == "" || !strings.ContainsAny(text, "<&") {
		return text
	}

	return strings.TrimSpace(html.UnescapeString(stripPolicy().Sanitize(text)))
}

func plainPanels(panels []panel.Panel) []panel.Panel {
	result := make([]panel.Panel, len(panels))

	for index, current := range panels {
		fields := make([]field.Definition, len(current.Fields))

		for fieldIndex, definition := range current.Fields {
			definition.Text = plainText(definition.Text)
			definition.Label = plainText(definition.Label)
			definition.Description = plainText(definition.Description)

			if len(definition.Validators) > 0 {
				validators := make([]field.ValidatorDefinition, len(definition.Validators))

				for validatorIndex, validator := range definition.Validators {
					validator.Message = plainText(validator.Message)
					validators[validatorIndex] = validator
				}

				definition.Validators = validators
			}

			fields[fieldIndex] = definition
		}

		result[index] = panel.Panel{ID: current.ID, Fields: fields}
	}

	return result
}
