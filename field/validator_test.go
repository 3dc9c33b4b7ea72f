package field_test

import (
	"regexp"
	"regexp/syntax"
	"testing"

	"github.com/0xalexb/userinput/factory"
	"github.com/0xalexb/userinput/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type regexValidator struct{}

func (regexValidator) Validate(values []string, params map[string]string) (bool, error) {
	pattern, err := regexp.Compile(params["pattern"])
	if err != nil {
		return false, err
	}

	for _, value := range values {
		if !pattern.MatchString(value) {
			return false, nil
		}
	}

	return true, nil
}

func newValidatorRegistry() *factory.Registry {
	registry := factory.NewRegistry()
	registry.Register("Regex", func() (any, error) { return regexValidator{}, nil })
	registry.Register("NotAValidator", func() (any, error) { return "plain string", nil })

	return registry
}

func TestValidatorReader_Validator(t *testing.T) {
	t.Parallel()

	el := parseElement(t, `<validator class="Regex" txt="Digits only"><param name="pattern" value="^[0-9]+$"/></validator>`)
	registry := newValidatorRegistry()

	validator, err := field.NewValidatorReader(el, quietConfig(field.WithFactory(registry))).Validator()
	require.NoError(t, err)

	assert.Equal(t, "Regex", validator.ClassName())
	assert.Equal(t, map[string]string{"pattern": "^[0-9]+$"}, validator.ParamMap())

	valid, err := validator.Validate("123", "456")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = validator.Validate("12a")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidatorReader_ParamWithoutValue(t *testing.T) {
	t.Parallel()

	el := parseElement(t, `<validator class="Regex"><param name="pattern"/></validator>`)

	params, err := field.NewValidatorReader(el, quietConfig()).Params()
	require.NoError(t, err)
	assert.Equal(t, []field.Param{{Name: "pattern", Value: ""}}, params)
}

func TestValidatorReader_ParamWithoutName(t *testing.T) {
	t.Parallel()

	el := parseElement(t, `<validator class="Regex"><param value="x"/></validator>`)

	_, err := field.NewValidatorReader(el, quietConfig()).Validator()
	require.ErrorIs(t, err, field.ErrMissingAttribute)
	assert.Contains(t, err.Error(), `validator "Regex"`)
}

func TestValidator_ParamMapLastDuplicateWins(t *testing.T) {
	t.Parallel()

	validator := field.NewValidator("Range", []field.Param{
		{Name: "min", Value: "1"},
		{Name: "min", Value: "2"},
	}, "", nil)

	assert.Equal(t, map[string]string{"min": "2"}, validator.ParamMap())
	assert.Len(t, validator.Params(), 2)
}

func TestValidator_ParamsAreCopied(t *testing.T) {
	t.Parallel()

	params := []field.Param{{Name: "min", Value: "1"}}
	validator := field.NewValidator("Range", params, "", nil)

	params[0].Value = "changed"
	validator.Params()[0].Value = "changed"

	assert.Equal(t, "1", validator.Params()[0].Value)
}

func TestValidator_CreateErrors(t *testing.T) {
	t.Parallel()

	registry := newValidatorRegistry()

	_, err := field.NewValidator("Unknown", nil, "", registry).Create()
	require.ErrorIs(t, err, factory.ErrUnknownClass)

	_, err = field.NewValidator("NotAValidator", nil, "", registry).Create()
	require.ErrorIs(t, err, field.ErrUnsupportedInstance)

	valid, err := field.NewValidator("NotAValidator", nil, "", registry).Validate("x")
	require.ErrorIs(t, err, field.ErrUnsupportedInstance)
	assert.False(t, valid)
}

func TestValidator_ValidateError(t *testing.T) {
	t.Parallel()

	validator := field.NewValidator("Regex", []field.Param{{Name: "pattern", Value: "("}}, "", newValidatorRegistry())

	_, err := validator.Validate("x")
	require.Error(t, err)

	var syntaxErr *syntax.Error
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, err.Error(), `validator "Regex"`)
}
