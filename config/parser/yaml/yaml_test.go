package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Locale    string            `yaml:"locale"`
	Spec      string            `yaml:"spec"`
	Messages  []string          `yaml:"messages"`
	Variables map[string]string `yaml:"variables"`
}

const nestedDocument = `
installer:
  name: demo
  userinput:
    locale: deu
    spec: userInputSpec.xml
    messages:
      - langpacks/deu.xml
      - langpacks/custom.yaml
    variables:
      INSTALL_PATH: /opt/demo
`

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	data := []byte(`
locale: eng
spec: userInputSpec.xml
`)

	var result settings

	err := NewParser().Parse(data, &result, "")

	require.NoError(t, err)
	assert.Equal(t, "eng", result.Locale)
	assert.Equal(t, "userInputSpec.xml", result.Spec)
}

func TestParser_Parse_NestedPath(t *testing.T) {
	t.Parallel()

	var result settings

	err := NewParser().Parse([]byte(nestedDocument), &result, "installer:userinput")

	require.NoError(t, err)
	assert.Equal(t, "deu", result.Locale)
	assert.Equal(t, []string{"langpacks/deu.xml", "langpacks/custom.yaml"}, result.Messages)
	assert.Equal(t, map[string]string{"INSTALL_PATH": "/opt/demo"}, result.Variables)
}

func TestParser_Parse_ScalarPath(t *testing.T) {
	t.Parallel()

	var locale string

	err := NewParser().Parse([]byte(nestedDocument), &locale, "installer:userinput:locale")

	require.NoError(t, err)
	assert.Equal(t, "deu", locale)
}

func TestParser_Parse_PathNotFound(t *testing.T) {
	t.Parallel()

	var result settings

	err := NewParser().Parse([]byte(nestedDocument), &result, "installer:missing")

	require.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "installer:missing")
}

func TestParser_Parse_NonMappingIntermediate(t *testing.T) {
	t.Parallel()

	var result settings

	err := NewParser().Parse([]byte(`installer: "just a string"`), &result, "installer:userinput")

	require.Error(t, err)
}

func TestParser_Parse_Strict(t *testing.T) {
	t.Parallel()

	data := []byte(`
spec: userInputSpec.xml
langpack: eng.xml
`)

	var lenient settings

	require.NoError(t, NewParser().Parse(data, &lenient, ""))
	assert.Equal(t, "userInputSpec.xml", lenient.Spec)

	var strict settings

	require.Error(t, NewParser(WithStrict()).Parse(data, &strict, ""))
}

func TestParser_Parse_StrictNestedPath(t *testing.T) {
	t.Parallel()

	var result settings

	err := NewParser(WithStrict()).Parse([]byte(nestedDocument), &result, "installer:userinput")

	require.NoError(t, err)
	assert.Equal(t, "userInputSpec.xml", result.Spec)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	var result settings

	for _, data := range [][]byte{nil, {}, []byte("  \n")} {
		err := NewParser().Parse(data, &result, "")
		require.ErrorIs(t, err, ErrEmptyData)
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	var result settings

	err := NewParser().Parse([]byte("spec: [unclosed\n"), &result, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal error")
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single key", input: "userinput", expected: "$.userinput"},
		{name: "two level path", input: "installer:userinput", expected: "$.installer.userinput"},
		{name: "three level path", input: "installer:userinput:locale", expected: "$.installer.userinput.locale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, convertToYAMLPath(tt.input))
		})
	}
}
