package panel_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/0xalexb/userinput/element"
	"github.com/0xalexb/userinput/field"
	"github.com/0xalexb/userinput/logging"
	"github.com/0xalexb/userinput/messages"
	"github.com/0xalexb/userinput/panel"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDocument(t *testing.T) (*element.Node, *field.Config) {
	t.Helper()

	data, err := os.ReadFile("testdata/userInputSpec.xml")
	require.NoError(t, err)

	root, err := element.Parse(data)
	require.NoError(t, err)

	langpack, err := os.ReadFile("testdata/eng.xml")
	require.NoError(t, err)

	table, err := messages.Parse(langpack)
	require.NoError(t, err)

	cfg := field.NewConfig(
		field.WithMessages(table),
		field.WithLogger(logging.NewLogger(logging.LoggerConfig{Level: "error"}, &bytes.Buffer{})),
	)

	return root, cfg
}

func stringPtr(value string) *string {
	return &value
}

func TestRead(t *testing.T) {
	t.Parallel()

	root, cfg := loadDocument(t)

	panels, err := panel.Read(root, cfg)
	require.NoError(t, err)

	expected := []panel.Panel{
		{
			ID: "database",
			Fields: []field.Definition{
				{Type: "title", Text: "Database configuration", Size: -1},
				{Type: "staticText", Text: "Connection settings for ${APP_NAME}.", Size: -1},
				{Type: "divider", Size: -1},
				{
					Type:        "text",
					Variable:    "db.host",
					Label:       "Database host:",
					Description: "Name or address of the database server",
					Default:     stringPtr("localhost"),
					Size:        20,
					Condition:   "useDatabase",
					Packs:       []string{"Database"},
					Validators: []field.ValidatorDefinition{
						{Class: "NotEmpty", Message: "The database host is required"},
					},
				},
				{
					Type:       "text",
					Variable:   "db.port",
					Label:      "Port:",
					Default:    stringPtr("5432"),
					Size:       5,
					Revalidate: true,
					Validators: []field.ValidatorDefinition{
						{Class: "Range", Message: "Port out of range", Params: []field.Param{
							{Name: "min", Value: "1"},
							{Name: "max", Value: "65535"},
						}},
					},
				},
				{Type: "space", Size: -1},
			},
		},
		{
			ID: "paths",
			Fields: []field.Definition{
				{
					Type:      "dir",
					Variable:  "data.dir",
					Label:     "Data directory:",
					Default:   stringPtr("${INSTALL_PATH}/data"),
					Size:      40,
					OsModels:  []field.OsModel{{Family: "unix"}},
					Processor: &field.ProcessorDefinition{Class: "Normalize", BackupVariable: "data.dir.raw"},
				},
			},
		},
	}

	if diff := cmp.Diff(expected, panels, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("panels mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	root, cfg := loadDocument(t)

	found, ok, err := panel.Find(root, "paths", cfg)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "paths", found.ID)
	assert.Len(t, found.Fields, 1)

	_, ok, err = panel.Find(root, "missing", cfg)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = panel.Find(nil, "paths", cfg)
	require.ErrorIs(t, err, field.ErrMissingElement)
	assert.False(t, ok)
}

func TestPolicyFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		fieldType string
		expected  field.Policy
	}{
		{fieldType: "text", expected: field.Policy{}},
		{fieldType: "combo", expected: field.Policy{}},
		{fieldType: "", expected: field.Policy{}},
		{fieldType: "title", expected: field.OptionalPolicy()},
		{fieldType: "staticText", expected: field.OptionalPolicy()},
		{fieldType: "divider", expected: field.OptionalPolicy()},
		{fieldType: "space", expected: field.OptionalPolicy()},
	}

	for _, testCase := range testCases {
		t.Run(testCase.fieldType, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, panel.PolicyFor(testCase.fieldType))
		})
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		document string
		sentinel error
		contains string
	}{
		{
			name:     "panel without id",
			document: `<userInput><panel/></userInput>`,
			sentinel: field.ErrMissingAttribute,
			contains: "panel:",
		},
		{
			name:     "input field without spec",
			document: `<userInput><panel id="p"><field type="title"/><field type="text" variable="a"/></panel></userInput>`,
			sentinel: field.ErrMissingElement,
			contains: `panel "p": field 1`,
		},
		{
			name:     "input field without variable",
			document: `<userInput><panel id="p"><field type="check"><spec/></field></panel></userInput>`,
			sentinel: field.ErrMissingAttribute,
			contains: `panel "p": field 0`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			root, err := element.Parse([]byte(testCase.document))
			require.NoError(t, err)

			_, err = panel.Read(root, field.NewConfig())
			require.ErrorIs(t, err, testCase.sentinel)
			assert.Contains(t, err.Error(), testCase.contains)
		})
	}
}

func TestReadAndFind_NilRoot(t *testing.T) {
	t.Parallel()

	_, err := panel.Read(nil, field.NewConfig())
	require.ErrorIs(t, err, field.ErrMissingElement)

	_, found, err := panel.Find(nil, "database", field.NewConfig())
	require.ErrorIs(t, err, field.ErrMissingElement)
	assert.False(t, found)
}

func TestRead_NoPanels(t *testing.T) {
	t.Parallel()

	root, err := element.Parse([]byte(`<userInput/>`))
	require.NoError(t, err)

	panels, err := panel.Read(root, field.NewConfig())
	require.NoError(t, err)
	assert.NotNil(t, panels)
	assert.Empty(t, panels)
}
