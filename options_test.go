package userinput_test

import (
	"testing"

	"github.com/0xalexb/userinput"
	"github.com/0xalexb/userinput/config"
	"github.com/0xalexb/userinput/factory"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		level    string
		expected string
	}{
		{name: "debug level", level: "debug", expected: "debug"},
		{name: "info level", level: "info", expected: "info"},
		{name: "warn level", level: "warn", expected: "warn"},
		{name: "error level", level: "error", expected: "error"},
		{name: "empty level", level: "", expected: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var opts userinput.Options

			userinput.WithLogLevel(testCase.level)(&opts)

			require.Equal(t, testCase.expected, opts.LogLevel)
		})
	}
}

func TestWithModules(t *testing.T) {
	t.Parallel()

	var opts userinput.Options

	userinput.WithModules(fx.Module("test1"))(&opts)
	require.Len(t, opts.Modules, 1)

	userinput.WithModules(fx.Module("test2"), fx.Module("test3"))(&opts)
	require.Len(t, opts.Modules, 3)
}

func TestWithSettings(t *testing.T) {
	t.Parallel()

	settings := config.Settings{Spec: "spec.xml", Variables: map[string]string{"A": "1"}}

	var opts userinput.Options

	userinput.WithSettings(settings)(&opts)
	settings.Spec = "changed.xml"

	require.NotNil(t, opts.Settings)
	require.Equal(t, "spec.xml", opts.Settings.Spec)
}

func TestWithSettingsFileAndFactory(t *testing.T) {
	t.Parallel()

	registry := factory.NewRegistry()

	var opts userinput.Options

	userinput.WithSettingsFile("testdata/settings.yaml")(&opts)
	userinput.WithFactory(registry)(&opts)
	userinput.WithLogFormat("text")(&opts)

	require.Equal(t, "testdata/settings.yaml", opts.SettingsFile)
	require.Same(t, registry, opts.Registry)
	require.Equal(t, "text", opts.LogFormat)
}
