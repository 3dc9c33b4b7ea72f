package userinput

import (
	"github.com/0xalexb/userinput/config"
	"github.com/0xalexb/userinput/factory"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules      []fx.Option
	LogLevel     string
	LogFormat    string
	SettingsFile string
	Settings     *config.Settings
	Registry     *factory.Registry
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (the default) or "text" log records.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithSettingsFile loads settings from a YAML file. Relative paths inside
// the file are resolved against the file's directory.
func WithSettingsFile(path string) Option {
	return func(opts *Options) {
		opts.SettingsFile = path
	}
}

// WithSettings uses settings directly. It takes precedence over
// WithSettingsFile.
func WithSettings(settings config.Settings) Option {
	return func(opts *Options) {
		opts.Settings = &settings
	}
}

// WithFactory sets the registry validators and processors are created from.
// An empty registry is used when not set.
func WithFactory(registry *factory.Registry) Option {
	return func(opts *Options) {
		opts.Registry = registry
	}
}
