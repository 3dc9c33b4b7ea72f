// fieldinfo prints the field definitions of an installer user input
// document as YAML.
//
// The document is named either by a settings file (--settings), which also
// lists langpacks and variables, or directly with --spec and any number of
// --messages langpacks.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/userinput"
	"github.com/0xalexb/userinput/config"
	"github.com/0xalexb/userinput/element"
	"github.com/0xalexb/userinput/field"
	"github.com/0xalexb/userinput/panel"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

var (
	errNoSource       = errors.New("one of --settings or --spec is required")
	errTwoSources     = errors.New("--settings and --spec are mutually exclusive")
	errUnexpectedArg  = errors.New("unexpected argument")
	errPanelNotFound  = errors.New("panel not found")
	errMessagesNoSpec = errors.New("--messages requires --spec")
)

type flags struct {
	settings  string
	spec      string
	messages  []string
	locale    string
	panel     string
	plain     bool
	logLevel  string
	logFormat string
	version   bool
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts flags

	flagSet := pflag.NewFlagSet("fieldinfo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.settings, "settings", "", "settings YAML naming the user input document, langpacks and variables")
	flagSet.StringVar(&opts.spec, "spec", "", "user input XML document")
	flagSet.StringArrayVar(&opts.messages, "messages", nil,
		"langpack used with --spec (repeatable, {locale} is replaced by --locale)")
	flagSet.StringVar(&opts.locale, "locale", config.DefaultLocale,
		"ISO 639-2 locale used with --spec; without --messages langpacks/<locale>.xml next to the document is read")
	flagSet.StringVar(&opts.panel, "panel", "", "only print the panel with this id")
	flagSet.BoolVar(&opts.plain, "plain", false, "strip markup from labels, descriptions and messages")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flagSet.StringVar(&opts.logFormat, "log-format", "text", "log format: json or text")
	flagSet.BoolVar(&opts.version, "version", false, "print the version and exit")

	err := flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return fmt.Errorf("parsing flags: %w", err)
	}

	if opts.version {
		fmt.Fprintf(stdout, "fieldinfo %s (%s)\n", userinput.Version, userinput.CompiledAt)

		return nil
	}

	if flagSet.NArg() > 0 {
		return fmt.Errorf("%w: %s", errUnexpectedArg, flagSet.Arg(0))
	}

	panels, err := readPanels(opts)
	if err != nil {
		return err
	}

	if opts.plain {
		panels = plainPanels(panels)
	}

	out, err := yaml.Marshal(panels)
	if err != nil {
		return fmt.Errorf("encoding panels: %w", err)
	}

	_, err = stdout.Write(out)
	if err != nil {
		return fmt.Errorf("writing panels: %w", err)
	}

	return nil
}

func readPanels(opts flags) ([]panel.Panel, error) {
	options := []userinput.Option{
		userinput.WithLogLevel(opts.logLevel),
		userinput.WithLogFormat(opts.logFormat),
	}

	switch {
	case opts.settings != "" && opts.spec != "":
		return nil, errTwoSources
	case opts.settings != "":
		if len(opts.messages) > 0 {
			return nil, errMessagesNoSpec
		}

		options = append(options, userinput.WithSettingsFile(opts.settings))
	case opts.spec != "":
		options = append(options, userinput.WithSettings(config.Settings{
			Locale:    opts.locale,
			Spec:      opts.spec,
			Messages:  opts.messages,
			Variables: nil,
		}))
	default:
		return nil, errNoSource
	}

	var (
		document *element.Node
		cfg      *field.Config
	)

	app := userinput.NewApp(append(options, userinput.WithModules(fx.Populate(&document, &cfg)))...)

	err := app.Start()
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped by App.Start
	}

	err = app.Stop()
	if err != nil {
		return nil, err //nolint:wrapcheck // already wrapped by App.Stop
	}

	if opts.panel == "" {
		panels, readErr := panel.Read(document, cfg)
		if readErr != nil {
			return nil, fmt.Errorf("reading panels: %w", readErr)
		}

		return panels, nil
	}

	found, ok, err := panel.Find(document, opts.panel, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading panel %q: %w", opts.panel, err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: %q", errPanelNotFound, opts.panel)
	}

	return []panel.Panel{found}, nil
}
