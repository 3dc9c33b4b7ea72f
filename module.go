package userinput

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/0xalexb/userinput/config"
	filefetcher "github.com/0xalexb/userinput/config/fetcher/file"
	xmlparser "github.com/0xalexb/userinput/config/parser/xml"
	yamlparser "github.com/0xalexb/userinput/config/parser/yaml"
	"github.com/0xalexb/userinput/element"
	"github.com/0xalexb/userinput/factory"
	"github.com/0xalexb/userinput/field"
	"github.com/0xalexb/userinput/messages"
	"github.com/0xalexb/userinput/panel"

	"go.uber.org/fx"
)

func readerModule(options *Options) fx.Option {
	registry := options.Registry
	if registry == nil {
		registry = factory.NewRegistry()
	}

	return fx.Module("userinput",
		fx.Supply(registry),
		fx.Provide(
			func() (*config.Settings, error) {
				return loadSettings(options)
			},
			provideMessages,
			provideDocument,
			provideFieldConfig,
			providePanels,
		),
	)
}

func loadSettings(options *Options) (*config.Settings, error) {
	if options.Settings != nil {
		settings := options.Settings.Resolve("")
		settings.SetDefaults()

		err := settings.Validate()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrValidate, err)
		}

		return &settings, nil
	}

	fetcher, err := filefetcher.NewFetcher(options.SettingsFile)()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrFetch, err)
	}

	settings, err := config.Provider(new(config.Settings), "")(yamlparser.NewParser(yamlparser.WithStrict()), fetcher)
	if err != nil {
		return nil, fmt.Errorf("settings %q: %w", fetcher.Path(), err)
	}

	resolved := settings.Resolve(filepath.Dir(fetcher.Path()))

	return &resolved, nil
}

func provideMessages(settings *config.Settings, logger *slog.Logger) (*messages.Messages, error) {
	table := messages.New(nil)
	files, conventional := settings.MessageFiles()

	for _, path := range files {
		fetcher, err := filefetcher.NewFetcher(path)()
		if conventional && errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no langpack for locale",
				slog.String("path", path),
				slog.String("locale", settings.Locale),
			)

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("messages: %w", err)
		}

		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("messages: %w", err)
		}

		langpack, err := messages.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("messages %q: %w", fetcher.Path(), err)
		}

		logger.Debug("langpack loaded",
			slog.String("path", fetcher.Path()),
			slog.String("locale", settings.Locale),
			slog.Int("entries", langpack.Len()),
		)

		table = table.Merge(langpack)
	}

	return table, nil
}

func provideDocument(settings *config.Settings) (*element.Node, error) {
	fetcher, err := filefetcher.NewFetcher(settings.Spec)()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrFetch, err)
	}

	document, err := config.Provider(new(element.Node), "")(xmlparser.NewParser(), fetcher)
	if err != nil {
		return nil, fmt.Errorf("spec %q: %w", fetcher.Path(), err)
	}

	return document, nil
}

func provideFieldConfig(
	table *messages.Messages,
	registry *factory.Registry,
	settings *config.Settings,
	logger *slog.Logger,
) *field.Config {
	return field.NewConfig(
		field.WithMessages(table),
		field.WithFactory(registry),
		field.WithVariables(field.Variables(settings.Variables)),
		field.WithLogger(logger),
	)
}

func providePanels(document *element.Node, cfg *field.Config, logger *slog.Logger) ([]panel.Panel, error) {
	panels, err := panel.Read(document, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading panels: %w", err)
	}

	logger.Debug("panels read", slog.Int("panels", len(panels)))

	return panels, nil
}
