// Package userinput wires the field reading packages into a go.uber.org/fx
// application.
//
// An App built with WithSettingsFile or WithSettings loads the settings,
// merges the configured langpacks, parses the user input document and
// provides the resulting []panel.Panel together with the *field.Config used
// to read them. Other modules added through WithModules can depend on any of
// those values.
//
//	app := userinput.NewApp(
//		userinput.WithSettingsFile("installer/settings.yaml"),
//		userinput.WithModules(fx.Invoke(func(panels []panel.Panel) { ... })),
//	)
package userinput
