// Package yaml implements config.Parser for YAML settings files using
// github.com/goccy/go-yaml.
//
// Colon separated paths are converted to YAML paths ("installer:userinput"
// becomes "$.installer.userinput") and resolved with goccy/go-yaml PathString
// before decoding, so a settings block can live inside a larger document.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var settings config.Settings
//	err := parser.Parse(data, &settings, "installer:userinput")
package yaml
