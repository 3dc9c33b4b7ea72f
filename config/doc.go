// Package config loads the settings of the user input reader.
//
// Loading goes through Provider, which chains four extension points:
//   - DataFetcher: retrieves raw bytes (see config/fetcher/file)
//   - Parser: decodes the bytes into a target, optionally below a path
//     (see config/parser/yaml and config/parser/xml)
//   - Defaulter: fills in default values
//   - Validator: rejects unusable values
//
// # Path Navigation
//
// Paths use colon (:) as the separator:
//
//	"installer:userinput"   -> settings["installer"]["userinput"] (YAML)
//	"panel"                 -> <root><panel> (XML)
//	""                      -> entire document
//
// # Settings
//
// Settings names the user input document, the langpacks its message ids
// resolve against and the variables substituted into attribute values:
//
//	locale: eng
//	spec: userInputSpec.xml
//	messages:
//	  - langpacks/eng.xml
//	variables:
//	  INSTALL_PATH: /opt/app
//
// Relative paths are resolved against the directory of the settings file by
// Settings.Resolve. The locale picks the langpacks: "{locale}" in a message
// path is replaced by it, and without messages langpacks/<locale>.xml next to
// the document is read when present (Settings.MessageFiles).
package config
