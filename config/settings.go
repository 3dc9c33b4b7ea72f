package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// DefaultLocale is the ISO 639-2 code used when settings name no locale.
const DefaultLocale = "eng"

// LocalePlaceholder is replaced by the locale in message paths.
const LocalePlaceholder = "{locale}"

// langpackDir holds the conventional langpacks next to the document.
const langpackDir = "langpacks"

// ErrMissingSpec is returned when settings name no user input document.
var ErrMissingSpec = errors.New("spec must not be empty")

// ErrInvalidLocale is returned when the locale is not a three letter code.
var ErrInvalidLocale = errors.New("locale must be a three letter code")

// Settings configures a reading pass over a user input document.
type Settings struct {
	Locale    string            `yaml:"locale"`
	Spec      string            `yaml:"spec"`
	Messages  []string          `yaml:"messages"`
	Variables map[string]string `yaml:"variables"`
}

// SetDefaults implements Defaulter.
func (s *Settings) SetDefaults() bool {
	if strings.TrimSpace(s.Locale) == "" {
		s.Locale = DefaultLocale

		return true
	}

	return false
}

// Validate implements Validator.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Spec) == "" {
		return ErrMissingSpec
	}

	if len(s.Locale) != 3 {
		return ErrInvalidLocale
	}

	return nil
}

// Resolve returns a copy of s with relative file paths joined to baseDir.
func (s Settings) Resolve(baseDir string) Settings {
	resolved := s
	resolved.Spec = resolvePath(baseDir, s.Spec)

	if len(s.Messages) > 0 {
		resolved.Messages = make([]string, len(s.Messages))
		for index, path := range s.Messages {
			resolved.Messages[index] = resolvePath(baseDir, path)
		}
	}

	if len(s.Variables) > 0 {
		resolved.Variables = make(map[string]string, len(s.Variables))
		for name, value := range s.Variables {
			resolved.Variables[name] = value
		}
	}

	return resolved
}

// MessageFiles returns the langpacks for the configured locale, in override
// order. LocalePlaceholder in a path is replaced by the locale. Without
// configured messages the result is langpacks/<locale>.xml next to the
// document; the boolean reports that this conventional path was used, so the
// caller can treat a missing file as no messages.
func (s Settings) MessageFiles() ([]string, bool) {
	if len(s.Messages) == 0 {
		return []string{filepath.Join(filepath.Dir(s.Spec), langpackDir, s.Locale+".xml")}, true
	}

	files := make([]string, len(s.Messages))
	for index, path := range s.Messages {
		files[index] = strings.ReplaceAll(path, LocalePlaceholder, s.Locale)
	}

	return files, false
}

func resolvePath(baseDir, path string) string {
	if path == "" || baseDir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(baseDir, path)
}
