package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrFetch wraps failures of a DataFetcher.
var ErrFetch = errors.New("reading data error")

// ErrParse wraps failures of a Parser.
var ErrParse = errors.New("parsing error")

// ErrValidate wraps failures of a Validator.
var ErrValidate = errors.New("validating error")

// Parser decodes configuration data into a target.
//
// The path selects a section of the document, using colon (:) as the
// separator between nested keys or element names. An empty path decodes the
// entire document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher reads raw configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator is implemented by targets that can check themselves after
// parsing.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by targets that fill in defaults before
// validation.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that fetches, parses, defaults and validates
// target. Errors wrap ErrFetch, ErrParse or ErrValidate.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetch, err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}

		if defaulter, ok := any(target).(Defaulter); ok {
			if defaulter.SetDefaults() {
				slog.Debug("defaults applied", slog.String("path", path), slog.String("type", fmt.Sprintf("%T", target)))
			}
		}

		if validator, ok := any(target).(Validator); ok {
			err := validator.Validate()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrValidate, err)
			}
		}

		return target, nil
	}
}
