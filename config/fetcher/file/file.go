package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher over the contents of a single file,
// read at construction time.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor for a Fetcher reading fpath from the
// operating system. Returning a constructor lets an fx container decide when
// the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{filepath: cleanPath, data: data}, nil
	}
}

// NewFSFetcher returns a constructor for a Fetcher reading name from fsys.
func NewFSFetcher(fsys fs.FS, name string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanName := path.Clean(name)

		stat, err := fs.Stat(fsys, cleanName)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanName, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanName, ErrPathIsDirectory)
		}

		data, err := fs.ReadFile(fsys, cleanName)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanName, err)
		}

		return &Fetcher{filepath: cleanName, data: data}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the data read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
