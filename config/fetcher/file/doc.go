// Package file provides file-backed DataFetchers for the config package.
//
// Settings files, user input specs and langpacks are read once at
// construction; Fetch returns a copy of those bytes. NewFetcher reads from
// the operating system, NewFSFetcher from any fs.FS, which lets installers
// ship their specs with go:embed.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/userInputSpec.xml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
package file
