// Package logging builds the log/slog loggers used by the reader and the
// fieldinfo command. Records are JSON by default; the text format is meant
// for terminals.
package logging
