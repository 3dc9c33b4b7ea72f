// Package factory creates validator and processor instances from the class
// identifiers declared in field configuration.
//
// Identifiers are opaque strings, typically the fully qualified class names
// used by existing installer descriptors
// (e.g. "com.izforge.izpack.panels.userinput.validator.NotEmptyValidator").
// Callers register a Constructor for each identifier they support; the
// registry never guesses.
package factory
