package field

import "errors"

// ErrMissingAttribute is returned when a mandatory attribute is absent or blank.
var ErrMissingAttribute = errors.New("missing attribute")

// ErrMissingElement is returned when a mandatory child element is absent.
var ErrMissingElement = errors.New("missing element")

// ErrInvalidValue marks attribute values that could not be converted. It is
// only logged; accessors fall back to their default.
var ErrInvalidValue = errors.New("invalid value")

// ErrUnsupportedInstance is returned when a factory builds an instance that
// does not implement the expected interface.
var ErrUnsupportedInstance = errors.New("unsupported instance")
