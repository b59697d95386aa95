package acrylic

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of
// these, so callers should test with errors.Is.
var (
	// ErrShape reports a wrong number of channels, or a range that does not
	// have exactly two endpoints.
	ErrShape = errors.New("wrong number of values")

	// ErrDatatype reports a value that cannot be coerced to the numeric kind
	// of its space (or to a string for hex and name).
	ErrDatatype = errors.New("invalid datatype")

	// ErrRange reports a value outside the bounds of its channel.
	ErrRange = errors.New("value out of range")

	// ErrUnknownColorspace reports an identifier that is not a supported space.
	ErrUnknownColorspace = errors.New("unknown colorspace")

	// ErrMultipleInputs reports more than one colorspace given to New.
	ErrMultipleInputs = errors.New("multiple colorspace inputs")

	// ErrInvalidHex reports a string that is not a hex color code.
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrInvalidName reports a string that is not in the name table.
	ErrInvalidName = errors.New("invalid color name")

	// ErrImmutable reports an attempt to overwrite an already constructed Color.
	ErrImmutable = errors.New("color is immutable")

	// ErrUnknownScheme reports a scheme kind that does not exist.
	ErrUnknownScheme = errors.New("unknown color scheme")
)
