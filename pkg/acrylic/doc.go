// Package acrylic represents colors and converts them between RGB, HSL, HSV,
// RYB, hexadecimal and CSS color names.
//
// # Overview
//
// A Color is constructed from exactly one colorspace. The input is validated
// against that space's Schema and stored as given; every other
// representation is derived on first access and cached. All conversions go
// through RGB, the canonical representation, which is also the only thing
// equality and hashing look at:
//
//	a := acrylic.MustNew(acrylic.WithRGB([]int{128, 255, 212}))
//	b := acrylic.MustNew(acrylic.WithHSL([]any{160, 100, 75}))
//	a.Equal(b) // true
//	a.Key() == b.Key() // true, usable as a map key
//
// # Input
//
// Numeric spaces take one value per channel. A channel may be an exact value,
// Random, or a Range drawn uniformly (either endpoint may be Random):
//
//	acrylic.New(acrylic.WithRGB([]any{acrylic.Between(10, 100), acrylic.Random, 0}))
//	acrylic.New(acrylic.WithHSV(acrylic.Random))
//
// Hex codes may be long ("#3EF4FF"), short ("3ef"), carry an alpha channel
// ("0x3EF4FFAA", discarded) and use any case. Names are matched after
// trimming, lowercasing and removing whitespace.
//
// # Errors
//
// Errors wrap one of ErrShape, ErrDatatype, ErrRange, ErrUnknownColorspace,
// ErrMultipleInputs, ErrInvalidHex, ErrInvalidName, ErrImmutable or
// ErrUnknownScheme; test them with errors.Is. Looking up the name of an RGB
// triple that has none is not an error and yields NoName.
//
// # RYB
//
// The RYB conversions approximate a painter's color wheel. They are not exact
// inverses of each other, so an RGB → RYB → RGB round trip can be off by one
// or two units per channel. Color.InRYB and the harmonies of Color.Scheme
// are built on this behavior.
package acrylic
