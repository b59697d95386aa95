package acrylic

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Range is a channel given as two endpoints. The validator draws the channel
// uniformly from the closed interval between them. Either endpoint may be
// Random, and the endpoints may be given in any order.
type Range struct {
	Lo, Hi any
}

// Between builds a Range.
func Between(lo, hi any) Range {
	return Range{Lo: lo, Hi: hi}
}

// Validator checks raw input against the schema of a colorspace and turns it
// into the typed value of that space. It draws random values from its own
// source.
type Validator struct {
	rng *rand.Rand
}

// NewValidator returns a Validator drawing from rng. A nil rng uses the
// goroutine-safe global source; a non-nil one must not be shared between
// goroutines.
func NewValidator(rng *rand.Rand) *Validator {
	return &Validator{rng: rng}
}

var defaultValidator = NewValidator(nil)

// Validate validates raw input for a space using the global random source.
// See Validator.Validate.
func Validate(raw any, space Space) (any, error) {
	return defaultValidator.Validate(raw, space)
}

// Validate checks raw against the schema of space and returns an RGB, HSL,
// HSV, RYB or string depending on the space.
//
// For the numeric spaces raw is Random or a sequence with one entry per
// channel. Each entry is Random, a Range (or a two-element sequence), or an
// exact value. Integer spaces reject non-integral values, real spaces round
// to Precision digits.
//
// For hex, raw is a hex code with an optional "#" or "0x" prefix in long,
// short or alpha form; the result is "#RRGGBB". For name, raw is normalized
// with NormalizeName and must be in the table. Random picks a value in both.
func (v *Validator) Validate(raw any, space Space) (any, error) {
	schema, err := Lookup(space)
	if err != nil {
		return nil, err
	}
	if schema.Kind == KindString {
		return v.validateString(raw, schema)
	}
	values, err := v.validateValues(raw, schema)
	if err != nil {
		return nil, err
	}
	return tuple(space, values), nil
}

// ValidateRGB is Validate for SpaceRGB with a typed result.
func (v *Validator) ValidateRGB(raw any) (RGB, error) {
	out, err := v.Validate(raw, SpaceRGB)
	if err != nil {
		return RGB{}, err
	}
	return out.(RGB), nil
}

// ValidateHSL is Validate for SpaceHSL with a typed result.
func (v *Validator) ValidateHSL(raw any) (HSL, error) {
	out, err := v.Validate(raw, SpaceHSL)
	if err != nil {
		return HSL{}, err
	}
	return out.(HSL), nil
}

// ValidateHSV is Validate for SpaceHSV with a typed result.
func (v *Validator) ValidateHSV(raw any) (HSV, error) {
	out, err := v.Validate(raw, SpaceHSV)
	if err != nil {
		return HSV{}, err
	}
	return out.(HSV), nil
}

// ValidateRYB is Validate for SpaceRYB with a typed result.
func (v *Validator) ValidateRYB(raw any) (RYB, error) {
	out, err := v.Validate(raw, SpaceRYB)
	if err != nil {
		return RYB{}, err
	}
	return out.(RYB), nil
}

func tuple(space Space, v []float64) any {
	switch space {
	case SpaceHSL:
		return HSL{H: v[0], S: v[1], L: v[2]}
	case SpaceHSV:
		return HSV{H: v[0], S: v[1], V: v[2]}
	case SpaceRYB:
		return RYB{R: int(v[0]), Y: int(v[1]), B: int(v[2])}
	}
	return RGB{R: int(v[0]), G: int(v[1]), B: int(v[2])}
}

func (v *Validator) validateValues(raw any, schema Schema) ([]float64, error) {
	out := make([]float64, len(schema.Channels))

	if isRandom(raw) {
		for i, ch := range schema.Channels {
			out[i] = schema.Random(v.rng, ch.Min, ch.Max)
		}
		return out, nil
	}

	entries, ok := sequence(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %s needs %d values, got %T", ErrDatatype, schema.Space, len(schema.Channels), raw)
	}
	if len(entries) != len(schema.Channels) {
		return nil, fmt.Errorf("%w: %s should have %d values, got %d", ErrShape, schema.Space, len(schema.Channels), len(entries))
	}

	for i, ch := range schema.Channels {
		value, err := v.validateChannel(entries[i], ch, schema)
		if err != nil {
			return nil, err
		}
		out[i] = value
	}
	return out, nil
}

func (v *Validator) validateChannel(x any, ch Channel, schema Schema) (float64, error) {
	if isRandom(x) {
		return schema.Random(v.rng, ch.Min, ch.Max), nil
	}

	if lo, hi, ok := endpoints(x); ok {
		return v.validateRange(lo, hi, ch, schema)
	}
	if entries, ok := sequence(x); ok {
		return 0, fmt.Errorf("%w: %q given as a range needs 2 values, got %d", ErrShape, ch.Name, len(entries))
	}

	value, err := coerce(x, schema.Kind, ch.Name)
	if err != nil {
		return 0, err
	}
	if err := inBounds(value, ch); err != nil {
		return 0, err
	}
	if schema.Kind == KindReal {
		value = roundTo(value, Precision)
	}
	return value, nil
}

func (v *Validator) validateRange(rawLo, rawHi any, ch Channel, schema Schema) (float64, error) {
	loRandom, hiRandom := isRandom(rawLo), isRandom(rawHi)
	if loRandom && hiRandom {
		return schema.Random(v.rng, ch.Min, ch.Max), nil
	}

	var lo, hi float64
	for _, ep := range []struct {
		raw    any
		random bool
		dst    *float64
	}{{rawLo, loRandom, &lo}, {rawHi, hiRandom, &hi}} {
		if ep.random {
			continue
		}
		value, err := coerce(ep.raw, schema.Kind, ch.Name)
		if err != nil {
			return 0, err
		}
		if err := inBounds(value, ch); err != nil {
			return 0, err
		}
		if schema.Kind == KindReal {
			value = roundTo(value, Precision)
		}
		*ep.dst = value
	}

	if loRandom {
		lo = schema.Random(v.rng, ch.Min, hi)
	}
	if hiRandom {
		hi = schema.Random(v.rng, lo, ch.Max)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return schema.Random(v.rng, lo, hi), nil
}

func inBounds(x float64, ch Channel) error {
	if x < ch.Min || x > ch.Max {
		return fmt.Errorf("%w: %q should be in range %g - %g, got %g", ErrRange, ch.Name, ch.Min, ch.Max, x)
	}
	return nil
}

// coerce converts x to the numeric kind of a space. Integer kinds accept
// whole numbers only; real kinds accept any finite number.
func coerce(x any, kind Kind, param string) (float64, error) {
	var f float64
	switch t := x.(type) {
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case float32:
		f = float64(t)
	case float64:
		f = t
	case json.Number:
		return coerceString(t.String(), kind, param)
	case string:
		return coerceString(t, kind, param)
	default:
		return 0, fmt.Errorf("%w: cannot convert object of type %T given for %q to %s", ErrDatatype, x, param, kind)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: cannot convert value %v given for %q to %s", ErrDatatype, f, param, kind)
	}
	if kind == KindInt && f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: cannot convert value %v given for %q to %s", ErrDatatype, f, param, kind)
	}
	return f, nil
}

func coerceString(s string, kind Kind, param string) (float64, error) {
	s = strings.TrimSpace(s)
	if kind == KindInt {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: cannot convert value %q given for %q to %s", ErrDatatype, s, param, kind)
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: cannot convert value %q given for %q to %s", ErrDatatype, s, param, kind)
	}
	return f, nil
}

// isRandom reports whether x is the numeric sentinel Random.
func isRandom(x any) bool {
	switch t := x.(type) {
	case int:
		return t == Random
	case int8:
		return t == Random
	case int16:
		return t == Random
	case int32:
		return t == Random
	case int64:
		return t == Random
	case float32:
		return t == Random
	case float64:
		return t == Random
	}
	return false
}

type channeler interface {
	channels() []any
}

// sequence unpacks slices, arrays and the typed tuples. Strings and byte
// slices are not sequences.
func sequence(x any) ([]any, bool) {
	switch t := x.(type) {
	case nil, string, []byte, Range:
		return nil, false
	case []any:
		return t, true
	case channeler:
		return t.channels(), true
	}
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// endpoints reports whether x is a two-endpoint range.
func endpoints(x any) (lo, hi any, ok bool) {
	if r, isRange := x.(Range); isRange {
		return r.Lo, r.Hi, true
	}
	if entries, isSeq := sequence(x); isSeq && len(entries) == 2 {
		return entries[0], entries[1], true
	}
	return nil, nil, false
}

var hexPattern = regexp.MustCompile(`(?i)^#?(?:0x)?(?:([0-9a-f]{6})|([0-9a-f]{3})|([0-9a-f]{6})[0-9a-f]{2})$`)

func (v *Validator) validateString(raw any, schema Schema) (string, error) {
	if isRandom(raw) {
		return schema.RandomString(v.rng), nil
	}
	s, err := asString(raw, schema.Space)
	if err != nil {
		return "", err
	}
	if schema.Space == SpaceHex {
		return normalizeHex(s)
	}
	return normalizeKnownName(s)
}

func asString(x any, space Space) (string, error) {
	switch t := x.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case fmt.Stringer:
		return t.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(t), nil
	}
	return "", fmt.Errorf("%w: cannot convert object of type %T given for %q to string", ErrDatatype, x, space)
}

// normalizeHex turns any accepted hex form into "#RRGGBB".
func normalizeHex(s string) (string, error) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%w: %q is not a valid value for %q", ErrInvalidHex, s, SpaceHex)
	}
	digits := m[1] + m[3]
	if short := m[2]; short != "" {
		var b strings.Builder
		for _, d := range short {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		digits = b.String()
	}
	return "#" + strings.ToUpper(digits), nil
}

func normalizeKnownName(s string) (string, error) {
	name := NormalizeName(s)
	if _, ok := lookupName(name); !ok {
		return "", fmt.Errorf("%w: %q is not a valid value for %q", ErrInvalidName, name, SpaceName)
	}
	return name, nil
}
