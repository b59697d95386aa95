package acrylic

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// Random is the sentinel that asks for a uniformly drawn value instead of an
// exact one. It can stand for a whole input, a single channel, or one endpoint
// of a range. Every channel bound is >= 0, so it never collides with a valid
// value.
const Random = -1

// Precision is the number of decimal digits kept for real-valued channels.
const Precision = 2

// Kind is the datatype of a colorspace's values.
type Kind int

const (
	// KindInt channels hold whole numbers.
	KindInt Kind = iota

	// KindReal channels hold reals rounded to Precision digits.
	KindReal

	// KindString spaces hold a single validated string.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindReal:
		return "float"
	case KindString:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Channel describes one component of a multi-channel space.
type Channel struct {
	Name string
	Min  float64
	Max  float64
}

// Schema is the static description of a colorspace.
type Schema struct {
	Space    Space
	Kind     Kind
	Channels []Channel // nil for string spaces
}

var registry = [spaceCount]Schema{
	SpaceRGB: {
		Space: SpaceRGB,
		Kind:  KindInt,
		Channels: []Channel{
			{Name: "red", Min: 0, Max: 255},
			{Name: "green", Min: 0, Max: 255},
			{Name: "blue", Min: 0, Max: 255},
		},
	},
	SpaceHSL: {
		Space: SpaceHSL,
		Kind:  KindReal,
		Channels: []Channel{
			{Name: "hue", Min: 0, Max: 360},
			{Name: "saturation", Min: 0, Max: 100},
			{Name: "lightness", Min: 0, Max: 100},
		},
	},
	SpaceHSV: {
		Space: SpaceHSV,
		Kind:  KindReal,
		Channels: []Channel{
			{Name: "hue", Min: 0, Max: 360},
			{Name: "saturation", Min: 0, Max: 100},
			{Name: "value", Min: 0, Max: 100},
		},
	},
	SpaceRYB: {
		Space: SpaceRYB,
		Kind:  KindInt,
		Channels: []Channel{
			{Name: "red", Min: 0, Max: 255},
			{Name: "yellow", Min: 0, Max: 255},
			{Name: "blue", Min: 0, Max: 255},
		},
	},
	SpaceHex:  {Space: SpaceHex, Kind: KindString},
	SpaceName: {Space: SpaceName, Kind: KindString},
}

// Lookup returns the schema of a colorspace. The returned schema is a copy;
// modifying it does not affect the registry.
func Lookup(space Space) (Schema, error) {
	if !space.valid() {
		return Schema{}, fmt.Errorf("%w: %v", ErrUnknownColorspace, space)
	}
	s := registry[space]
	s.Channels = slices.Clone(s.Channels)
	return s, nil
}

// LookupID is Lookup for a textual identifier such as "hsv".
func LookupID(id string) (Schema, error) {
	space, err := ParseSpace(id)
	if err != nil {
		return Schema{}, err
	}
	return Lookup(space)
}

// maxima returns the upper bound of each channel of a numeric space.
func maxima(space Space) [3]float64 {
	ch := registry[space].Channels
	return [3]float64{ch[0].Max, ch[1].Max, ch[2].Max}
}

// Random draws one value uniformly from [lo, hi]. Integer spaces draw whole
// numbers, real spaces round the draw to Precision digits. A nil rng uses the
// goroutine-safe global source.
func (s Schema) Random(rng *rand.Rand, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if s.Kind == KindInt {
		a, b := math.Ceil(lo), math.Floor(hi)
		if b < a {
			return a
		}
		return a + float64(intN(rng, int(b-a)+1))
	}
	return roundTo(lo+float64Of(rng)*(hi-lo), Precision)
}

// RandomString draws a value for a string space: six random hex digits for
// hex, a uniformly chosen table key for name.
func (s Schema) RandomString(rng *rand.Rand) string {
	switch s.Space {
	case SpaceHex:
		const digits = "0123456789ABCDEF"
		buf := []byte{'#', 0, 0, 0, 0, 0, 0}
		for i := 1; i < len(buf); i++ {
			buf[i] = digits[intN(rng, len(digits))]
		}
		return string(buf)
	case SpaceName:
		return nameList[intN(rng, len(nameList))]
	}
	return ""
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

func float64Of(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}

// roundTo rounds half to even at the given number of decimal digits.
func roundTo(x float64, digits int) float64 {
	p := math.Pow10(digits)
	return math.RoundToEven(x*p) / p
}
