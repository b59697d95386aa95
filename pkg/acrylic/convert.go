package acrylic

import (
	"fmt"
	"math"
	"strconv"
)

// RGB is the canonical representation: three channels in [0, 255].
// It is comparable and can be used as a map key.
type RGB struct {
	R, G, B int
}

// HSL is hue in [0, 360], saturation and lightness in [0, 100].
type HSL struct {
	H, S, L float64
}

// HSV is hue in [0, 360], saturation and value in [0, 100].
type HSV struct {
	H, S, V float64
}

// RYB is red, yellow, blue on the painter's wheel, each in [0, 255].
type RYB struct {
	R, Y, B int
}

func (c RGB) channels() []any { return []any{c.R, c.G, c.B} }
func (c HSL) channels() []any { return []any{c.H, c.S, c.L} }
func (c HSV) channels() []any { return []any{c.H, c.S, c.V} }
func (c RYB) channels() []any { return []any{c.R, c.Y, c.B} }

// unit scales a triple into [0, 1] using the maxima of its space.
func unit(space Space, a, b, c float64) (float64, float64, float64) {
	m := maxima(space)
	return a / m[0], b / m[1], c / m[2]
}

// RGBToHSL converts RGB to HSL, rounding each channel to Precision digits.
func RGBToHSL(c RGB) HSL {
	r, g, b := unit(SpaceRGB, float64(c.R), float64(c.G), float64(c.B))
	h, l, s := rgbToHLS(r, g, b)
	m := maxima(SpaceHSL)
	return HSL{
		H: roundTo(h*m[0], Precision),
		S: roundTo(s*m[1], Precision),
		L: roundTo(l*m[2], Precision),
	}
}

// HSLToRGB converts HSL to RGB.
func HSLToRGB(c HSL) RGB {
	h, s, l := unit(SpaceHSL, c.H, c.S, c.L)
	return scaleRGB(hlsToRGB(h, l, s))
}

// RGBToHSV converts RGB to HSV, rounding each channel to Precision digits.
func RGBToHSV(c RGB) HSV {
	r, g, b := unit(SpaceRGB, float64(c.R), float64(c.G), float64(c.B))
	h, s, v := rgbToHSV(r, g, b)
	m := maxima(SpaceHSV)
	return HSV{
		H: roundTo(h*m[0], Precision),
		S: roundTo(s*m[1], Precision),
		V: roundTo(v*m[2], Precision),
	}
}

// HSVToRGB converts HSV to RGB.
func HSVToRGB(c HSV) RGB {
	h, s, v := unit(SpaceHSV, c.H, c.S, c.V)
	return scaleRGB(hsvToRGB(h, s, v))
}

// RGBToHex formats RGB as "#RRGGBB".
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexToRGB parses any accepted hex form. Strings that are not hex codes
// yield black; validate first when the input is untrusted.
func HexToRGB(hex string) RGB {
	canonical, err := normalizeHex(hex)
	if err != nil {
		return RGB{}
	}
	var out [3]int
	for i := range out {
		v, _ := strconv.ParseUint(canonical[1+2*i:3+2*i], 16, 8)
		out[i] = int(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}
}

// RGBToName returns the table name with exactly this RGB, or NoName.
func RGBToName(c RGB) string {
	if name, ok := nameByRGB[c]; ok {
		return name
	}
	return NoName
}

// NameToRGB looks a normalized name up in the table. NoName and unknown
// names yield black.
func NameToRGB(name string) RGB {
	c, _ := lookupName(name)
	return c
}

// RGBToRYB maps RGB onto the red-yellow-blue painter's wheel with a
// Gossett-Chen style subtractive mixing model. RYBToRGB is only an
// approximate inverse: a round trip may drift by a unit or two per channel.
func RGBToRYB(c RGB) RYB {
	r, g, b := unit(SpaceRGB, float64(c.R), float64(c.G), float64(c.B))

	white := min(r, g, b)
	black := min(1-r, 1-g, 1-b)
	r, g, b = r-white, g-white, b-white

	yellow := min(r, g)
	ryR := r - yellow
	ryY := (yellow + g) / 2
	ryB := (b + g - yellow) / 2

	ryR, ryY, ryB = renormalize(max(r, g, b), ryR, ryY, ryB)

	m := maxima(SpaceRYB)
	return RYB{
		R: roundInt((ryR + black) * m[0]),
		Y: roundInt((ryY + black) * m[1]),
		B: roundInt((ryB + black) * m[2]),
	}
}

// RYBToRGB is the mirrored transform of RGBToRYB with the roles of black
// and white, and of yellow and green, swapped.
func RYBToRGB(c RYB) RGB {
	r, y, b := unit(SpaceRYB, float64(c.R), float64(c.Y), float64(c.B))

	black := min(r, y, b)
	white := min(1-r, 1-y, 1-b)
	r, y, b = r-black, y-black, b-black

	green := min(y, b)
	rgR := r + y - green
	rgG := y + green
	rgB := 2 * (b - green)

	rgR, rgG, rgB = renormalize(max(r, y, b), rgR, rgG, rgB)

	m := maxima(SpaceRGB)
	return RGB{
		R: roundInt((rgR + white) * m[0]),
		G: roundInt((rgG + white) * m[1]),
		B: roundInt((rgB + white) * m[2]),
	}
}

// renormalize scales a, b, c so that their maximum equals ref. A zero ref
// or a zero maximum leaves the values untouched.
func renormalize(ref, a, b, c float64) (float64, float64, float64) {
	if ref == 0 {
		return a, b, c
	}
	norm := max(a, b, c) / ref
	if norm <= 0 {
		return a, b, c
	}
	return a / norm, b / norm, c / norm
}

// ToRGB converts a value of the given space to RGB. The value must have the
// Go type the space validates to (RGB, HSL, HSV, RYB or string).
func ToRGB(space Space, value any) (RGB, error) {
	if !space.valid() {
		return RGB{}, fmt.Errorf("%w: %v", ErrUnknownColorspace, space)
	}
	if !hasType(space, value) {
		return RGB{}, fmt.Errorf("%w: %T is not a %s value", ErrDatatype, value, space)
	}
	return toRGB(space, value), nil
}

// FromRGB converts RGB to the given space.
func FromRGB(space Space, c RGB) (any, error) {
	if !space.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownColorspace, space)
	}
	return fromRGB(space, c), nil
}

// Convert converts a value between two spaces, always through RGB.
func Convert(value any, from, to Space) (any, error) {
	c, err := ToRGB(from, value)
	if err != nil {
		return nil, err
	}
	return FromRGB(to, c)
}

func hasType(space Space, value any) bool {
	switch value.(type) {
	case RGB:
		return space == SpaceRGB
	case HSL:
		return space == SpaceHSL
	case HSV:
		return space == SpaceHSV
	case RYB:
		return space == SpaceRYB
	case string:
		return space == SpaceHex || space == SpaceName
	}
	return false
}

func toRGB(space Space, value any) RGB {
	switch space {
	case SpaceHSL:
		return HSLToRGB(value.(HSL))
	case SpaceHSV:
		return HSVToRGB(value.(HSV))
	case SpaceRYB:
		return RYBToRGB(value.(RYB))
	case SpaceHex:
		return HexToRGB(value.(string))
	case SpaceName:
		return NameToRGB(value.(string))
	}
	return value.(RGB)
}

func fromRGB(space Space, c RGB) any {
	switch space {
	case SpaceHSL:
		return RGBToHSL(c)
	case SpaceHSV:
		return RGBToHSV(c)
	case SpaceRYB:
		return RGBToRYB(c)
	case SpaceHex:
		return RGBToHex(c)
	case SpaceName:
		return RGBToName(c)
	}
	return c
}

func scaleRGB(r, g, b float64) RGB {
	m := maxima(SpaceRGB)
	return RGB{R: roundInt(r * m[0]), G: roundInt(g * m[1]), B: roundInt(b * m[2])}
}

func roundInt(x float64) int {
	return int(math.RoundToEven(x))
}

// The helpers below work on the unit interval with hue as a fraction of a
// full turn.

func rgbToHLS(r, g, b float64) (h, l, s float64) {
	maxc, minc := max(r, g, b), min(r, g, b)
	sum, span := maxc+minc, maxc-minc
	l = sum / 2
	if minc == maxc {
		return 0, l, 0
	}
	if l <= 0.5 {
		s = span / sum
	} else {
		s = span / (2 - sum)
	}
	return hueOf(r, g, b, maxc, span), l, s
}

func hlsToRGB(h, l, s float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hueChannel(m1, m2, h+1.0/3), hueChannel(m1, m2, h), hueChannel(m1, m2, h-1.0/3)
}

func hueChannel(m1, m2, h float64) float64 {
	h = wrapUnit(h)
	switch {
	case h < 1.0/6:
		return m1 + (m2-m1)*h*6
	case h < 0.5:
		return m2
	case h < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-h)*6
	}
	return m1
}

func rgbToHSV(r, g, b float64) (h, s, v float64) {
	maxc, minc := max(r, g, b), min(r, g, b)
	v = maxc
	if minc == maxc {
		return 0, 0, v
	}
	span := maxc - minc
	return hueOf(r, g, b, maxc, span), span / maxc, v
}

func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	if s == 0 {
		return v, v, v
	}
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	}
	return v, p, q
}

func hueOf(r, g, b, maxc, span float64) float64 {
	rc := (maxc - r) / span
	gc := (maxc - g) / span
	bc := (maxc - b) / span
	var h float64
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	return wrapUnit(h / 6)
}

func wrapUnit(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	return x
}
