package acrylic

import (
	"fmt"
	"hash/fnv"
	"sync/atomic"
)

// Color is an immutable color value. It keeps the representation it was
// constructed from and derives every other representation on first access,
// caching the result. Equality and hashing use the RGB representation only.
//
// A Color must not be copied after first use. Accessors are safe for
// concurrent use: two goroutines deriving the same representation may both
// compute it, and both get the same value.
type Color struct {
	space Space
	slots [spaceCount]atomic.Value
	built bool
}

// Input names the colorspace and raw value a Color is constructed from.
type Input struct {
	id    string
	space Space
	value any
}

// WithRGB constructs from RGB, e.g. WithRGB([]int{62, 244, 255}).
func WithRGB(v any) Input { return Input{id: "rgb", space: SpaceRGB, value: v} }

// WithHSL constructs from HSL, e.g. WithHSL([]any{160, 100, 75}).
func WithHSL(v any) Input { return Input{id: "hsl", space: SpaceHSL, value: v} }

// WithHSV constructs from HSV.
func WithHSV(v any) Input { return Input{id: "hsv", space: SpaceHSV, value: v} }

// WithRYB constructs from RYB.
func WithRYB(v any) Input { return Input{id: "ryb", space: SpaceRYB, value: v} }

// WithHex constructs from a hex code such as "#3EF4FF", "3ef", or "0x3EF4FFAA".
func WithHex(v any) Input { return Input{id: "hex", space: SpaceHex, value: v} }

// WithName constructs from a CSS color name.
func WithName(v any) Input { return Input{id: "name", space: SpaceName, value: v} }

// With constructs from a colorspace given by identifier. Unknown identifiers
// make New fail with ErrUnknownColorspace.
func With(id string, v any) Input {
	space, err := ParseSpace(id)
	if err != nil {
		space = -1
	}
	return Input{id: id, space: space, value: v}
}

// New validates one input and returns the Color it describes. No input gives
// black. More than one input fails with ErrMultipleInputs.
func New(inputs ...Input) (*Color, error) {
	return newColor(defaultValidator, inputs)
}

// MustNew is New that panics on error. Use it for literals.
func MustNew(inputs ...Input) *Color {
	c, err := New(inputs...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewWith is New drawing any random values from v.
func NewWith(v *Validator, inputs ...Input) (*Color, error) {
	return newColor(v, inputs)
}

func newColor(v *Validator, inputs []Input) (*Color, error) {
	if len(inputs) > 1 {
		ids := make([]string, len(inputs))
		for i, in := range inputs {
			ids[i] = in.id
		}
		return nil, fmt.Errorf("%w: got %v", ErrMultipleInputs, ids)
	}
	if len(inputs) == 0 {
		return fromValidated(SpaceRGB, RGB{}), nil
	}

	in := inputs[0]
	if !in.space.valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColorspace, in.id)
	}
	value, err := v.Validate(in.value, in.space)
	if err != nil {
		return nil, err
	}
	return fromValidated(in.space, value), nil
}

// fromValidated wraps an already validated value without converting it.
func fromValidated(space Space, value any) *Color {
	c := &Color{space: space, built: true}
	c.slots[space].Store(value)
	return c
}

// Space is the colorspace the color was constructed from. It decides how the
// color is printed.
func (c *Color) Space() Space { return c.space }

// RGB returns the canonical representation.
func (c *Color) RGB() RGB { return c.resolve(SpaceRGB).(RGB) }

// HSL returns the HSL representation.
func (c *Color) HSL() HSL { return c.resolve(SpaceHSL).(HSL) }

// HSV returns the HSV representation.
func (c *Color) HSV() HSV { return c.resolve(SpaceHSV).(HSV) }

// RYB returns the RYB representation.
func (c *Color) RYB() RYB { return c.resolve(SpaceRYB).(RYB) }

// Hex returns the "#RRGGBB" representation.
func (c *Color) Hex() string { return c.resolve(SpaceHex).(string) }

// Name returns the CSS name with exactly this RGB, or NoName.
func (c *Color) Name() string { return c.resolve(SpaceName).(string) }

// Value returns the representation for any space.
func (c *Color) Value(space Space) (any, error) {
	if !space.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownColorspace, space)
	}
	return c.resolve(space), nil
}

// resolve returns the cached representation for space, computing and
// caching it first if needed. RGB derives from the construction space,
// everything else from RGB.
func (c *Color) resolve(space Space) any {
	if v := c.slots[space].Load(); v != nil {
		return v
	}

	var v any
	if space == SpaceRGB {
		src := c.slots[c.space].Load()
		if src == nil {
			// zero Color
			src = RGB{}
		}
		v = toRGB(c.space, src)
	} else {
		v = fromRGB(space, c.RGB())
	}
	c.slots[space].Store(v)
	return v
}

// cached reports whether space has been computed yet.
func (c *Color) cached(space Space) bool {
	return c.slots[space].Load() != nil
}

// Equal reports whether both colors have the same RGB representation.
func (c *Color) Equal(other *Color) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.RGB() == other.RGB()
}

// Key returns the RGB representation, for use as a map key.
func (c *Color) Key() RGB { return c.RGB() }

// Hash returns an FNV-1a hash of the RGB representation. Equal colors hash
// identically.
func (c *Color) Hash() uint64 {
	rgb := c.RGB()
	h := fnv.New64a()
	h.Write([]byte{byte(rgb.R), byte(rgb.G), byte(rgb.B)})
	return h.Sum64()
}

// InRYB rotates the hue onto the RYB wheel: the RYB triple is read as if it
// were RGB, its HSL hue is taken, and combined with this color's saturation
// and lightness. Schemes rely on this exact, non-invertible behavior.
func (c *Color) InRYB() *Color {
	rgb := c.RGB()
	hue := fromValidated(SpaceRYB, RYB{R: rgb.R, Y: rgb.G, B: rgb.B}).HSL().H
	hsl := c.HSL()
	return fromValidated(SpaceHSL, HSL{H: hue, S: hsl.S, L: hsl.L})
}
